// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the replica's core behavior: the sync engine
// that owns the replicated document, the group unlock state machine that
// collects shares and reconstructs group secrets, and the coordinator that
// dispatches peer messages between them.
package service

import (
	"fmt"

	"github.com/MKhiriev/go-shard-keeper/internal/adapter"
	"github.com/MKhiriev/go-shard-keeper/internal/crypto"
	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/models"
)

// Services aggregates everything one device replica runs on.
type Services struct {
	Engine      SyncEngine
	Unlock      GroupUnlockService
	Coordinator *Coordinator
}

// NewServices wires the service layer for a replica with the given identity
// and initial document.
func NewServices(localID models.DeviceID, displayName string, initial models.SyncData, messenger adapter.PeerMessenger, log *logger.Logger) (*Services, error) {
	keychain := crypto.NewKeyChainService()

	engine, err := NewSyncEngine(localID, displayName, initial, keychain, log)
	if err != nil {
		return nil, fmt.Errorf("create sync engine: %w", err)
	}

	unlock := NewGroupUnlockService(engine, keychain, messenger, log)
	coordinator := NewCoordinator(engine, unlock, messenger, log)

	return &Services{
		Engine:      engine,
		Unlock:      unlock,
		Coordinator: coordinator,
	}, nil
}
