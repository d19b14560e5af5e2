// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package device assembles one running replica: local storage, the
// replication services, the peer transport, the broadcast worker and the
// inbound HTTP server.
package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shard-keeper/internal/adapter"
	"github.com/MKhiriev/go-shard-keeper/internal/config"
	handler "github.com/MKhiriev/go-shard-keeper/internal/handler/http"
	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/internal/server"
	"github.com/MKhiriev/go-shard-keeper/internal/service"
	"github.com/MKhiriev/go-shard-keeper/internal/store"
	"github.com/MKhiriev/go-shard-keeper/internal/utils"
	"github.com/MKhiriev/go-shard-keeper/internal/workers"
	"github.com/MKhiriev/go-shard-keeper/models"
)

type App struct {
	services *service.Services
	worker   *workers.SyncBroadcastWorker
	server   server.Server

	logger *logger.Logger
}

// NewApp wires a replica from its configuration. On the first run a fresh
// DeviceID is minted and persisted; later runs reuse the stored identity, so
// the replica keeps its place in the device registry across restarts.
func NewApp(cfg *config.DeviceConfig, log *logger.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	repository := store.NewReplicaRepository(db, log)

	identity, err := loadOrCreateIdentity(ctx, repository, cfg.Device.DisplayName)
	if err != nil {
		return nil, err
	}

	state, err := repository.GetState(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrStateNotFound) {
			return nil, fmt.Errorf("load replica state: %w", err)
		}
		state = models.NewSyncData()
	}

	messenger, err := adapter.NewHTTPPeerMessenger(cfg.Peers, identity.DeviceID, log)
	if err != nil {
		return nil, fmt.Errorf("create peer messenger: %w", err)
	}

	services, err := service.NewServices(identity.DeviceID, identity.DisplayName, state, messenger, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	worker := workers.NewSyncBroadcastWorker(services.Engine, messenger, repository, cfg.Peers.SyncDebounce, log)
	services.Engine.SetOnChange(worker.Notify)

	httpHandler := handler.NewHandler(services.Coordinator, cfg.App.Version, log)
	srv, err := server.NewServer(httpHandler.Init(), cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		services: services,
		worker:   worker,
		server:   srv,
		logger:   log,
	}, nil
}

// Run starts the broadcast worker and serves inbound peer messages until a
// stop signal arrives. The final worker flush persists any pending change
// before Run returns.
func (a *App) Run() error {
	workers.NewWorkers(a.worker).Run()
	defer a.worker.Stop()

	a.logger.Info().
		Str("device", string(a.services.Engine.LocalDeviceID())).
		Msg("replica is up")

	a.server.RunServer()
	return nil
}

func loadOrCreateIdentity(ctx context.Context, repository store.ReplicaRepository, displayName string) (models.ReplicaIdentity, error) {
	identity, err := repository.GetIdentity(ctx)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, store.ErrIdentityNotFound) {
		return models.ReplicaIdentity{}, fmt.Errorf("load replica identity: %w", err)
	}

	identity = models.ReplicaIdentity{
		DeviceID:    models.DeviceID(utils.NewUUIDGenerator().Generate()),
		DisplayName: displayName,
	}
	if err = repository.SaveIdentity(ctx, identity); err != nil {
		return models.ReplicaIdentity{}, fmt.Errorf("persist replica identity: %w", err)
	}
	return identity, nil
}
