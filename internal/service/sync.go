// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/go-shard-keeper/internal/crypto"
	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/internal/sharing"
	"github.com/MKhiriev/go-shard-keeper/internal/utils"
	"github.com/MKhiriev/go-shard-keeper/models"
)

// syncEngine is the private implementation of [SyncEngine]. It holds the
// current document value behind a mutex; every mutation builds the successor
// document with the pure operations on [models.SyncData] and swaps it in.
type syncEngine struct {
	localID  models.DeviceID
	keychain crypto.KeyChainService
	ids      *utils.UUIDGenerator
	random   io.Reader
	logger   *logger.Logger

	mu   sync.RWMutex
	data models.SyncData

	// onChange fires after every local mutation (never after Merge of remote
	// state, which would echo updates back and forth). Used to trigger the
	// debounced broadcast; correctness does not depend on it firing.
	onChange func()
}

// NewSyncEngine constructs a [SyncEngine] for the given replica identity
// around an initial document (typically loaded from the local store). The
// local device is registered in the document if it is not present yet.
func NewSyncEngine(localID models.DeviceID, displayName string, initial models.SyncData, keychain crypto.KeyChainService, log *logger.Logger) (SyncEngine, error) {
	engine := &syncEngine{
		localID:  localID,
		keychain: keychain,
		ids:      utils.NewUUIDGenerator(),
		random:   rand.Reader,
		logger:   log,
		data:     initial.Clone(),
		onChange: func() {},
	}

	if _, ok := engine.data.Device(localID); !ok {
		next, err := engine.data.AddDevice(localID, localID, displayName)
		if err != nil {
			return nil, fmt.Errorf("register local device: %w", err)
		}
		engine.data = next
	}

	return engine, nil
}

// SetOnChange installs the local-mutation listener. Must be called before
// the engine is shared across goroutines.
func (s *syncEngine) SetOnChange(fn func()) {
	if fn != nil {
		s.onChange = fn
	}
}

// LocalDeviceID implements [SyncEngine].
func (s *syncEngine) LocalDeviceID() models.DeviceID {
	return s.localID
}

// CreateGroup implements [SyncEngine]. The secret is split into one share
// per currently known device; the assignment is written once and never
// rewritten, even when devices are removed later.
func (s *syncEngine) CreateGroup(threshold int, now time.Time) (models.GroupRecord, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	devices := s.data.DeviceIDs()
	if threshold < 2 || threshold > len(devices) {
		return models.GroupRecord{}, nil, fmt.Errorf("%w: k=%d with %d devices", ErrInvalidThreshold, threshold, len(devices))
	}

	secret, err := s.keychain.GenerateGroupSecret()
	if err != nil {
		return models.GroupRecord{}, nil, fmt.Errorf("generate group secret: %w", err)
	}

	shares, err := sharing.Split(secret, threshold, len(devices), s.random)
	if err != nil {
		return models.GroupRecord{}, nil, fmt.Errorf("split group secret: %w", err)
	}

	assignment := make(map[models.DeviceID]models.Share, len(devices))
	for i, id := range devices {
		assignment[id] = shares[i]
	}

	record := models.GroupRecord{
		GroupID:         models.GroupID{Threshold: threshold, Discriminator: s.ids.Generate()},
		TotalDevices:    len(devices),
		CreatedAt:       now,
		ShareAssignment: assignment,
	}

	s.data = s.data.WithGroup(record)
	s.logger.Info().
		Str("group", record.GroupID.String()).
		Int("devices", len(devices)).
		Msg("group created")

	s.onChange()
	return record, secret, nil
}

// InsertAccount implements [SyncEngine].
func (s *syncEngine) InsertAccount(site, user string, groupID models.GroupID, groupSecret []byte, plaintext string, now time.Time) (models.AccountEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Group(groupID); !ok {
		return models.AccountEntry{}, fmt.Errorf("insert account for group %s: %w", groupID, ErrGroupNotFound)
	}

	ciphertext, err := s.keychain.SealPassword(groupSecret, plaintext)
	if err != nil {
		return models.AccountEntry{}, fmt.Errorf("seal account password: %w", err)
	}

	entry := models.AccountEntry{
		Key:        models.AccountKey{SiteName: site, UserName: user},
		GroupID:    groupID,
		Ciphertext: models.EncryptedPassword(ciphertext),
		CreatedAt:  now,
	}

	s.data = s.data.WithAccount(entry)
	s.logger.Info().Str("site", site).Str("user", user).Msg("account stored")

	s.onChange()
	return entry, nil
}

// Merge implements [SyncEngine]. No change notification: merging remote
// state must not trigger a re-broadcast of the same state.
func (s *syncEngine) Merge(remote models.SyncData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = s.data.Merge(remote)
}

// AddDevice implements [SyncEngine].
func (s *syncEngine) AddDevice(id models.DeviceID, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.data.AddDevice(s.localID, id, displayName)
	if err != nil {
		return err
	}
	s.data = next
	s.logger.Info().Str("device", string(id)).Msg("device added")

	s.onChange()
	return nil
}

// RemoveDevice implements [SyncEngine].
func (s *syncEngine) RemoveDevice(id models.DeviceID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = s.data.RemoveDevice(id)
	s.logger.Info().Str("device", string(id)).Msg("device removed")

	s.onChange()
}

// RenameDevice implements [SyncEngine].
func (s *syncEngine) RenameDevice(id models.DeviceID, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.data.RenameDevice(s.localID, id, displayName)
	if !ok {
		return fmt.Errorf("rename device %s: %w", id, ErrDeviceNotFound)
	}
	s.data = next

	s.onChange()
	return nil
}

// KnownDevices implements [SyncEngine].
func (s *syncEngine) KnownDevices() map[models.DeviceID]models.DeviceEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	devices := make(map[models.DeviceID]models.DeviceEntry)
	for _, id := range s.data.DeviceIDs() {
		if entry, ok := s.data.Device(id); ok {
			devices[id] = entry
		}
	}
	return devices
}

// KnownIDs implements [SyncEngine].
func (s *syncEngine) KnownIDs() []models.DeviceID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.DeviceIDs()
}

// DeviceRemoved implements [SyncEngine].
func (s *syncEngine) DeviceRemoved(id models.DeviceID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Devices.Removed(string(id))
}

// Group implements [SyncEngine].
func (s *syncEngine) Group(id models.GroupID) (models.GroupRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data.Group(id)
	if !ok {
		return models.GroupRecord{}, false
	}
	return record.Clone(), true
}

// Account implements [SyncEngine].
func (s *syncEngine) Account(key models.AccountKey) (models.AccountEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Account(key)
}

// Accounts implements [SyncEngine].
func (s *syncEngine) Accounts() []models.AccountEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := s.data.AccountKeys()
	entries := make([]models.AccountEntry, 0, len(keys))
	for _, key := range keys {
		if entry, ok := s.data.Account(key); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Snapshot implements [SyncEngine].
func (s *syncEngine) Snapshot() models.SyncData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}
