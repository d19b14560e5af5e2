// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/models"
)

// replicaRepository is the SQLite-backed implementation of
// [ReplicaRepository]. The document is stored as one JSON blob: it is small,
// read once at startup and written whole on every change, so a row-per-entry
// schema would buy nothing.
type replicaRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewReplicaRepository constructs a [ReplicaRepository] on top of db.
func NewReplicaRepository(db *DB, log *logger.Logger) ReplicaRepository {
	return &replicaRepository{db: db, logger: log}
}

// GetIdentity returns the persisted replica identity, or ErrIdentityNotFound
// on first run.
func (r *replicaRepository) GetIdentity(ctx context.Context) (models.ReplicaIdentity, error) {
	var identity models.ReplicaIdentity
	row := r.db.QueryRowContext(ctx, getIdentity)
	if err := row.Scan(&identity.DeviceID, &identity.DisplayName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ReplicaIdentity{}, ErrIdentityNotFound
		}
		r.logger.Err(err).Str("func", "GetIdentity").Msg("error reading replica identity")
		return models.ReplicaIdentity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return identity, nil
}

// SaveIdentity writes the replica identity, replacing any previous value.
func (r *replicaRepository) SaveIdentity(ctx context.Context, identity models.ReplicaIdentity) error {
	if _, err := r.db.ExecContext(ctx, upsertIdentity, string(identity.DeviceID), identity.DisplayName); err != nil {
		r.logger.Err(err).Str("func", "SaveIdentity").Msg("error saving replica identity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// GetState loads and decodes the persisted document. A corrupt blob is not
// fatal: the caller gets a fresh empty document and the replica re-converges
// from its peers.
func (r *replicaRepository) GetState(ctx context.Context) (models.SyncData, error) {
	var blob []byte
	row := r.db.QueryRowContext(ctx, getState)
	if err := row.Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncData{}, ErrStateNotFound
		}
		r.logger.Err(err).Str("func", "GetState").Msg("error reading replica state")
		return models.SyncData{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	state, err := models.DeserializeSyncData(blob)
	if err != nil {
		r.logger.Warn().Err(err).Str("func", "GetState").Msg("persisted state is corrupt, starting from empty document")
		return models.NewSyncData(), nil
	}
	return state, nil
}

// SaveState serializes and writes the whole document.
func (r *replicaRepository) SaveState(ctx context.Context, state models.SyncData) error {
	blob, err := state.Serialize()
	if err != nil {
		return fmt.Errorf("save replica state: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, upsertState, blob); err != nil {
		r.logger.Err(err).Str("func", "SaveState").Msg("error saving replica state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
