// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shard-keeper/internal/adapter"
	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/models"
)

// Coordinator ties the sync engine, the unlock machine and the messenger
// together: it dispatches verified inbound peer messages and carries out the
// user-level actions that touch more than one of them. It implements
// [PeerInbox].
type Coordinator struct {
	engine    SyncEngine
	unlock    GroupUnlockService
	messenger adapter.PeerMessenger
	logger    *logger.Logger
}

// NewCoordinator constructs a [Coordinator].
func NewCoordinator(engine SyncEngine, unlock GroupUnlockService, messenger adapter.PeerMessenger, log *logger.Logger) *Coordinator {
	return &Coordinator{engine: engine, unlock: unlock, messenger: messenger, logger: log}
}

// HandleEnvelope implements [PeerInbox]. Every branch is idempotent, so the
// transport may deliver the same envelope any number of times in any order.
func (c *Coordinator) HandleEnvelope(ctx context.Context, envelope models.Envelope) error {
	if envelope.Sender == c.engine.LocalDeviceID() {
		return nil // own broadcast echoed back
	}
	if c.engine.DeviceRemoved(envelope.Sender) {
		// A tombstoned device is no longer trusted; its share in particular
		// must not count towards any threshold.
		c.logger.Warn().Str("sender", string(envelope.Sender)).Msg("dropping envelope from removed device")
		return nil
	}

	switch envelope.Kind {
	case models.MessageSyncUpdate:
		if envelope.State == nil {
			return fmt.Errorf("%w: sync_update without state", ErrMalformedEnvelope)
		}
		c.mergeRemote(*envelope.State)
		return nil

	case models.MessagePairedWith:
		if envelope.State == nil {
			return fmt.Errorf("%w: paired_with without state", ErrMalformedEnvelope)
		}
		c.mergeRemote(*envelope.State)
		// Answer with our own state so the fresh device converges without
		// waiting for the next debounced broadcast.
		if err := c.messenger.BroadcastSyncUpdate(ctx, c.engine.Snapshot()); err != nil {
			c.logger.Warn().Err(err).Msg("state reply after pairing failed")
		}
		return nil

	case models.MessageDeviceRemoved:
		if envelope.DeviceID == "" {
			return fmt.Errorf("%w: device_removed without device id", ErrMalformedEnvelope)
		}
		c.applyDeviceRemoval(envelope.DeviceID)
		return nil

	case models.MessageShareRequested:
		if envelope.GroupID == nil {
			return fmt.Errorf("%w: share_requested without group id", ErrMalformedEnvelope)
		}
		return c.grantShare(ctx, *envelope.GroupID, envelope.Sender)

	case models.MessageShareGranted:
		if envelope.GroupID == nil || envelope.Share == nil {
			return fmt.Errorf("%w: share_granted without group id or share", ErrMalformedEnvelope)
		}
		return c.unlock.ReceiveShare(*envelope.GroupID, *envelope.Share)

	default:
		return fmt.Errorf("%w: unknown kind %q", ErrMalformedEnvelope, envelope.Kind)
	}
}

// RemoveDevice carries out the local user action: tombstone the device,
// invalidate unlock state that depended on its share, and tell the peers.
func (c *Coordinator) RemoveDevice(ctx context.Context, id models.DeviceID) error {
	affected := c.affectedGroups(id)
	c.engine.RemoveDevice(id)
	c.unlock.LockGroups(affected)

	if err := c.messenger.BroadcastDeviceRemoved(ctx, id); err != nil {
		return fmt.Errorf("broadcast device removal: %w", err)
	}
	return nil
}

// PairDevice registers a device announced by the external pairing handshake
// and offers the full document to the peers, the new device included.
func (c *Coordinator) PairDevice(ctx context.Context, id models.DeviceID, displayName string) error {
	if err := c.engine.AddDevice(id, displayName); err != nil {
		return fmt.Errorf("pair device %s: %w", id, err)
	}

	if err := c.messenger.BroadcastPairedWith(ctx, c.engine.Snapshot()); err != nil {
		return fmt.Errorf("broadcast pairing snapshot: %w", err)
	}
	return nil
}

// mergeRemote merges a remote document and invalidates unlock sessions of
// groups whose devices the merge tombstoned. Removals can arrive as a merged
// tombstone alone when the device_removed broadcast was lost, and a Waiting
// session must not keep counting a share granted by a removed device.
func (c *Coordinator) mergeRemote(remote models.SyncData) {
	before := c.engine.KnownIDs()
	c.engine.Merge(remote)

	var affected []models.GroupID
	for _, id := range before {
		if c.engine.DeviceRemoved(id) {
			affected = append(affected, c.affectedGroups(id)...)
		}
	}
	if len(affected) > 0 {
		c.unlock.LockGroups(affected)
	}
}

// applyDeviceRemoval mirrors a removal announced by a peer.
func (c *Coordinator) applyDeviceRemoval(id models.DeviceID) {
	affected := c.affectedGroups(id)
	c.engine.RemoveDevice(id)
	c.unlock.LockGroups(affected)
}

// grantShare answers a share request with the local device's own share of
// the group, when it holds one and is still a trusted member.
func (c *Coordinator) grantShare(ctx context.Context, groupID models.GroupID, requester models.DeviceID) error {
	record, ok := c.engine.Group(groupID)
	if !ok {
		// Not an error: the request may outrun the sync update that carries
		// the group record.
		c.logger.Debug().Str("group", groupID.String()).Msg("share requested for unknown group")
		return nil
	}

	share, ok := record.ShareAssignment[c.engine.LocalDeviceID()]
	if !ok {
		return nil
	}

	c.logger.Info().
		Str("group", groupID.String()).
		Str("requester", string(requester)).
		Msg("granting share")

	if err := c.messenger.BroadcastShareGrant(ctx, groupID, share); err != nil {
		return fmt.Errorf("broadcast share grant: %w", err)
	}
	return nil
}

// affectedGroups lists the groups whose share assignment includes the device.
func (c *Coordinator) affectedGroups(id models.DeviceID) []models.GroupID {
	var affected []models.GroupID
	snapshot := c.engine.Snapshot()
	for groupID, record := range snapshot.Groups {
		if _, ok := record.ShareAssignment[id]; ok {
			affected = append(affected, groupID)
		}
	}
	return affected
}
