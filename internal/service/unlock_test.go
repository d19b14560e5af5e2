// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shard-keeper/internal/crypto"
	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/models"
)

// stubMessenger records outbound broadcasts without any transport.
type stubMessenger struct {
	mu             sync.Mutex
	shareRequests  []models.GroupID
	shareGrants    []models.Share
	syncUpdates    int
	deviceRemovals []models.DeviceID
}

func (s *stubMessenger) BroadcastSyncUpdate(context.Context, models.SyncData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncUpdates++
	return nil
}

func (s *stubMessenger) BroadcastDeviceRemoved(_ context.Context, id models.DeviceID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deviceRemovals = append(s.deviceRemovals, id)
	return nil
}

func (s *stubMessenger) BroadcastShareRequest(_ context.Context, groupID models.GroupID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shareRequests = append(s.shareRequests, groupID)
	return nil
}

func (s *stubMessenger) BroadcastShareGrant(_ context.Context, _ models.GroupID, share models.Share) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shareGrants = append(s.shareGrants, share)
	return nil
}

func (s *stubMessenger) BroadcastPairedWith(context.Context, models.SyncData) error {
	return nil
}

// unlockFixture is one replica with a k-threshold group over three devices
// and a single stored account.
type unlockFixture struct {
	engine    SyncEngine
	unlock    GroupUnlockService
	messenger *stubMessenger
	record    models.GroupRecord
	key       models.AccountKey
}

func newUnlockFixture(t *testing.T, threshold int) *unlockFixture {
	t.Helper()

	engine := newTestEngine(t, "device-a")
	require.NoError(t, engine.AddDevice("device-b", "Phone"))
	require.NoError(t, engine.AddDevice("device-c", "Tablet"))

	now := time.Now()
	record, secret, err := engine.CreateGroup(threshold, now)
	require.NoError(t, err)

	key := models.AccountKey{SiteName: "example.com", UserName: "alice"}
	_, err = engine.InsertAccount(key.SiteName, key.UserName, record.GroupID, secret, "p@ss1", now)
	require.NoError(t, err)

	messenger := &stubMessenger{}
	unlock := NewGroupUnlockService(engine, crypto.NewKeyChainService(), messenger, logger.Nop())

	return &unlockFixture{engine: engine, unlock: unlock, messenger: messenger, record: record, key: key}
}

func (f *unlockFixture) share(id models.DeviceID) models.Share {
	return f.record.ShareAssignment[id]
}

func TestUnlock_RequestReveal_UnknownAccount(t *testing.T) {
	f := newUnlockFixture(t, 2)

	_, err := f.unlock.RequestReveal(context.Background(), models.AccountKey{SiteName: "nope", UserName: "nobody"})
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestUnlock_OwnShareAloneLeavesWaiting(t *testing.T) {
	f := newUnlockFixture(t, 2)

	status, err := f.unlock.RequestReveal(context.Background(), f.key)
	require.NoError(t, err)
	assert.Equal(t, PhaseWaiting, status.Phase)
	assert.Equal(t, 1, status.Collected, "own share is seeded without a round-trip")
	assert.Equal(t, 2, status.Threshold)

	require.Len(t, f.messenger.shareRequests, 1, "peers must be asked for their shares")
	assert.Equal(t, f.record.GroupID, f.messenger.shareRequests[0])

	_, err = f.unlock.DecryptAccount(f.key)
	require.ErrorIs(t, err, ErrGroupLocked)
}

func TestUnlock_ThresholdMetUnlocksAndDecrypts(t *testing.T) {
	f := newUnlockFixture(t, 2)

	_, err := f.unlock.RequestReveal(context.Background(), f.key)
	require.NoError(t, err)

	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-b")))

	status := f.unlock.Status(f.record.GroupID)
	assert.Equal(t, PhaseUnlocked, status.Phase)

	plaintext, err := f.unlock.DecryptAccount(f.key)
	require.NoError(t, err)
	assert.Equal(t, "p@ss1", plaintext)
}

func TestUnlock_DuplicatesAndOrderDoNotMatter(t *testing.T) {
	f := newUnlockFixture(t, 3)

	_, err := f.unlock.RequestReveal(context.Background(), f.key)
	require.NoError(t, err)

	// Duplicate x-coordinates, own share re-delivered, shuffled order.
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-a")))
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-c")))
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-c")))
	assert.Equal(t, PhaseWaiting, f.unlock.Status(f.record.GroupID).Phase, "k-1 distinct shares must not unlock")

	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-b")))
	assert.Equal(t, PhaseUnlocked, f.unlock.Status(f.record.GroupID).Phase)

	// Exactly one transition: further shares are ignored, state stays Done.
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-b")))
	assert.Equal(t, PhaseUnlocked, f.unlock.Status(f.record.GroupID).Phase)

	plaintext, err := f.unlock.DecryptAccount(f.key)
	require.NoError(t, err)
	assert.Equal(t, "p@ss1", plaintext)
}

func TestUnlock_RevealOnUnlockedGroupDecryptsImmediately(t *testing.T) {
	f := newUnlockFixture(t, 2)

	_, err := f.unlock.RequestReveal(context.Background(), f.key)
	require.NoError(t, err)
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-b")))

	status, err := f.unlock.RequestReveal(context.Background(), f.key)
	require.NoError(t, err)
	assert.Equal(t, PhaseUnlocked, status.Phase)
	assert.Len(t, f.messenger.shareRequests, 1, "no new share request once unlocked")
}

func TestUnlock_StructuralFailureIsTerminalUntilRetry(t *testing.T) {
	f := newUnlockFixture(t, 2)

	_, err := f.unlock.RequestReveal(context.Background(), f.key)
	require.NoError(t, err)

	// A share with a mismatched length reaches the threshold but cannot be
	// combined; the session must fail, not crash.
	bogus := models.Share{X: 200, Ys: []byte{1, 2, 3}}
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, bogus))
	assert.Equal(t, PhaseFailed, f.unlock.Status(f.record.GroupID).Phase)

	// Further shares are ignored in the failed state.
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-b")))
	assert.Equal(t, PhaseFailed, f.unlock.Status(f.record.GroupID).Phase)

	// An explicit re-request starts a clean session and can succeed.
	_, err = f.unlock.RequestReveal(context.Background(), f.key)
	require.NoError(t, err)
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-b")))
	assert.Equal(t, PhaseUnlocked, f.unlock.Status(f.record.GroupID).Phase)
}

func TestUnlock_ShareForUnknownGroup(t *testing.T) {
	f := newUnlockFixture(t, 2)

	err := f.unlock.ReceiveShare(models.GroupID{Threshold: 2, Discriminator: "ghost"}, f.share("device-b"))
	require.ErrorIs(t, err, ErrGroupNotFound)
}

func TestUnlock_UnsolicitedShareIsDropped(t *testing.T) {
	f := newUnlockFixture(t, 2)

	// No reveal requested: the grant is dropped and no session appears.
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-b")))
	assert.Equal(t, PhaseNotRequested, f.unlock.Status(f.record.GroupID).Phase)
}

func TestUnlock_ToggleVisibility(t *testing.T) {
	f := newUnlockFixture(t, 2)

	_, err := f.unlock.ToggleVisibility(f.key)
	require.ErrorIs(t, err, ErrPasswordNotRevealed)

	_, err = f.unlock.RequestReveal(context.Background(), f.key)
	require.NoError(t, err)
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-b")))

	visible, err := f.unlock.ToggleVisibility(f.key)
	require.NoError(t, err)
	assert.True(t, visible)
	assert.True(t, f.unlock.Visible(f.key))

	visible, err = f.unlock.ToggleVisibility(f.key)
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestUnlock_LockGroupsDropsStateAndPlaintext(t *testing.T) {
	f := newUnlockFixture(t, 2)

	_, err := f.unlock.RequestReveal(context.Background(), f.key)
	require.NoError(t, err)
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-b")))

	_, err = f.unlock.DecryptAccount(f.key)
	require.NoError(t, err)

	f.unlock.LockGroups([]models.GroupID{f.record.GroupID})

	assert.Equal(t, PhaseNotRequested, f.unlock.Status(f.record.GroupID).Phase)
	_, err = f.unlock.DecryptAccount(f.key)
	require.ErrorIs(t, err, ErrGroupLocked, "cached plaintext must be gone after lock")
	assert.False(t, f.unlock.Visible(f.key))
}

func TestUnlock_LockAll(t *testing.T) {
	f := newUnlockFixture(t, 2)

	_, err := f.unlock.RequestReveal(context.Background(), f.key)
	require.NoError(t, err)
	require.NoError(t, f.unlock.ReceiveShare(f.record.GroupID, f.share("device-b")))

	f.unlock.LockAll()
	assert.Equal(t, PhaseNotRequested, f.unlock.Status(f.record.GroupID).Phase)
	_, err = f.unlock.DecryptAccount(f.key)
	require.ErrorIs(t, err, ErrGroupLocked)
}
