// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shard-keeper/internal/crypto"
	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/internal/mock"
	"github.com/MKhiriev/go-shard-keeper/internal/service"
	"github.com/MKhiriev/go-shard-keeper/models"
)

type countingMessenger struct {
	broadcasts atomic.Int64
	signal     chan models.SyncData
}

func newCountingMessenger() *countingMessenger {
	return &countingMessenger{signal: make(chan models.SyncData, 16)}
}

func (m *countingMessenger) BroadcastSyncUpdate(_ context.Context, state models.SyncData) error {
	m.broadcasts.Add(1)
	m.signal <- state
	return nil
}

func (m *countingMessenger) BroadcastDeviceRemoved(context.Context, models.DeviceID) error {
	return nil
}

func (m *countingMessenger) BroadcastShareRequest(context.Context, models.GroupID) error {
	return nil
}

func (m *countingMessenger) BroadcastShareGrant(context.Context, models.GroupID, models.Share) error {
	return nil
}

func (m *countingMessenger) BroadcastPairedWith(context.Context, models.SyncData) error {
	return nil
}

type countingRepository struct {
	saves atomic.Int64
}

func (r *countingRepository) GetIdentity(context.Context) (models.ReplicaIdentity, error) {
	return models.ReplicaIdentity{}, nil
}

func (r *countingRepository) SaveIdentity(context.Context, models.ReplicaIdentity) error {
	return nil
}

func (r *countingRepository) GetState(context.Context) (models.SyncData, error) {
	return models.NewSyncData(), nil
}

func (r *countingRepository) SaveState(context.Context, models.SyncData) error {
	r.saves.Add(1)
	return nil
}

func waitForBroadcast(t *testing.T, messenger *countingMessenger) models.SyncData {
	t.Helper()
	select {
	case state := <-messenger.signal:
		return state
	case <-time.After(2 * time.Second):
		t.Fatal("no broadcast arrived")
		return models.SyncData{}
	}
}

func TestSyncBroadcastWorker_CoalescesBurstIntoOneBroadcast(t *testing.T) {
	engine, err := service.NewSyncEngine("device-a", "Laptop", models.NewSyncData(), crypto.NewKeyChainService(), logger.Nop())
	require.NoError(t, err)

	messenger := newCountingMessenger()
	repository := &countingRepository{}
	worker := NewSyncBroadcastWorker(engine, messenger, repository, 50*time.Millisecond, logger.Nop())
	engine.SetOnChange(worker.Notify)
	worker.Run()
	defer worker.Stop()

	// Three rapid changes within one debounce window.
	require.NoError(t, engine.AddDevice("device-b", "Phone"))
	require.NoError(t, engine.AddDevice("device-c", "Tablet"))
	require.NoError(t, engine.RenameDevice("device-c", "Old tablet"))

	state := waitForBroadcast(t, messenger)
	assert.Equal(t, []models.DeviceID{"device-a", "device-b", "device-c"}, state.DeviceIDs())

	// Give a second broadcast a chance to (wrongly) fire.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int64(1), messenger.broadcasts.Load(), "burst must coalesce into one broadcast")
	assert.GreaterOrEqual(t, repository.saves.Load(), int64(1))
}

func TestSyncBroadcastWorker_NewBurstBroadcastsAgain(t *testing.T) {
	engine, err := service.NewSyncEngine("device-a", "Laptop", models.NewSyncData(), crypto.NewKeyChainService(), logger.Nop())
	require.NoError(t, err)

	messenger := newCountingMessenger()
	worker := NewSyncBroadcastWorker(engine, messenger, &countingRepository{}, 20*time.Millisecond, logger.Nop())
	engine.SetOnChange(worker.Notify)
	worker.Run()
	defer worker.Stop()

	require.NoError(t, engine.AddDevice("device-b", "Phone"))
	waitForBroadcast(t, messenger)

	require.NoError(t, engine.AddDevice("device-c", "Tablet"))
	state := waitForBroadcast(t, messenger)
	assert.Equal(t, []models.DeviceID{"device-a", "device-b", "device-c"}, state.DeviceIDs())
}

// gatedRepository blocks SaveState until release is closed, recording
// completion, so tests can observe a save that is still in flight.
type gatedRepository struct {
	countingRepository
	release   chan struct{}
	started   chan struct{}
	completed atomic.Bool
}

func (r *gatedRepository) SaveState(ctx context.Context, state models.SyncData) error {
	select {
	case r.started <- struct{}{}:
	default:
	}
	<-r.release
	r.completed.Store(true)
	return r.countingRepository.SaveState(ctx, state)
}

func TestSyncBroadcastWorker_StopWaitsForFinalPersist(t *testing.T) {
	engine, err := service.NewSyncEngine("device-a", "Laptop", models.NewSyncData(), crypto.NewKeyChainService(), logger.Nop())
	require.NoError(t, err)

	repository := &gatedRepository{
		release: make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	messenger := newCountingMessenger()

	// Debounce far longer than the test: only the Stop flush can save.
	worker := NewSyncBroadcastWorker(engine, messenger, repository, time.Hour, logger.Nop())
	engine.SetOnChange(worker.Notify)
	worker.Run()

	require.NoError(t, engine.AddDevice("device-b", "Phone"))
	time.Sleep(20 * time.Millisecond) // let the loop observe the notification

	stopReturned := make(chan struct{})
	go func() {
		worker.Stop()
		close(stopReturned)
	}()

	select {
	case <-repository.started:
	case <-time.After(2 * time.Second):
		t.Fatal("final flush never reached the repository")
	}

	// The save is in flight; Stop must still be blocked on it.
	select {
	case <-stopReturned:
		t.Fatal("Stop returned while the final save was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(repository.release)
	select {
	case <-stopReturned:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after the save completed")
	}
	assert.True(t, repository.completed.Load(), "state must be persisted before Stop returns")
}

func TestSyncBroadcastWorker_BroadcastsEvenWhenPersistFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, err := service.NewSyncEngine("device-a", "Laptop", models.NewSyncData(), crypto.NewKeyChainService(), logger.Nop())
	require.NoError(t, err)

	repository := mock.NewMockReplicaRepository(ctrl)
	repository.EXPECT().
		SaveState(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full")).
		MinTimes(1)

	messenger := newCountingMessenger()
	worker := NewSyncBroadcastWorker(engine, messenger, repository, 20*time.Millisecond, logger.Nop())
	engine.SetOnChange(worker.Notify)
	worker.Run()
	defer worker.Stop()

	require.NoError(t, engine.AddDevice("device-b", "Phone"))

	// The failed save is logged but must not swallow the broadcast.
	state := waitForBroadcast(t, messenger)
	assert.Equal(t, []models.DeviceID{"device-a", "device-b"}, state.DeviceIDs())
}

func TestSyncBroadcastWorker_StopFlushesPendingChange(t *testing.T) {
	engine, err := service.NewSyncEngine("device-a", "Laptop", models.NewSyncData(), crypto.NewKeyChainService(), logger.Nop())
	require.NoError(t, err)

	messenger := newCountingMessenger()
	repository := &countingRepository{}

	// Debounce far longer than the test: only the Stop flush can deliver.
	worker := NewSyncBroadcastWorker(engine, messenger, repository, time.Hour, logger.Nop())
	engine.SetOnChange(worker.Notify)
	worker.Run()

	require.NoError(t, engine.AddDevice("device-b", "Phone"))
	time.Sleep(20 * time.Millisecond) // let the loop observe the notification
	worker.Stop()

	waitForBroadcast(t, messenger)
	assert.GreaterOrEqual(t, repository.saves.Load(), int64(1))
}
