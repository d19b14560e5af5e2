// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shard-keeper/internal/adapter"
	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/internal/service"
	"github.com/MKhiriev/go-shard-keeper/internal/store"
)

// persistInterval bounds how long a merged-in remote change can stay
// unpersisted. Local changes are saved on the debounce flush already.
const persistInterval = 30 * time.Second

// SyncBroadcastWorker coalesces local document changes and, after a quiet
// debounce window, persists the snapshot and broadcasts it to the peers.
// A burst of edits produces one broadcast, not one per keystroke.
type SyncBroadcastWorker struct {
	engine     service.SyncEngine
	messenger  adapter.PeerMessenger
	repository store.ReplicaRepository
	debounce   time.Duration
	logger     *logger.Logger

	notify  chan struct{}
	done    chan struct{}
	stopped chan struct{}
}

// NewSyncBroadcastWorker constructs the worker. Wire [SyncBroadcastWorker.Notify]
// into the sync engine's change hook before calling Run.
func NewSyncBroadcastWorker(
	engine service.SyncEngine,
	messenger adapter.PeerMessenger,
	repository store.ReplicaRepository,
	debounce time.Duration,
	log *logger.Logger,
) *SyncBroadcastWorker {
	return &SyncBroadcastWorker{
		engine:     engine,
		messenger:  messenger,
		repository: repository,
		debounce:   debounce,
		logger:     log,
		notify:     make(chan struct{}, 1),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
}

// Notify signals that the document changed. Non-blocking: a pending signal
// already covers any number of further changes.
func (w *SyncBroadcastWorker) Notify() {
	select {
	case w.notify <- struct{}{}:
	default:
	}
}

// Run implements [Worker]. It starts the debounce loop in a goroutine and
// returns immediately.
func (w *SyncBroadcastWorker) Run() {
	go w.loop()
}

// Stop terminates the loop after one final flush and blocks until that flush
// has completed, so no acknowledged local change is lost on shutdown.
func (w *SyncBroadcastWorker) Stop() {
	close(w.done)
	<-w.stopped
}

func (w *SyncBroadcastWorker) loop() {
	defer close(w.stopped)

	debounce := time.NewTimer(w.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	persist := time.NewTicker(persistInterval)
	defer persist.Stop()

	pending := false
	for {
		select {
		case <-w.notify:
			if pending && !debounce.Stop() {
				<-debounce.C
			}
			debounce.Reset(w.debounce)
			pending = true

		case <-debounce.C:
			pending = false
			w.flush(true)

		case <-persist.C:
			if !pending {
				w.flush(false)
			}

		case <-w.done:
			if pending {
				w.flush(true)
			}
			return
		}
	}
}

func (w *SyncBroadcastWorker) flush(broadcast bool) {
	ctx := context.Background()
	state := w.engine.Snapshot()

	if err := w.repository.SaveState(ctx, state); err != nil {
		w.logger.Err(err).Str("func", "*SyncBroadcastWorker.flush").Msg("error persisting replica state")
	}

	if !broadcast {
		return
	}

	if err := w.messenger.BroadcastSyncUpdate(ctx, state); err != nil {
		w.logger.Err(err).Str("func", "*SyncBroadcastWorker.flush").Msg("error broadcasting sync update")
		return
	}
	w.logger.Debug().Str("func", "*SyncBroadcastWorker.flush").Msg("sync update broadcasted")
}
