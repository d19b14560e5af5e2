// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-shard-keeper/internal/adapter"
	"github.com/MKhiriev/go-shard-keeper/internal/crypto"
	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/internal/sharing"
	"github.com/MKhiriev/go-shard-keeper/models"
)

// groupSession is the in-memory unlock state of one group. Never persisted.
type groupSession struct {
	phase     UnlockPhase
	collected map[byte]models.Share
	secret    []byte
	failure   error

	// pending holds the accounts to decrypt as soon as the secret arrives.
	pending map[models.AccountKey]struct{}
}

// revealedPassword is a decrypted account password held for the session.
type revealedPassword struct {
	plaintext string
	visible   bool
}

// unlockService is the private implementation of [GroupUnlockService].
type unlockService struct {
	engine    SyncEngine
	keychain  crypto.KeyChainService
	messenger adapter.PeerMessenger
	logger    *logger.Logger

	mu       sync.Mutex
	sessions map[models.GroupID]*groupSession
	revealed map[models.AccountKey]*revealedPassword
}

// NewGroupUnlockService constructs a [GroupUnlockService] bound to one
// replica's engine and messenger.
func NewGroupUnlockService(engine SyncEngine, keychain crypto.KeyChainService, messenger adapter.PeerMessenger, log *logger.Logger) GroupUnlockService {
	return &unlockService{
		engine:    engine,
		keychain:  keychain,
		messenger: messenger,
		logger:    log,
		sessions:  make(map[models.GroupID]*groupSession),
		revealed:  make(map[models.AccountKey]*revealedPassword),
	}
}

// RequestReveal implements [GroupUnlockService].
func (u *unlockService) RequestReveal(ctx context.Context, key models.AccountKey) (UnlockStatus, error) {
	entry, ok := u.engine.Account(key)
	if !ok {
		return UnlockStatus{}, fmt.Errorf("reveal %s: %w", key.SiteName, ErrAccountNotFound)
	}
	record, ok := u.engine.Group(entry.GroupID)
	if !ok {
		return UnlockStatus{}, fmt.Errorf("reveal %s: %w", key.SiteName, ErrGroupNotFound)
	}

	u.mu.Lock()
	session := u.sessions[entry.GroupID]
	if session == nil || session.phase == PhaseFailed {
		// First request, or an explicit retry after a failed reconstruction.
		session = &groupSession{
			phase:     PhaseWaiting,
			collected: make(map[byte]models.Share),
			pending:   make(map[models.AccountKey]struct{}),
		}
		u.sessions[entry.GroupID] = session
	}

	if session.phase == PhaseUnlocked {
		u.mu.Unlock()
		if _, err := u.DecryptAccount(key); err != nil {
			return u.Status(entry.GroupID), err
		}
		return u.Status(entry.GroupID), nil
	}

	session.pending[key] = struct{}{}

	// The local device's own share counts towards the threshold without any
	// round-trip.
	if own, ok := record.ShareAssignment[u.engine.LocalDeviceID()]; ok {
		session.collected[own.X] = own.Clone()
	}
	u.tryReconstruct(entry.GroupID, session, record)

	waiting := session.phase == PhaseWaiting
	u.mu.Unlock()

	if waiting {
		if err := u.messenger.BroadcastShareRequest(ctx, entry.GroupID); err != nil {
			// Delivery is best-effort; the transport retries, we do not.
			u.logger.Warn().Err(err).Str("group", entry.GroupID.String()).Msg("share request broadcast failed")
		}
	}

	return u.Status(entry.GroupID), nil
}

// ReceiveShare implements [GroupUnlockService].
func (u *unlockService) ReceiveShare(groupID models.GroupID, share models.Share) error {
	record, ok := u.engine.Group(groupID)
	if !ok {
		return fmt.Errorf("receive share for %s: %w", groupID, ErrGroupNotFound)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	session := u.sessions[groupID]
	if session == nil {
		// Unsolicited or late grant (e.g. after a lock). Dropping it is safe:
		// the peer will be asked again on the next reveal request.
		u.logger.Debug().Str("group", groupID.String()).Msg("dropping share without active session")
		return nil
	}
	if session.phase != PhaseWaiting {
		return nil
	}

	if _, dup := session.collected[share.X]; dup {
		return nil
	}
	session.collected[share.X] = share.Clone()

	u.tryReconstruct(groupID, session, record)
	return nil
}

// tryReconstruct re-runs the threshold check and, once met, reconstructs the
// group secret and decrypts the pending accounts. Runs on every share
// arrival — shares come out of order and with duplicates, and the transition
// must happen exactly once. Callers hold u.mu.
func (u *unlockService) tryReconstruct(groupID models.GroupID, session *groupSession, record models.GroupRecord) {
	if session.phase != PhaseWaiting || len(session.collected) < record.GroupID.Threshold {
		return
	}

	shares := make([]models.Share, 0, len(session.collected))
	for _, share := range session.collected {
		shares = append(shares, share)
	}
	slices.SortFunc(shares, func(a, b models.Share) int { return int(a.X) - int(b.X) })

	secret, err := sharing.CombineThreshold(shares, record.GroupID.Threshold)
	if err != nil {
		session.phase = PhaseFailed
		session.failure = err
		u.logger.Error().Err(err).Str("group", groupID.String()).Msg("secret reconstruction failed")
		return
	}

	session.phase = PhaseUnlocked
	session.secret = secret
	u.logger.Info().Str("group", groupID.String()).Msg("group unlocked")

	for key := range session.pending {
		if err := u.decryptLocked(key, session); err != nil {
			u.logger.Warn().Err(err).Str("site", key.SiteName).Msg("pending account decryption failed")
		}
	}
	clear(session.pending)
}

// DecryptAccount implements [GroupUnlockService].
func (u *unlockService) DecryptAccount(key models.AccountKey) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if cached, ok := u.revealed[key]; ok {
		return cached.plaintext, nil
	}

	entry, ok := u.engine.Account(key)
	if !ok {
		return "", fmt.Errorf("decrypt %s: %w", key.SiteName, ErrAccountNotFound)
	}
	session := u.sessions[entry.GroupID]
	if session == nil || session.phase != PhaseUnlocked {
		return "", fmt.Errorf("decrypt %s: %w", key.SiteName, ErrGroupLocked)
	}

	if err := u.decryptLocked(key, session); err != nil {
		return "", err
	}
	return u.revealed[key].plaintext, nil
}

// decryptLocked decrypts one account under an unlocked session and caches
// the plaintext. Callers hold u.mu.
func (u *unlockService) decryptLocked(key models.AccountKey, session *groupSession) error {
	if _, ok := u.revealed[key]; ok {
		return nil
	}

	entry, ok := u.engine.Account(key)
	if !ok {
		return fmt.Errorf("decrypt %s: %w", key.SiteName, ErrAccountNotFound)
	}

	plaintext, err := u.keychain.OpenPassword(session.secret, string(entry.Ciphertext))
	if err != nil {
		// crypto.ErrDecryptionFailed passes through for errors.Is at the UI.
		return fmt.Errorf("decrypt %s: %w", key.SiteName, err)
	}

	u.revealed[key] = &revealedPassword{plaintext: plaintext}
	return nil
}

// ToggleVisibility implements [GroupUnlockService].
func (u *unlockService) ToggleVisibility(key models.AccountKey) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	cached, ok := u.revealed[key]
	if !ok {
		return false, fmt.Errorf("toggle %s: %w", key.SiteName, ErrPasswordNotRevealed)
	}
	cached.visible = !cached.visible
	return cached.visible, nil
}

// Visible implements [GroupUnlockService].
func (u *unlockService) Visible(key models.AccountKey) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	cached, ok := u.revealed[key]
	return ok && cached.visible
}

// LockGroups implements [GroupUnlockService].
func (u *unlockService) LockGroups(groupIDs []models.GroupID) {
	affected := make(map[models.GroupID]struct{}, len(groupIDs))
	for _, id := range groupIDs {
		affected[id] = struct{}{}
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for id, session := range u.sessions {
		if _, ok := affected[id]; !ok {
			continue
		}
		wipe(session.secret)
		delete(u.sessions, id)
	}

	// Drop every cached plaintext whose account belongs to a locked group.
	for _, entry := range u.engine.Accounts() {
		if _, ok := affected[entry.GroupID]; ok {
			delete(u.revealed, entry.Key)
		}
	}
}

// LockAll implements [GroupUnlockService].
func (u *unlockService) LockAll() {
	u.mu.Lock()
	defer u.mu.Unlock()

	for id, session := range u.sessions {
		wipe(session.secret)
		delete(u.sessions, id)
	}
	clear(u.revealed)
}

// Status implements [GroupUnlockService].
func (u *unlockService) Status(groupID models.GroupID) UnlockStatus {
	u.mu.Lock()
	defer u.mu.Unlock()

	session := u.sessions[groupID]
	if session == nil {
		return UnlockStatus{Phase: PhaseNotRequested, Threshold: groupID.Threshold}
	}
	return UnlockStatus{
		Phase:     session.phase,
		Collected: len(session.collected),
		Threshold: groupID.Threshold,
	}
}

// wipe zeroes secret material before releasing the last reference to it.
func wipe(secret []byte) {
	for i := range secret {
		secret[i] = 0
	}
}
