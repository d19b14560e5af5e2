package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shard-keeper/models"
)

// SyncEngine owns the local replica's replicated document and every mutation
// of it. All operations are synchronous and act on immutable document
// values; the engine swaps the current value under its own lock, so there is
// a single logical writer per replica.
type SyncEngine interface {
	// LocalDeviceID returns the stable identity of this replica.
	LocalDeviceID() models.DeviceID

	// CreateGroup generates a fresh group secret, splits it across all
	// currently known devices with the given reconstruction threshold, and
	// records the group in the document. The plaintext secret is returned to
	// the caller so the first account can be encrypted without waiting for
	// a share round-trip. Requires 2 <= threshold <= number of known devices.
	CreateGroup(threshold int, now time.Time) (models.GroupRecord, []byte, error)

	// InsertAccount seals plaintext under groupSecret and stores the account
	// entry. The group must already exist (ErrGroupNotFound otherwise); the
	// secret comes either from CreateGroup or from an unlocked group.
	InsertAccount(site, user string, groupID models.GroupID, groupSecret []byte, plaintext string, now time.Time) (models.AccountEntry, error)

	// Merge reconciles a remote document into the local one. Safe to call
	// with any state, any number of times, in any order.
	Merge(remote models.SyncData)

	// AddDevice registers a newly paired device. Burned (removed) ids are
	// rejected.
	AddDevice(id models.DeviceID, displayName string) error

	// RemoveDevice tombstones a device. Its shares become permanently
	// unusable; groups whose remaining holders drop below the threshold can
	// no longer be reconstructed, which callers must surface.
	RemoveDevice(id models.DeviceID)

	// RenameDevice updates a device's display name.
	RenameDevice(id models.DeviceID, displayName string) error

	// KnownDevices returns the visible devices keyed by id.
	KnownDevices() map[models.DeviceID]models.DeviceEntry

	// KnownIDs returns the visible device ids in lexicographic order.
	KnownIDs() []models.DeviceID

	// DeviceRemoved reports whether id was present once and has been
	// tombstoned. Burned ids stay removed forever.
	DeviceRemoved(id models.DeviceID) bool

	// Group looks up a group record.
	Group(id models.GroupID) (models.GroupRecord, bool)

	// Account looks up an account entry.
	Account(key models.AccountKey) (models.AccountEntry, bool)

	// Accounts returns all stored accounts in key order.
	Accounts() []models.AccountEntry

	// Snapshot returns a deep copy of the current document.
	Snapshot() models.SyncData

	// SetOnChange installs the listener fired after every local mutation.
	// Wiring-time only; not safe to call once the engine is shared.
	SetOnChange(fn func())
}

// UnlockPhase is the per-group state of the reconstruction machine.
type UnlockPhase int

const (
	// PhaseNotRequested means no reveal has been requested for the group.
	PhaseNotRequested UnlockPhase = iota

	// PhaseWaiting means shares are being collected.
	PhaseWaiting

	// PhaseUnlocked means the group secret has been reconstructed.
	PhaseUnlocked

	// PhaseFailed means reconstruction failed structurally; an explicit
	// re-request is required to retry.
	PhaseFailed
)

// UnlockStatus describes the observable state of one group's unlock session.
type UnlockStatus struct {
	Phase     UnlockPhase
	Collected int
	Threshold int
}

// GroupUnlockService drives the per-group share collection state machine and
// owns the session-only plaintext cache. State lives in memory only and is
// cleared deterministically by the lock operations; it is never persisted.
type GroupUnlockService interface {
	// RequestReveal starts (or resumes) unlocking the group protecting the
	// account, seeds the local device's own share, and asks peers for
	// theirs. When the group is already unlocked the account is decrypted
	// immediately.
	RequestReveal(ctx context.Context, key models.AccountKey) (UnlockStatus, error)

	// ReceiveShare feeds one granted share into the group's session.
	// Duplicate x-coordinates are dropped; the threshold check re-runs on
	// every arrival, so order and duplication do not matter. The transition
	// to PhaseUnlocked happens exactly once.
	ReceiveShare(groupID models.GroupID, share models.Share) error

	// DecryptAccount returns the account's plaintext password, decrypting
	// and caching it on first use. Requires the group to be unlocked.
	DecryptAccount(key models.AccountKey) (string, error)

	// ToggleVisibility flips the visible flag of an already revealed
	// password and returns the new value.
	ToggleVisibility(key models.AccountKey) (bool, error)

	// Visible reports whether the revealed password is currently shown.
	Visible(key models.AccountKey) bool

	// LockGroups drops the sessions and cached plaintexts of the given
	// groups. Used when the device set changes so stale share counts are
	// not trusted.
	LockGroups(groupIDs []models.GroupID)

	// LockAll drops every session and cached plaintext.
	LockAll()

	// Status reports the observable session state of one group.
	Status(groupID models.GroupID) UnlockStatus
}

// PeerInbox handles verified inbound peer messages. The transport boundary
// has already authenticated the sender; the inbox only guarantees that
// handling any message any number of times is safe.
type PeerInbox interface {
	HandleEnvelope(ctx context.Context, envelope models.Envelope) error
}
