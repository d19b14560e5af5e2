package models

// DeviceID is the opaque, stable identifier of one physical device replica.
// It is minted once at pairing time and never reused: a removed DeviceID is
// permanently burned and a re-paired device receives a fresh one.
type DeviceID string

// DeviceEntry is the replicated value stored per device in the registry.
// RenameSeq orders concurrent renames: the entry with the higher counter wins
// on merge regardless of arrival order.
type DeviceEntry struct {
	// RenameSeq is a per-device monotonically increasing rename counter.
	RenameSeq uint64 `json:"rename_seq"`

	// DisplayName is the human-readable label shown in device lists.
	DisplayName string `json:"display_name"`
}

// Supersedes reports whether e wins over other when both survive a merge as
// concurrent writes for the same device. Equal counters are resolved by the
// registry using the write tag, keeping merge deterministic.
func (e DeviceEntry) Supersedes(other DeviceEntry) bool {
	return e.RenameSeq > other.RenameSeq
}

// ReplicaIdentity is the locally persisted identity of this replica: which
// DeviceID it acts as and the display name it announced at pairing time.
type ReplicaIdentity struct {
	DeviceID    DeviceID `json:"device_id"`
	DisplayName string   `json:"display_name"`
}
