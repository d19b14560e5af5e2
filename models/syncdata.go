package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-shard-keeper/internal/crdt"
)

// ErrDecodeState reports that a persisted or received SyncData blob could not
// be decoded. Callers recover by starting from an empty document; a corrupt
// blob is never fatal.
var ErrDecodeState = errors.New("decode sync data")

// ErrDeviceIDBurned reports an attempt to re-add a device id that was removed
// earlier. Removed ids are permanently burned; re-pairing mints a fresh one.
var ErrDeviceIDBurned = errors.New("device id was removed and cannot be re-added")

// SyncData is the full replicated document of one replica: the device
// registry, the group records and the stored accounts. It is a value type;
// every mutation returns the successor document and the merge of any two
// documents is deterministic regardless of order or duplication.
type SyncData struct {
	// Devices is the observed-remove registry of trusted devices.
	Devices crdt.Map[DeviceEntry] `json:"devices"`

	// Groups maps each group to its immutable record. Merge is plain union:
	// records never change after creation and the random discriminator rules
	// out id collisions.
	Groups map[GroupID]GroupRecord `json:"groups"`

	// Accounts maps each (site, user) key to its entry. Merge is union with
	// last-writer-wins by CreatedAt on the same key.
	Accounts map[AccountKey]AccountEntry `json:"accounts"`
}

// NewSyncData returns an empty document.
func NewSyncData() SyncData {
	return SyncData{
		Devices:  crdt.New[DeviceEntry](),
		Groups:   make(map[GroupID]GroupRecord),
		Accounts: make(map[AccountKey]AccountEntry),
	}
}

// Clone returns a deep copy of the document.
func (d SyncData) Clone() SyncData {
	out := SyncData{
		Devices:  d.Devices.Clone(),
		Groups:   make(map[GroupID]GroupRecord, len(d.Groups)),
		Accounts: make(map[AccountKey]AccountEntry, len(d.Accounts)),
	}
	for id, record := range d.Groups {
		out.Groups[id] = record.Clone()
	}
	for key, entry := range d.Accounts {
		out.Accounts[key] = entry
	}
	return out
}

// AddDevice registers a new device under the local replica's identity.
// Returns ErrDeviceIDBurned when id was removed before: tombstoned ids never
// come back, even locally.
func (d SyncData) AddDevice(local DeviceID, id DeviceID, displayName string) (SyncData, error) {
	if d.Devices.Removed(string(id)) {
		return d, fmt.Errorf("add device %s: %w", id, ErrDeviceIDBurned)
	}

	out := d.Clone()
	out.Devices = out.Devices.Add(string(local), string(id), DeviceEntry{DisplayName: displayName})
	return out, nil
}

// RenameDevice bumps the device's rename counter and replaces its display
// name. Concurrent renames resolve on merge: higher counter wins. The second
// result is false when the device is not visibly present.
func (d SyncData) RenameDevice(local DeviceID, id DeviceID, displayName string) (SyncData, bool) {
	current, ok := d.Devices.Get(string(id))
	if !ok {
		return d, false
	}

	out := d.Clone()
	out.Devices = out.Devices.Update(string(local), string(id), DeviceEntry{
		RenameSeq:   current.RenameSeq + 1,
		DisplayName: displayName,
	})
	return out, true
}

// RemoveDevice tombstones the device. Share assignments referencing it are
// left untouched: the share is simply unusable from now on, which may push a
// group below its threshold — surfaced by callers, never repaired here.
func (d SyncData) RemoveDevice(id DeviceID) SyncData {
	out := d.Clone()
	out.Devices = out.Devices.Remove(string(id))
	return out
}

// Device returns the visible entry for id.
func (d SyncData) Device(id DeviceID) (DeviceEntry, bool) {
	return d.Devices.Get(string(id))
}

// DeviceIDs returns the visibly present device ids in lexicographic order.
func (d SyncData) DeviceIDs() []DeviceID {
	keys := d.Devices.Keys()
	ids := make([]DeviceID, len(keys))
	for i, key := range keys {
		ids[i] = DeviceID(key)
	}
	return ids
}

// WithGroup stores a freshly created group record. Records are immutable;
// writing the same id twice is a programming error and overwrites silently
// (the random discriminator makes it unreachable in practice).
func (d SyncData) WithGroup(record GroupRecord) SyncData {
	out := d.Clone()
	out.Groups[record.GroupID] = record.Clone()
	return out
}

// Group returns the record for id.
func (d SyncData) Group(id GroupID) (GroupRecord, bool) {
	record, ok := d.Groups[id]
	return record, ok
}

// WithAccount stores an account entry, keeping the existing entry when it
// supersedes the new one under the last-writer-wins rule.
func (d SyncData) WithAccount(entry AccountEntry) SyncData {
	out := d.Clone()
	if existing, ok := out.Accounts[entry.Key]; ok && existing.supersedes(entry) {
		return out
	}
	out.Accounts[entry.Key] = entry
	return out
}

// Account returns the entry for key.
func (d SyncData) Account(key AccountKey) (AccountEntry, bool) {
	entry, ok := d.Accounts[key]
	return entry, ok
}

// AccountKeys returns all stored account keys in lexicographic order.
func (d SyncData) AccountKeys() []AccountKey {
	keys := make([]AccountKey, 0, len(d.Accounts))
	for key := range d.Accounts {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b AccountKey) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		default:
			return 0
		}
	})
	return keys
}

// Merge reconciles d with a remote document field-wise: devices via the CRDT
// merge, groups via union, accounts via union with last-writer-wins. The
// result is independent of merge order and of how often the same remote
// state is delivered.
func (d SyncData) Merge(remote SyncData) SyncData {
	out := d.Clone()
	out.Devices = out.Devices.Merge(remote.Devices)

	for id, record := range remote.Groups {
		if _, ok := out.Groups[id]; !ok {
			out.Groups[id] = record.Clone()
		}
	}

	for key, entry := range remote.Accounts {
		existing, ok := out.Accounts[key]
		if !ok || entry.supersedes(existing) {
			out.Accounts[key] = entry
		}
	}

	return out
}

// Serialize encodes the document as a JSON blob for persistence or transport.
func (d SyncData) Serialize() ([]byte, error) {
	blob, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("serialize sync data: %w", err)
	}
	return blob, nil
}

// DeserializeSyncData decodes a blob produced by [SyncData.Serialize].
// Any malformed input yields ErrDecodeState; callers reset to NewSyncData.
func DeserializeSyncData(blob []byte) (SyncData, error) {
	var d SyncData
	if err := json.Unmarshal(blob, &d); err != nil {
		return SyncData{}, fmt.Errorf("%w: %w", ErrDecodeState, err)
	}

	if d.Devices.Entries == nil {
		d.Devices.Entries = make(map[string]crdt.Entry[DeviceEntry])
	}
	if d.Devices.Clocks == nil {
		d.Devices.Clocks = make(map[string]uint64)
	}
	if d.Groups == nil {
		d.Groups = make(map[GroupID]GroupRecord)
	}
	if d.Accounts == nil {
		d.Accounts = make(map[AccountKey]AccountEntry)
	}
	return d, nil
}
