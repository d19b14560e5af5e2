package models

// MessageKind discriminates the peer message envelope.
type MessageKind string

// Peer message kinds exchanged between device replicas. The transport layer
// verifies sender identity before any of these reach the core; the core
// itself only guarantees that processing them is idempotent.
const (
	// MessageSyncUpdate carries a (fragment of a) replicated document to be
	// merged into the receiver's state.
	MessageSyncUpdate MessageKind = "sync_update"

	// MessageDeviceRemoved announces that a device was removed from the
	// trusted set.
	MessageDeviceRemoved MessageKind = "device_removed"

	// MessageShareRequested asks peers holding shares of a group to grant
	// them to the requester.
	MessageShareRequested MessageKind = "share_requested"

	// MessageShareGranted delivers one share of a group's secret.
	MessageShareGranted MessageKind = "share_granted"

	// MessagePairedWith carries the full document snapshot offered by a
	// newly paired device.
	MessagePairedWith MessageKind = "paired_with"
)

// Envelope is the JSON peer message. Exactly the fields relevant for Kind
// are populated; the rest stay empty.
type Envelope struct {
	Kind   MessageKind `json:"kind"`
	Sender DeviceID    `json:"sender"`

	// State carries the document for sync_update and paired_with.
	State *SyncData `json:"state,omitempty"`

	// DeviceID names the removed device for device_removed.
	DeviceID DeviceID `json:"device_id,omitempty"`

	// GroupID names the group for share_requested and share_granted.
	GroupID *GroupID `json:"group_id,omitempty"`

	// Share is the granted share for share_granted.
	Share *Share `json:"share,omitempty"`
}
