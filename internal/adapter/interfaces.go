package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/peer_messenger_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-shard-keeper/models"
)

// PeerMessenger delivers outbound peer messages. Implementations do not
// authenticate or retry: origin signing belongs to the boundary layer and
// redundant delivery is harmless because every inbound handler is
// idempotent. A returned error means no peer could be reached; partial
// delivery is not an error.
type PeerMessenger interface {
	// BroadcastSyncUpdate ships the replica's document to all peers.
	BroadcastSyncUpdate(ctx context.Context, state models.SyncData) error

	// BroadcastDeviceRemoved announces a device removal.
	BroadcastDeviceRemoved(ctx context.Context, id models.DeviceID) error

	// BroadcastShareRequest asks peers for their shares of a group.
	BroadcastShareRequest(ctx context.Context, groupID models.GroupID) error

	// BroadcastShareGrant hands out the local device's share of a group.
	BroadcastShareGrant(ctx context.Context, groupID models.GroupID, share models.Share) error

	// BroadcastPairedWith offers the full document snapshot to peers after
	// pairing.
	BroadcastPairedWith(ctx context.Context, state models.SyncData) error
}
