package store

import (
	"context"

	"github.com/MKhiriev/go-shard-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ReplicaRepository persists the two durable pieces of one replica: its
// identity and the latest serialized replicated document.
type ReplicaRepository interface {
	GetIdentity(ctx context.Context) (models.ReplicaIdentity, error)
	SaveIdentity(ctx context.Context, identity models.ReplicaIdentity) error
	GetState(ctx context.Context) (models.SyncData, error)
	SaveState(ctx context.Context, state models.SyncData) error
}
