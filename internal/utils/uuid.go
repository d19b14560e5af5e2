package utils

import "github.com/google/uuid"

// UUIDGenerator mints the identifiers a replica needs to be globally unique
// without coordination: the device id on first run and group discriminators
// at group creation.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, so ids sort roughly by creation time.
// On the rare entropy failure it falls back to a random v4 rather than
// erroring.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
