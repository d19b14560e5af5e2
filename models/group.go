package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GroupID identifies a set of accounts protected by one reconstructable
// secret and one fixed threshold. The random discriminator disambiguates
// groups created at different times with the same threshold, so group records
// merge by plain union without collision.
type GroupID struct {
	// Threshold is the number of distinct shares required to reconstruct
	// the group secret.
	Threshold int `json:"threshold"`

	// Discriminator is a random string (UUID) fixed at group creation.
	Discriminator string `json:"discriminator"`
}

// IsZero reports whether g is the empty GroupID.
func (g GroupID) IsZero() bool {
	return g.Threshold == 0 && g.Discriminator == ""
}

// String returns the canonical "threshold/discriminator" form.
func (g GroupID) String() string {
	return strconv.Itoa(g.Threshold) + "/" + g.Discriminator
}

// MarshalText implements encoding.TextMarshaler so GroupID can key JSON maps.
func (g GroupID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GroupID) UnmarshalText(text []byte) error {
	threshold, discriminator, ok := strings.Cut(string(text), "/")
	if !ok {
		return fmt.Errorf("malformed group id %q", text)
	}
	k, err := strconv.Atoi(threshold)
	if err != nil {
		return fmt.Errorf("malformed group id threshold %q: %w", text, err)
	}

	g.Threshold = k
	g.Discriminator = discriminator
	return nil
}

// Share is one evaluation point of the sharing polynomials: a single nonzero
// x-coordinate and one y byte per byte of the shared secret.
type Share struct {
	// X is the nonzero field element the polynomials were evaluated at.
	X byte `json:"x"`

	// Ys holds one evaluation result per secret byte; len(Ys) always equals
	// the length of the shared secret.
	Ys []byte `json:"ys"`
}

// Clone returns a deep copy of the share.
func (s Share) Clone() Share {
	ys := make([]byte, len(s.Ys))
	copy(ys, s.Ys)
	return Share{X: s.X, Ys: ys}
}

// GroupRecord is the replicated description of one group. It is written once
// at group creation and immutable afterwards; removing a device from the
// registry implicitly invalidates that device's share without rewriting the
// assignment.
type GroupRecord struct {
	// GroupID identifies the group and carries its threshold.
	GroupID GroupID `json:"group_id"`

	// TotalDevices is the number of devices the secret was split across.
	TotalDevices int `json:"total_devices"`

	// CreatedAt is the creation timestamp on the originating device.
	CreatedAt time.Time `json:"created_at"`

	// ShareAssignment maps each device known at creation time to its share.
	ShareAssignment map[DeviceID]Share `json:"share_assignment"`
}

// Clone returns a deep copy of the record.
func (r GroupRecord) Clone() GroupRecord {
	assignment := make(map[DeviceID]Share, len(r.ShareAssignment))
	for id, share := range r.ShareAssignment {
		assignment[id] = share.Clone()
	}
	out := r
	out.ShareAssignment = assignment
	return out
}
