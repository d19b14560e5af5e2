package models

import (
	"fmt"
	"strings"
	"time"
)

// accountKeySeparator joins site and user names inside the canonical account
// key. The ASCII unit separator cannot appear in either field.
const accountKeySeparator = "\x1f"

// AccountKey uniquely identifies one stored account within a replica.
type AccountKey struct {
	// SiteName is the site or service the credentials belong to.
	SiteName string `json:"site_name"`

	// UserName is the login name at that site.
	UserName string `json:"user_name"`
}

// String returns the canonical key form used for deterministic ordering and
// last-writer-wins tie-breaks.
func (k AccountKey) String() string {
	return k.SiteName + accountKeySeparator + k.UserName
}

// MarshalText implements encoding.TextMarshaler so AccountKey can key JSON maps.
func (k AccountKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AccountKey) UnmarshalText(text []byte) error {
	site, user, ok := strings.Cut(string(text), accountKeySeparator)
	if !ok {
		return fmt.Errorf("malformed account key %q", text)
	}

	k.SiteName = site
	k.UserName = user
	return nil
}

// EncryptedPassword is an account password sealed under its group secret:
// a base64 blob of nonce followed by AES-GCM ciphertext. Opaque to every
// layer except the keychain.
type EncryptedPassword string

// AccountEntry is the replicated record of one stored account. Concurrent
// creation of the same key on two replicas resolves by CreatedAt
// (last writer wins), with the lexicographic key as a stable tie-break.
type AccountEntry struct {
	// Key is the (site, user) pair identifying the account.
	Key AccountKey `json:"key"`

	// GroupID names the group whose secret seals Ciphertext.
	GroupID GroupID `json:"group_id"`

	// Ciphertext is the account password encrypted under the group secret.
	Ciphertext EncryptedPassword `json:"ciphertext"`

	// CreatedAt orders concurrent writes to the same key.
	CreatedAt time.Time `json:"created_at"`
}

// supersedes reports whether e wins over other under last-writer-wins on
// CreatedAt with a deterministic tie-break. Both orderings of any pair give a
// single winner, which keeps the account merge associative.
func (e AccountEntry) supersedes(other AccountEntry) bool {
	if !e.CreatedAt.Equal(other.CreatedAt) {
		return e.CreatedAt.After(other.CreatedAt)
	}
	if e.Key.String() != other.Key.String() {
		return e.Key.String() > other.Key.String()
	}
	return string(e.Ciphertext) > string(other.Ciphertext)
}
