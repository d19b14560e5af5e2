package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns every symmetric operation keyed by a group secret.
// It knows nothing about devices, replication or storage; it only turns
// plaintext passwords into opaque blobs and back.
//
// Scheme:
//
//	secret = GenerateGroupSecret()            (at group creation)
//	blob   = SealPassword(secret, password)   (stored in the document)
//	pass   = OpenPassword(secret, blob)       (after threshold unlock)
type KeyChainService interface {
	// GenerateGroupSecret draws a fresh 32-byte (256-bit) group secret from
	// the OS CSPRNG. The secret is what gets split into device shares; it
	// never leaves the process in plain form.
	GenerateGroupSecret() ([]byte, error)

	// SealPassword encrypts plaintext under the group secret with
	// AES-256-GCM. The encryption key is derived from the secret via
	// HKDF-SHA256, so the raw secret doubles as share material without ever
	// being used as a cipher key directly. Returns a base64 blob of
	// nonce || ciphertext.
	SealPassword(groupSecret []byte, plaintext string) (string, error)

	// OpenPassword reverses SealPassword. A wrong or partially
	// reconstructed secret fails the GCM authentication check and yields
	// ErrDecryptionFailed — a terminal outcome; retrying cannot change a
	// cryptographic verification result.
	OpenPassword(groupSecret []byte, blob string) (string, error)
}
