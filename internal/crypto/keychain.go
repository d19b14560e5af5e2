// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrDecryptionFailed reports a failed authentication check when opening a
// sealed password: the group secret is wrong, incomplete, or the blob was
// tampered with. Surfaced to the user as-is and never retried automatically.
var ErrDecryptionFailed = errors.New("decryption failed")

// hkdfInfo domain-separates the password-sealing key from any other use of
// the group secret.
const hkdfInfo = "shard-keeper/account-password/v1"

// groupSecretLen is the size of a freshly generated group secret.
const groupSecretLen = 32

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct{}

// NewKeyChainService constructs the default [KeyChainService]:
// AES-256-GCM with HKDF-SHA256 key derivation and 32-byte group secrets.
func NewKeyChainService() KeyChainService {
	return &keyChainService{}
}

// GenerateGroupSecret implements [KeyChainService]. It reads 32 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateGroupSecret() ([]byte, error) {
	secret := make([]byte, groupSecretLen)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, err
	}
	return secret, nil
}

// SealPassword implements [KeyChainService]. It derives the cipher key from
// groupSecret, encrypts plaintext with AES-256-GCM under a random 12-byte
// nonce, and returns base64(nonce || ciphertext). The nonce is prepended so
// OpenPassword can split it out: blob = nonce ‖ ciphertext.
func (k *keyChainService) SealPassword(groupSecret []byte, plaintext string) (string, error) {
	gcm, err := k.cipherForSecret(groupSecret)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, ciphertext...)), nil
}

// OpenPassword implements [KeyChainService]. It base64-decodes blob, splits
// out the nonce, and decrypts with the key derived from groupSecret. A
// malformed blob or a failed authentication tag yields ErrDecryptionFailed.
func (k *keyChainService) OpenPassword(groupSecret []byte, blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}

	gcm, err := k.cipherForSecret(groupSecret)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

// cipherForSecret derives the AES-256 key from groupSecret via HKDF-SHA256
// and builds the GCM AEAD.
func (k *keyChainService) cipherForSecret(groupSecret []byte) (cipher.AEAD, error) {
	if len(groupSecret) == 0 {
		return nil, fmt.Errorf("empty group secret")
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, groupSecret, nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
