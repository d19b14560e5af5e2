// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sharing

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-shard-keeper/models"
)

// MaxShares bounds the share count: x-coordinates are the nonzero field
// elements 1..255.
const MaxShares = 255

// Split shares secret into n shares with reconstruction threshold k, drawing
// polynomial coefficients from random. Requires 1 <= k <= n <= 255 and a
// nonempty secret. Shares are returned in x-coordinate order x=1..n.
//
// Coefficients are drawn fresh for every byte position on every call; a
// coefficient is never reused across invocations.
func Split(secret []byte, k, n int, random io.Reader) ([]models.Share, error) {
	if k < 1 || n < k || n > MaxShares {
		return nil, fmt.Errorf("%w: k=%d n=%d", ErrInvalidParameters, k, n)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidParameters)
	}

	shares := make([]models.Share, n)
	for i := range shares {
		shares[i] = models.Share{X: byte(i + 1), Ys: make([]byte, len(secret))}
	}

	coefficients := make([]byte, k)
	for position, secretByte := range secret {
		coefficients[0] = secretByte
		if _, err := io.ReadFull(random, coefficients[1:]); err != nil {
			return nil, fmt.Errorf("read polynomial coefficients: %w", err)
		}

		for i := range shares {
			shares[i].Ys[position] = gfEval(coefficients, shares[i].X)
		}
	}

	return shares, nil
}

// Combine reconstructs the secret from the given shares by Lagrange
// interpolation at x=0 of every byte position. The shares must be
// structurally sound: at least one share, all of equal nonzero length, all
// with distinct nonzero x-coordinates — anything else is ErrMalformedShare.
//
// Combine is stateless and cannot know the threshold the secret was split
// with; feeding it fewer shares than that threshold yields bytes that are
// indistinguishable from random, not an error. Use [CombineThreshold] when
// the threshold is known.
func Combine(shares []models.Share) ([]byte, error) {
	if err := checkShares(shares); err != nil {
		return nil, err
	}

	secret := make([]byte, len(shares[0].Ys))
	for j, share := range shares {
		// Lagrange basis polynomial of share j evaluated at x=0. In a
		// characteristic-2 field 0-x equals x, so the numerator is the
		// product of the other x-coordinates.
		var basis byte = 1
		for m, other := range shares {
			if m == j {
				continue
			}
			basis = gfMul(basis, gfDiv(other.X, other.X^share.X))
		}

		for position, y := range share.Ys {
			secret[position] ^= gfMul(basis, y)
		}
	}

	return secret, nil
}

// CombineThreshold reconstructs the secret from shares, first enforcing that
// at least k distinct-x shares are present. Returns ErrInsufficientShares
// otherwise.
func CombineThreshold(shares []models.Share, k int) ([]byte, error) {
	if err := checkShares(shares); err != nil {
		return nil, err
	}
	if len(shares) < k {
		return nil, fmt.Errorf("%w: have %d of %d", ErrInsufficientShares, len(shares), k)
	}
	return Combine(shares)
}

// checkShares validates the structural soundness of a share set.
func checkShares(shares []models.Share) error {
	if len(shares) == 0 {
		return fmt.Errorf("%w: no shares", ErrMalformedShare)
	}

	length := len(shares[0].Ys)
	if length == 0 {
		return fmt.Errorf("%w: empty share", ErrMalformedShare)
	}

	var seen [256]bool
	for _, share := range shares {
		if share.X == 0 {
			return fmt.Errorf("%w: zero x-coordinate", ErrMalformedShare)
		}
		if seen[share.X] {
			return fmt.Errorf("%w: duplicate x-coordinate %d", ErrMalformedShare, share.X)
		}
		seen[share.X] = true
		if len(share.Ys) != length {
			return fmt.Errorf("%w: share lengths differ", ErrMalformedShare)
		}
	}

	return nil
}
