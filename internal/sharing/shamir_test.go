// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sharing

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shard-keeper/models"
)

func TestGF256_FieldLaws(t *testing.T) {
	// Spot-check multiplicative structure on every nonzero element.
	for a := 1; a < 256; a++ {
		inv := gfInv(byte(a))
		require.Equal(t, byte(1), gfMul(byte(a), inv), "a * a^-1 must be 1 for a=%d", a)
		require.Equal(t, byte(a), gfDiv(byte(a), 1))
	}

	assert.Equal(t, byte(0), gfMul(0, 123))
	assert.Equal(t, gfMul(57, 131), gfMul(131, 57), "multiplication commutes")
}

func TestSplit_ParameterValidation(t *testing.T) {
	secret := []byte("p@ss1")

	tests := []struct {
		name string
		k, n int
		data []byte
	}{
		{name: "zero threshold", k: 0, n: 3, data: secret},
		{name: "threshold above share count", k: 4, n: 3, data: secret},
		{name: "too many shares", k: 2, n: 256, data: secret},
		{name: "empty secret", k: 2, n: 3, data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.data, tt.k, tt.n, rand.Reader)
			require.ErrorIs(t, err, ErrInvalidParameters)
		})
	}
}

func TestSplitCombine_EveryKSubsetRoundTrips(t *testing.T) {
	secret := make([]byte, 32)
	_, err := rand.Read(secret)
	require.NoError(t, err)

	const k, n = 3, 5
	shares, err := Split(secret, k, n, rand.Reader)
	require.NoError(t, err)
	require.Len(t, shares, n)

	for _, subset := range subsets(shares, k) {
		got, err := Combine(subset)
		require.NoError(t, err)
		assert.Equal(t, secret, got, "subset %v must reconstruct exactly", xs(subset))
	}
}

func TestSplitCombine_MoreThanKSharesStillExact(t *testing.T) {
	secret := []byte("correct horse battery staple")

	shares, err := Split(secret, 2, 4, rand.Reader)
	require.NoError(t, err)

	got, err := Combine(shares)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestCombine_BelowThresholdRevealsNothing(t *testing.T) {
	secret := make([]byte, 32)
	_, err := rand.Read(secret)
	require.NoError(t, err)

	const k, n = 3, 5
	shares, err := Split(secret, k, n, rand.Reader)
	require.NoError(t, err)

	// Interpolating through only k-1 points yields field noise, never the
	// secret. Check every (k-1)-subset.
	for _, subset := range subsets(shares, k-1) {
		got, err := Combine(subset)
		require.NoError(t, err)
		assert.False(t, bytes.Equal(secret, got), "k-1 shares must not recover the secret")
	}
}

func TestCombine_MalformedShares(t *testing.T) {
	shares, err := Split([]byte("p@ss1"), 2, 3, rand.Reader)
	require.NoError(t, err)

	t.Run("no shares", func(t *testing.T) {
		_, err := Combine(nil)
		require.ErrorIs(t, err, ErrMalformedShare)
	})

	t.Run("duplicate x", func(t *testing.T) {
		_, err := Combine([]models.Share{shares[0], shares[0]})
		require.ErrorIs(t, err, ErrMalformedShare)
	})

	t.Run("zero x", func(t *testing.T) {
		_, err := Combine([]models.Share{{X: 0, Ys: []byte{1, 2}}})
		require.ErrorIs(t, err, ErrMalformedShare)
	})

	t.Run("ragged lengths", func(t *testing.T) {
		short := shares[1].Clone()
		short.Ys = short.Ys[:2]
		_, err := Combine([]models.Share{shares[0], short})
		require.ErrorIs(t, err, ErrMalformedShare)
	})

	t.Run("empty ys", func(t *testing.T) {
		_, err := Combine([]models.Share{{X: 1}})
		require.ErrorIs(t, err, ErrMalformedShare)
	})
}

func TestCombineThreshold(t *testing.T) {
	secret := []byte("p@ss1")
	shares, err := Split(secret, 3, 4, rand.Reader)
	require.NoError(t, err)

	_, err = CombineThreshold(shares[:2], 3)
	require.ErrorIs(t, err, ErrInsufficientShares)

	got, err := CombineThreshold(shares[:3], 3)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestSplit_SingleShareDegenerateCase(t *testing.T) {
	// k=1: the share is the secret itself and reconstructs alone.
	secret := []byte{0xde, 0xad, 0xbe, 0xef}
	shares, err := Split(secret, 1, 1, rand.Reader)
	require.NoError(t, err)

	got, err := Combine(shares)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

// subsets returns all k-element subsets of shares.
func subsets(shares []models.Share, k int) [][]models.Share {
	var out [][]models.Share
	var walk func(start int, current []models.Share)
	walk = func(start int, current []models.Share) {
		if len(current) == k {
			out = append(out, append([]models.Share(nil), current...))
			return
		}
		for i := start; i < len(shares); i++ {
			walk(i+1, append(current, shares[i]))
		}
	}
	walk(0, nil)
	return out
}

// xs lists the x-coordinates of a share set for test failure messages.
func xs(shares []models.Share) []byte {
	out := make([]byte, len(shares))
	for i, s := range shares {
		out[i] = s.X
	}
	return out
}
