// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sharing

import "errors"

var (
	// ErrInvalidParameters reports an out-of-range threshold or share count,
	// or an empty secret.
	ErrInvalidParameters = errors.New("invalid split parameters")

	// ErrMalformedShare reports structurally broken input to reconstruction:
	// no shares, a zero x-coordinate, duplicate x-coordinates, or shares of
	// unequal length.
	ErrMalformedShare = errors.New("malformed share")

	// ErrInsufficientShares reports that fewer distinct shares were supplied
	// than the threshold requires.
	ErrInsufficientShares = errors.New("insufficient shares")
)
