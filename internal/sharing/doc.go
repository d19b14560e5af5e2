// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sharing implements Shamir threshold secret sharing over GF(256).
//
// A secret of L bytes is split into N shares of L bytes each: every byte
// position gets its own random polynomial of degree K-1 with the secret byte
// as constant term, evaluated at the same N nonzero x-coordinates. Any K
// shares reconstruct the secret exactly by Lagrange interpolation at x=0;
// fewer than K shares are information-theoretically indistinguishable from
// random. All arithmetic is exact field arithmetic — there is no rounding
// and no approximation anywhere.
//
// The package is stateless and knows nothing about devices, groups or
// replication; it only operates on byte sequences and [models.Share] values.
package sharing
