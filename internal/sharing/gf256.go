// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sharing

// GF(256) arithmetic with the AES reduction polynomial x^8+x^4+x^3+x+1.
// Addition is XOR; multiplication is carry-less shift-and-add with modular
// reduction. Constant small loops, no tables.

// gfMul multiplies a and b in GF(256).
func gfMul(a, b byte) byte {
	var product byte
	for b > 0 {
		if b&1 == 1 {
			product ^= a
		}
		carry := a&0x80 != 0
		a <<= 1
		if carry {
			a ^= 0x1b
		}
		b >>= 1
	}
	return product
}

// gfInv returns the multiplicative inverse of a nonzero element, computed as
// a^254 (the group of units has order 255). gfInv(0) is never called by this
// package; it would return 0.
func gfInv(a byte) byte {
	// Square-and-multiply over the fixed exponent 254 = 0b11111110.
	var result byte = 1
	base := a
	for exp := 254; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			result = gfMul(result, base)
		}
		base = gfMul(base, base)
	}
	return result
}

// gfDiv divides a by a nonzero b.
func gfDiv(a, b byte) byte {
	return gfMul(a, gfInv(b))
}

// gfEval evaluates the polynomial with the given coefficients (constant term
// first) at x, using Horner's rule.
func gfEval(coefficients []byte, x byte) byte {
	var y byte
	for i := len(coefficients) - 1; i >= 0; i-- {
		y = gfMul(y, x) ^ coefficients[i]
	}
	return y
}
