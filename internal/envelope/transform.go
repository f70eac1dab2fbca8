// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

// Mask XORs every byte of b with the repeating key. Mask is its own inverse:
// Mask(Mask(b, key), key) equals b. The input slice is not modified. An empty
// key returns a copy of b; [NewCodec] never lets one through.
func Mask(b, key []byte) []byte {
	out := make([]byte, len(b))
	if len(key) == 0 {
		copy(out, b)
		return out
	}
	for i, v := range b {
		out[i] = v ^ key[i%len(key)]
	}
	return out
}

// Shift adds s to every byte of b modulo 256.
func Shift(b []byte, s int) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = byte((int(v) + s) & 0xff)
	}
	return out
}

// Unshift is the exact inverse of [Shift]: every byte becomes
// (v - s + 256) mod 256.
func Unshift(b []byte, s int) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = byte((int(v) - s + 256) & 0xff)
	}
	return out
}
