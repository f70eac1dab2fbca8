// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

// Checksum returns the rolling hash h = h*31 + b over the bytes of s, kept in
// 32-bit two's-complement arithmetic, as a non-negative value. This is the
// same value the companion app libraries compute with (h<<5)-h+c, so both
// producers and the validator agree on it. The empty string hashes to 0.
func Checksum(s string) int64 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(s[i])
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}
