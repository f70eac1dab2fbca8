// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"math/rand/v2"
	"strconv"
)

// DefaultNonceLength is the nonce length used by [Codec.Seal].
const DefaultNonceLength = 8

const hexDigits = "0123456789abcdef"

// Nonce returns n random lowercase hex characters. The nonce only tells
// otherwise identical payloads apart, so it is drawn from math/rand. A
// non-positive n yields [DefaultNonceLength] characters.
func Nonce(n int) string {
	if n <= 0 {
		n = DefaultNonceLength
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = hexDigits[rand.IntN(len(hexDigits))]
	}
	return string(b)
}

// SessionID returns "sess_<now>_<suffix>" where suffix is six random digits.
func SessionID(now int64) string {
	return "sess_" + strconv.FormatInt(now, 10) + "_" + strconv.Itoa(100000+rand.IntN(900000))
}
