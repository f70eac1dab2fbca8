// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/base64"
	"strings"
)

const padding = '='

// EncodeBase64 encodes b with the standard alphabet and '=' padding.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 strips trailing padding from s and decodes the remaining
// characters. A final group of two or three characters yields one or two
// bytes; leftover low bits are dropped. Any character outside the alphabet,
// including a '=' that is not trailing, fails with
// [ErrInvalidBase64Character] and no bytes.
func DecodeBase64(s string) ([]byte, error) {
	stripped := strings.TrimRight(s, string(padding))
	for i := 0; i < len(stripped); i++ {
		if !isAlphabet(stripped[i]) {
			return nil, ErrInvalidBase64Character
		}
	}
	if len(stripped)%4 == 1 {
		return nil, ErrInvalidBase64
	}

	out, err := base64.RawStdEncoding.DecodeString(stripped)
	if err != nil {
		return nil, ErrInvalidBase64Character
	}
	return out, nil
}

// ValidBase64 reports whether s passes the structural envelope pre-check.
func ValidBase64(s string) bool {
	return checkBase64(s) == nil
}

// checkBase64 runs the structural pre-check applied before any decode: s must
// be non-empty, contain only alphabet and padding characters, have a length
// that is a multiple of 4, and must not leave a single character in the final
// group once padding is stripped.
func checkBase64(s string) error {
	if len(s) == 0 || len(s)%4 != 0 {
		return ErrInvalidBase64
	}
	for i := 0; i < len(s); i++ {
		if !isAlphabet(s[i]) && s[i] != padding {
			return ErrInvalidBase64
		}
	}
	if len(strings.TrimRight(s, string(padding)))%4 == 1 {
		return ErrInvalidBase64
	}
	return nil
}

func isAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '+', c == '/':
		return true
	}
	return false
}
