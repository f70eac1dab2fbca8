// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope implements the QR envelope codec shared with the companion
// app and the scanner firmware.
//
// An envelope is Base64(Shift(Mask(payload))): the payload bytes are XORed
// with a repeating secret key, every byte is shifted by a fixed amount modulo
// 256, and the result is encoded with the standard Base64 alphabet. Decoding
// runs the steps in reverse and then validates the recovered field set:
//
//	timestamp and nonce present
//	exactly one of email, userId or data present
//	nonce is hexadecimal
//	checksum, when present, matches the identity field
//	timestamp is non-zero and within the freshness window
//
// The transforms provide obfuscation, not confidentiality or integrity. The
// checksum detects accidental corruption only, and anyone holding the key can
// forge a valid envelope.
package envelope
