// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"errors"
	"fmt"
)

// Construction-time errors. A codec is never returned together with one of
// these, so they surface before any Encode or Decode call.
var (
	// ErrKeyTooShort is returned by [NewCodec] when the secret key is shorter
	// than [MinKeyLength] bytes.
	ErrKeyTooShort = errors.New("secret key is too short")

	// ErrShiftOutOfRange is returned by [NewCodec] when the shift amount lies
	// outside [MinShift, MaxShift].
	ErrShiftOutOfRange = errors.New("shift amount is out of range")
)

// Decode-time errors. Each stage of the pipeline fails closed with exactly one
// of these; callers match them with [errors.Is].
var (
	// ErrEmptyInput is returned when the envelope text is empty.
	ErrEmptyInput = errors.New("empty envelope")

	// ErrInvalidBase64 is returned when the envelope fails the structural
	// pre-check (alphabet, length multiple of 4, usable final group).
	ErrInvalidBase64 = errors.New("invalid base64 envelope")

	// ErrInvalidBase64Character is returned when an alphabet lookup fails
	// while decoding, e.g. a '=' that is not trailing padding.
	ErrInvalidBase64Character = errors.New("invalid base64 character")

	// ErrMalformedPayload is returned when the recovered bytes are not a
	// brace-delimited field set.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrMissingField is matched by every [*MissingFieldError].
	ErrMissingField = errors.New("missing required field")

	// ErrAmbiguousIdentity is returned when a payload carries more than one
	// identity field.
	ErrAmbiguousIdentity = errors.New("more than one identity field")

	// ErrInvalidNonceFormat is returned when the nonce is not a hex string.
	ErrInvalidNonceFormat = errors.New("invalid nonce format")

	// ErrChecksumMismatch is returned when the checksum field does not match
	// the checksum recomputed over the identity field.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrTimestampExpired is returned when the payload timestamp is zero or
	// older than the freshness window.
	ErrTimestampExpired = errors.New("timestamp expired")
)

// MissingFieldError reports the name of a required payload field that was not
// found. It matches [ErrMissingField] through [errors.Is].
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

// Is reports whether target is [ErrMissingField].
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func missingField(name string) error {
	return &MissingFieldError{Field: name}
}

// Kind is a stable, transport-safe code for an envelope error.
type Kind string

const (
	KindNone               Kind = ""
	KindEmptyInput         Kind = "EMPTY_INPUT"
	KindInvalidBase64      Kind = "INVALID_BASE64"
	KindInvalidBase64Char  Kind = "INVALID_BASE64_CHARACTER"
	KindMalformedPayload   Kind = "MALFORMED_PAYLOAD"
	KindMissingField       Kind = "MISSING_FIELD"
	KindAmbiguousIdentity  Kind = "AMBIGUOUS_IDENTITY"
	KindInvalidNonceFormat Kind = "INVALID_NONCE_FORMAT"
	KindChecksumMismatch   Kind = "CHECKSUM_MISMATCH"
	KindTimestampExpired   Kind = "TIMESTAMP_EXPIRED"
	KindKeyTooShort        Kind = "KEY_TOO_SHORT"
	KindShiftOutOfRange    Kind = "SHIFT_OUT_OF_RANGE"
	KindUnknown            Kind = "UNKNOWN"
)

var kinds = []struct {
	kind Kind
	err  error
}{
	{KindEmptyInput, ErrEmptyInput},
	{KindInvalidBase64, ErrInvalidBase64},
	{KindInvalidBase64Char, ErrInvalidBase64Character},
	{KindMalformedPayload, ErrMalformedPayload},
	{KindMissingField, ErrMissingField},
	{KindAmbiguousIdentity, ErrAmbiguousIdentity},
	{KindInvalidNonceFormat, ErrInvalidNonceFormat},
	{KindChecksumMismatch, ErrChecksumMismatch},
	{KindTimestampExpired, ErrTimestampExpired},
	{KindKeyTooShort, ErrKeyTooShort},
	{KindShiftOutOfRange, ErrShiftOutOfRange},
}

// KindOf returns the [Kind] of err. A nil error yields [KindNone]; an error
// that wraps none of the package sentinels yields [KindUnknown].
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// ErrorForKind returns the sentinel error for kind, or nil when kind is not
// one of the package's codes.
func ErrorForKind(kind Kind) error {
	for _, k := range kinds {
		if k.kind == kind {
			return k.err
		}
	}
	return nil
}
