// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/shintya-qr/internal/envelope"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidIdentity is returned when an email identity is not a valid
	// address.
	ErrInvalidIdentity = errors.New("invalid identity")

	// ErrUnknownIdentity is returned when the identity is not registered.
	ErrUnknownIdentity = errors.New("unknown identity")

	// ErrEnvelopeReplayed is returned when the envelope nonce was already
	// admitted for the identity.
	ErrEnvelopeReplayed = errors.New("envelope was already admitted")

	// ErrIdentityTaken is returned when registering an identity twice.
	ErrIdentityTaken = errors.New("identity is already registered")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// Transport codes for service errors. Envelope errors keep the codes of
// [envelope.Kind].
const (
	KindInvalidData     envelope.Kind = "INVALID_REQUEST"
	KindInvalidIdentity envelope.Kind = "INVALID_IDENTITY"
	KindUnknownIdentity envelope.Kind = "UNKNOWN_IDENTITY"
	KindReplayed        envelope.Kind = "NONCE_REPLAYED"
	KindIdentityTaken   envelope.Kind = "IDENTITY_TAKEN"
)

var kinds = []struct {
	kind envelope.Kind
	err  error
}{
	{KindInvalidData, ErrInvalidDataProvided},
	{KindInvalidIdentity, ErrInvalidIdentity},
	{KindUnknownIdentity, ErrUnknownIdentity},
	{KindReplayed, ErrEnvelopeReplayed},
	{KindIdentityTaken, ErrIdentityTaken},
}

// KindOf returns the transport code of err, looking at service errors first
// and envelope errors second.
func KindOf(err error) envelope.Kind {
	if err == nil {
		return envelope.KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return envelope.KindOf(err)
}

// ErrorForKind is the inverse of [KindOf]. It returns nil for unknown codes.
func ErrorForKind(kind envelope.Kind) error {
	for _, k := range kinds {
		if k.kind == kind {
			return k.err
		}
	}
	return envelope.ErrorForKind(kind)
}
