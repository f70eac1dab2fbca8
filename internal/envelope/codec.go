// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Codec parameters shared with the companion app and scanner firmware.
const (
	Version   = "1.0.0"
	Algorithm = "XOR + Caesar + Base64"

	DefaultKey   = "SHINTYA_2024_SECRET"
	DefaultShift = 7

	MinKeyLength = 8
	MinShift     = 1
	MaxShift     = 25
)

// Codec encodes and decodes envelopes with a fixed secret key and shift.
// Both are set once by [NewCodec]; a Codec holds no other state and is safe
// for concurrent use.
type Codec struct {
	key       []byte
	shift     int
	clock     Clock
	validator *Validator
}

// NewCodec returns a Codec for key and shift. The key must be at least
// [MinKeyLength] bytes and the shift within [MinShift, MaxShift]. Options
// configure the payload validator used by [Codec.Decode] and the clock used by
// [Codec.Seal].
func NewCodec(key []byte, shift int, opts ...Option) (*Codec, error) {
	if len(key) < MinKeyLength {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrKeyTooShort, len(key), MinKeyLength)
	}
	if shift < MinShift || shift > MaxShift {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrShiftOutOfRange, shift, MinShift, MaxShift)
	}

	v := NewValidator(opts...)
	return &Codec{
		key:       append([]byte(nil), key...),
		shift:     shift,
		clock:     v.opts.clock,
		validator: v,
	}, nil
}

// Encode masks, shifts and Base64-encodes payload.
func (c *Codec) Encode(payload []byte) string {
	return EncodeBase64(Shift(Mask(payload, c.key), c.shift))
}

// DecodeBytes reverses [Codec.Encode]: Base64 decode, unshift, unmask, in
// that order. It is an exact inverse on bytes; the result need not be text.
func (c *Codec) DecodeBytes(envelope string) ([]byte, error) {
	if envelope == "" {
		return nil, ErrEmptyInput
	}
	if err := checkBase64(envelope); err != nil {
		return nil, err
	}

	raw, err := DecodeBase64(envelope)
	if err != nil {
		return nil, err
	}
	return Mask(Unshift(raw, c.shift), c.key), nil
}

// Decode recovers and validates the payload carried by envelope.
func (c *Codec) Decode(envelope string) (Payload, error) {
	b, err := c.DecodeBytes(envelope)
	if err != nil {
		return nil, err
	}
	text, err := payloadText(b)
	if err != nil {
		return nil, err
	}
	return c.validator.Validate(text)
}

// Valid reports whether envelope decodes to an accepted payload.
func (c *Codec) Valid(envelope string) bool {
	_, err := c.Decode(envelope)
	return err == nil
}

// Validator returns the payload validator used by [Codec.Decode].
func (c *Codec) Validator() *Validator {
	return c.validator
}

// Shift returns the configured shift amount.
func (c *Codec) Shift() int {
	return c.shift
}

// String describes the codec without revealing the key.
func (c *Codec) String() string {
	return fmt.Sprintf("envelope.Codec{key: %d bytes, shift: %d, maxAge: %s, freshness: %t}",
		len(c.key), c.shift, c.validator.MaxAge(), c.validator.FreshnessEnforced())
}

// payloadText interprets recovered bytes as payload text: valid UTF-8 that,
// once trimmed, starts with '{' and ends with '}'.
func payloadText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: recovered bytes are not text", ErrMalformedPayload)
	}
	text := strings.TrimSpace(string(b))
	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		return "", fmt.Errorf("%w: not brace-delimited", ErrMalformedPayload)
	}
	return text, nil
}

// sealedPayload is the field set written by [Codec.Seal].
type sealedPayload struct {
	Email     string `json:"email,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Data      string `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Nonce     string `json:"nonce"`
	SessionID string `json:"sessionId"`
	Checksum  int64  `json:"checksum"`
	Version   string `json:"version"`
}

// Seal builds a fresh payload for identity under identityField (one of
// [IdentityFields]), stamps it with the codec clock, a new nonce, a session
// id, the identity checksum and [Version], and encodes it. Two calls never
// produce the same envelope for the same identity.
func (c *Codec) Seal(identityField, identity string) (string, error) {
	if identity == "" {
		return "", missingField(identityField)
	}

	now := c.clock()
	p := sealedPayload{
		Timestamp: now,
		Nonce:     Nonce(DefaultNonceLength),
		SessionID: SessionID(now),
		Checksum:  Checksum(identity),
		Version:   Version,
	}
	switch identityField {
	case FieldEmail:
		p.Email = identity
	case FieldUserID:
		p.UserID = identity
	case FieldData:
		p.Data = identity
	default:
		return "", fmt.Errorf("%w: %q is not one of %s", ErrMissingField, identityField, strings.Join(IdentityFields, ", "))
	}

	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return c.Encode(b), nil
}
