// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Payload field names understood by the validator.
const (
	FieldTimestamp = "timestamp"
	FieldNonce     = "nonce"
	FieldChecksum  = "checksum"
	FieldSessionID = "sessionId"
	FieldVersion   = "version"

	FieldEmail  = "email"
	FieldUserID = "userId"
	FieldData   = "data"
)

// IdentityFields lists the identity field names in precedence order. A valid
// payload carries exactly one of them.
var IdentityFields = []string{FieldEmail, FieldUserID, FieldData}

// IsIdentityField reports whether name is one of [IdentityFields].
func IsIdentityField(name string) bool {
	return slices.Contains(IdentityFields, name)
}

// Payload is the flat field set recovered from an envelope. Quoted values are
// stored unquoted; numbers, booleans and nested values keep their raw text.
type Payload map[string]string

// ParsePayload parses text as a JSON object into a [Payload]. Unknown fields
// are kept. Text that is not a JSON object fails with [ErrMalformedPayload].
func ParsePayload(text string) (Payload, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: not an object", ErrMalformedPayload)
	}

	p := make(Payload, len(raw))
	for name, value := range raw {
		p[name] = fieldText(value)
	}
	return p, nil
}

func fieldText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// Get returns the value of the named field.
func (p Payload) Get(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// present reports a field that exists and is not empty.
func (p Payload) present(name string) (string, bool) {
	v, ok := p[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Timestamp returns the timestamp field as an integer.
func (p Payload) Timestamp() (int64, bool) {
	v, ok := p.present(FieldTimestamp)
	if !ok {
		return 0, false
	}
	ts, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}

// Checksum returns the checksum field as an integer.
func (p Payload) Checksum() (int64, bool) {
	v, ok := p.present(FieldChecksum)
	if !ok {
		return 0, false
	}
	sum, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return sum, true
}

// Identity returns the first identity field present, in [IdentityFields]
// order, and its value.
func (p Payload) Identity() (field, value string, ok bool) {
	for _, f := range IdentityFields {
		if v, found := p.present(f); found {
			return f, v, true
		}
	}
	return "", "", false
}

func (p Payload) Nonce() string     { return p[FieldNonce] }
func (p Payload) SessionID() string { return p[FieldSessionID] }
func (p Payload) Version() string   { return p[FieldVersion] }

// String renders the payload as "name=value" pairs in a stable order; used by
// the CLI.
func (p Payload) String() string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(p[name])
	}
	return b.String()
}
