// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	p, err := ParsePayload(`{"email":"a@b.co","timestamp":17,"ok":true,"extra":{"n":1},"empty":""}`)
	require.NoError(t, err)

	assert.Equal(t, "a@b.co", p["email"])
	assert.Equal(t, "17", p["timestamp"])
	assert.Equal(t, "true", p["ok"])
	assert.Equal(t, `{"n":1}`, p["extra"])

	_, ok := p.present("empty")
	assert.False(t, ok)
	v, ok := p.Get("empty")
	assert.True(t, ok)
	assert.Empty(t, v)

	for _, text := range []string{`null`, `[1,2]`, `"str"`, `{`, ``} {
		_, err := ParsePayload(text)
		require.ErrorIs(t, err, ErrMalformedPayload, text)
	}
}

func TestPayload_Identity(t *testing.T) {
	p := Payload{FieldData: "blob", FieldUserID: "U1"}
	field, value, ok := p.Identity()
	require.True(t, ok)
	assert.Equal(t, FieldUserID, field)
	assert.Equal(t, "U1", value)

	_, _, ok = Payload{}.Identity()
	assert.False(t, ok)
}

func TestPayload_String(t *testing.T) {
	p := Payload{"nonce": "ab", "email": "a@b.co"}
	assert.Equal(t, "email=a@b.co nonce=ab", p.String())
}

func TestExtractField(t *testing.T) {
	text := `{"email":"user@example.com","nonce":"ab12","timestamp":1700000000000}`

	v, ok := ExtractField(text, "email")
	assert.True(t, ok)
	assert.Equal(t, "user@example.com", v)

	v, ok = ExtractField(text, "timestamp")
	assert.True(t, ok)
	assert.Equal(t, "1700000000000", v)

	_, ok = ExtractField(text, "userId")
	assert.False(t, ok)

	_, ok = ExtractField("not json", "email")
	assert.False(t, ok)

	_, ok = ExtractField(text, "")
	assert.False(t, ok)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNone, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindMissingField, KindOf(missingField(FieldNonce)))

	for _, k := range kinds {
		assert.Equal(t, k.kind, KindOf(k.err))
		assert.Equal(t, k.err, ErrorForKind(k.kind))
	}
	assert.Nil(t, ErrorForKind("NOPE"))
}
