// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBase64(t *testing.T) {
	assert.Equal(t, "aGk=", EncodeBase64([]byte("hi")))
	assert.Equal(t, "aGV5", EncodeBase64([]byte("hey")))
	assert.Equal(t, "", EncodeBase64(nil))
}

func TestDecodeBase64(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr error
	}{
		{name: "padded", in: "aGk=", want: []byte("hi")},
		{name: "full group", in: "aGV5", want: []byte("hey")},
		{name: "unpadded partial group", in: "aGk", want: []byte("hi")},
		{name: "interior padding", in: "aG=k", wantErr: ErrInvalidBase64Character},
		{name: "foreign character", in: "aG*k", wantErr: ErrInvalidBase64Character},
		{name: "single char final group", in: "aGV5a", wantErr: ErrInvalidBase64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidBase64(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "aGk=", want: true},
		{in: "aGV5", want: true},
		{in: "", want: false},
		{in: "ABCDEFG", want: false},
		{in: "aGk", want: false},
		{in: "aG k", want: false},
		{in: "a===", want: false},
		{in: "aG=k", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidBase64(tt.in))
		})
	}
}

func TestBase64_RoundTrip(t *testing.T) {
	f := func(b []byte) bool {
		out, err := DecodeBase64(EncodeBase64(b))
		return err == nil && bytes.Equal(out, b)
	}
	require.NoError(t, quick.Check(f, nil))
}
