// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/envelope"
	"github.com/stretchr/testify/require"
)

const testNow int64 = 1_700_000_000_000

var testTime = time.UnixMilli(testNow).UTC()

func newTestCodec(t *testing.T) *envelope.Codec {
	t.Helper()
	codec, err := envelope.NewCodec([]byte(envelope.DefaultKey), envelope.DefaultShift,
		envelope.WithClock(func() int64 { return testNow }))
	require.NoError(t, err)
	return codec
}

func seal(t *testing.T, codec *envelope.Codec, field, identity string) string {
	t.Helper()
	env, err := codec.Seal(field, identity)
	require.NoError(t, err)
	return env
}
