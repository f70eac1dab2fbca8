// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/config"
	"github.com/MKhiriev/shintya-qr/internal/envelope"
	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/mock"
	"github.com/MKhiriev/shintya-qr/internal/service"
	"github.com/MKhiriev/shintya-qr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testNow int64 = 1_700_000_000_000

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return f.err
}

type testApp struct {
	*App
	out  *bytes.Buffer
	clip *fakeClipboard
}

func newTestApp(t *testing.T, in string, gate *mock.MockGateAdapter) testApp {
	t.Helper()
	codec, err := envelope.NewCodec([]byte(envelope.DefaultKey), envelope.DefaultShift,
		envelope.WithClock(func() int64 { return testNow }))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	clip := &fakeClipboard{}
	app := &App{
		codec:     codec,
		clipboard: clip,
		buildInfo: models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"),
		in:        strings.NewReader(in),
		out:       out,
		now:       func() time.Time { return time.UnixMilli(testNow).Add(90 * time.Second) },
		logger:    logger.Nop(),
	}
	if gate != nil {
		app.gate = gate
	}
	return testApp{App: app, out: out, clip: clip}
}

func TestNewApp(t *testing.T) {
	cfg := &config.CLIConfig{
		Codec: config.Defaults().Codec,
	}

	app, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop(), WithIO(strings.NewReader(""), &bytes.Buffer{}))
	require.NoError(t, err)
	assert.Nil(t, app.gate)

	cfg.Adapter = config.Adapter{HTTPAddress: "localhost:9999", RequestTimeout: time.Second}
	app, err = NewApp(cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app.gate)

	cfg.Codec.Shift = 0
	_, err = NewApp(cfg, models.AppBuildInfo{}, logger.Nop())
	require.ErrorIs(t, err, envelope.ErrShiftOutOfRange)
}

func TestApp_RunDispatch(t *testing.T) {
	a := newTestApp(t, "", nil)

	err := a.Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoCommand)
	assert.True(t, IsUsageError(err))

	err = a.Run(context.Background(), []string{"explode"})
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "encode")

	assert.Equal(t, []string{"decode", "encode", "inspect", "scan", "seal", "version"}, commandNames())
}

func TestApp_Encode(t *testing.T) {
	t.Run("from args", func(t *testing.T) {
		a := newTestApp(t, "", nil)
		require.NoError(t, a.Run(context.Background(), []string{"encode", `{"a":1}`}))
		assert.Equal(t, "L3Evc3VvQw==\n", a.out.String())
	})

	t.Run("from stdin", func(t *testing.T) {
		a := newTestApp(t, "{\"a\":1}\n", nil)
		require.NoError(t, a.Run(context.Background(), []string{"encode", "-"}))
		assert.Equal(t, "L3Evc3VvQw==\n", a.out.String())
	})

	t.Run("empty stdin", func(t *testing.T) {
		a := newTestApp(t, "  \n", nil)
		err := a.Run(context.Background(), []string{"encode"})
		require.ErrorIs(t, err, ErrMissingInput)
	})
}

func TestApp_Decode(t *testing.T) {
	a := newTestApp(t, "", nil)
	env, err := a.codec.Seal(envelope.FieldEmail, "user@example.com")
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background(), []string{"decode", env}))

	out := a.out.String()
	assert.Contains(t, out, "email=user@example.com\n")
	assert.Contains(t, out, "timestamp=1700000000000\n")
	assert.Contains(t, out, "age=1 minute 30 seconds\n")
	assert.Less(t, strings.Index(out, "checksum="), strings.Index(out, "email="))

	a = newTestApp(t, "", nil)
	err = a.Run(context.Background(), []string{"decode", "AB$D"})
	require.ErrorIs(t, err, envelope.ErrInvalidBase64)
	assert.Equal(t, envelope.KindInvalidBase64, service.KindOf(err))
	assert.Empty(t, a.out.String())
}

func TestApp_Inspect(t *testing.T) {
	a := newTestApp(t, "", nil)
	env := a.codec.Encode([]byte("plain text"))

	err := a.Run(context.Background(), []string{"inspect", env})
	require.ErrorIs(t, err, envelope.ErrMalformedPayload)

	out := a.out.String()
	assert.Contains(t, out, "stage:")
	assert.Contains(t, out, string(envelope.StageText))
	assert.Contains(t, out, `"plain text"`)
	assert.Contains(t, out, string(envelope.KindMalformedPayload))

	a = newTestApp(t, "", nil)
	env, err = a.codec.Seal(envelope.FieldUserID, "USR-001")
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background(), []string{"inspect", env}))
	assert.Contains(t, a.out.String(), "field userId:")
	assert.NotContains(t, a.out.String(), "error:")
}

func TestApp_Seal(t *testing.T) {
	t.Run("prints and copies", func(t *testing.T) {
		a := newTestApp(t, "", nil)
		require.NoError(t, a.Run(context.Background(), []string{"seal", "-field", "userId", "-identity", "USR-001", "-copy"}))

		env := strings.TrimSpace(a.out.String())
		assert.Equal(t, env, a.clip.text)

		p, err := a.codec.Decode(env)
		require.NoError(t, err)
		field, value, ok := p.Identity()
		require.True(t, ok)
		assert.Equal(t, envelope.FieldUserID, field)
		assert.Equal(t, "USR-001", value)
	})

	t.Run("missing identity", func(t *testing.T) {
		a := newTestApp(t, "", nil)
		err := a.Run(context.Background(), []string{"seal"})
		require.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("unknown field", func(t *testing.T) {
		a := newTestApp(t, "", nil)
		err := a.Run(context.Background(), []string{"seal", "-field", "phone", "-identity", "1"})
		require.ErrorIs(t, err, envelope.ErrMissingField)
	})

	t.Run("bad flag", func(t *testing.T) {
		a := newTestApp(t, "", nil)
		err := a.Run(context.Background(), []string{"seal", "-nope"})
		require.Error(t, err)
	})
}

func TestApp_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock.NewMockGateAdapter(ctrl)

	t.Run("admitted", func(t *testing.T) {
		a := newTestApp(t, "ENVELOPE\n", gate)
		gate.EXPECT().Admit(gomock.Any(), "ENVELOPE").Return(models.Admission{
			ScanID:   "scan-1",
			Identity: "user@example.com",
			Field:    envelope.FieldEmail,
			Locker:   "L-12",
		}, nil)

		require.NoError(t, a.Run(context.Background(), []string{"scan"}))
		out := a.out.String()
		assert.Contains(t, out, "admitted=user@example.com\n")
		assert.Contains(t, out, "locker=L-12\n")
		assert.Contains(t, out, "scan_id=scan-1\n")
	})

	t.Run("rejected", func(t *testing.T) {
		a := newTestApp(t, "", gate)
		gate.EXPECT().Admit(gomock.Any(), "ENV").Return(models.Admission{}, service.ErrEnvelopeReplayed)

		err := a.Run(context.Background(), []string{"scan", "ENV"})
		require.ErrorIs(t, err, service.ErrEnvelopeReplayed)
		assert.Empty(t, a.out.String())
	})

	t.Run("no gate", func(t *testing.T) {
		a := newTestApp(t, "", nil)
		err := a.Run(context.Background(), []string{"scan", "ENV"})
		require.ErrorIs(t, err, ErrNoGate)
	})
}

func TestApp_Version(t *testing.T) {
	a := newTestApp(t, "", nil)
	require.NoError(t, a.Run(context.Background(), []string{"version"}))
	assert.Contains(t, a.out.String(), "build: 1.2.3 (2026-10-01, abc123)")
	assert.Contains(t, a.out.String(), "envelope: "+envelope.Version)

	ctrl := gomock.NewController(t)
	gate := mock.NewMockGateAdapter(ctrl)
	gate.EXPECT().Version(gomock.Any()).Return("2.0 (shintya)", nil)

	a = newTestApp(t, "", gate)
	require.NoError(t, a.Run(context.Background(), []string{"version", "-remote"}))
	assert.Contains(t, a.out.String(), "gate: 2.0 (shintya)")

	a = newTestApp(t, "", nil)
	require.ErrorIs(t, a.Run(context.Background(), []string{"version", "-remote"}), ErrNoGate)
}

func TestFormatAge(t *testing.T) {
	now := time.UnixMilli(testNow)
	assert.Equal(t, "just now", formatAge(now, testNow))
	assert.Equal(t, "2 hours", formatAge(now, testNow-int64(2*time.Hour/time.Millisecond)))
	assert.True(t, strings.HasSuffix(formatAge(now, testNow+5000), "in the future"))

	for _, ts := range []int64{math.MinInt64, math.MinInt64 + 1, math.MaxInt64} {
		assert.NotPanics(t, func() {
			out := formatAge(now, ts)
			assert.NotEmpty(t, out)
			assert.NotEqual(t, "just now", out)
		})
	}
	assert.True(t, strings.HasSuffix(formatAge(now, math.MaxInt64), "in the future"))
	assert.False(t, strings.HasSuffix(formatAge(now, math.MinInt64), "in the future"))
}
