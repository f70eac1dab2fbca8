// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetServerConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, envelope.DefaultKey, cfg.Codec.SecretKey)
	assert.Equal(t, envelope.DefaultShift, cfg.Codec.Shift)
	assert.Equal(t, envelope.DefaultMaxAge, cfg.Codec.MaxAge)
	assert.Equal(t, FreshnessEnforce, cfg.Codec.Freshness)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "shintya.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Hour, cfg.Workers.PruneInterval)
}

// TestGetServerConfig_Priority verifies flags > env > JSON > defaults.
func TestGetServerConfig_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Codec.Shift = 3
	payload.Codec.SecretKey = "json-secret-key"
	payload.Storage.DB.DSN = "json.db"
	payload.Server.RequestTimeout = Duration(time.Minute)
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"CONFIG":           path,
		"CODEC_SHIFT":      "5",
		"CODEC_SECRET_KEY": "env-secret-key",
	})

	cfg, err := GetServerConfig([]string{"-s", "9"})
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Codec.Shift)
	assert.Equal(t, "env-secret-key", cfg.Codec.SecretKey)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

func TestGetServerConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "short key", args: []string{"-k", "short"}, wantErr: ErrInvalidCodecConfigs},
		{name: "shift too large", args: []string{"-s", "26"}, wantErr: ErrInvalidCodecConfigs},
		{name: "unknown freshness", args: []string{"-freshness", "sometimes"}, wantErr: ErrInvalidCodecConfigs},
		{name: "retention inside window", args: []string{"-retention", "1m"}, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			_, err := GetServerConfig(tt.args)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetServerConfig_BadFlag(t *testing.T) {
	clearEnvVars(t)
	cfg, err := GetServerConfig([]string{"-a", "nowhere"})
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestGetCLIConfig(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetCLIConfig([]string{"-freshness", "off", "decode", "L3Evc3VvQw=="})
	require.NoError(t, err)

	assert.Equal(t, FreshnessOff, cfg.Codec.Freshness)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, []string{"decode", "L3Evc3VvQw=="}, cfg.Args)
}

func TestCodec_NewCodec(t *testing.T) {
	c := Codec{SecretKey: envelope.DefaultKey, Shift: 7, MaxAge: time.Minute, Freshness: FreshnessOff}

	codec, err := c.NewCodec()
	require.NoError(t, err)
	assert.False(t, codec.Validator().FreshnessEnforced())
	assert.Equal(t, time.Minute, codec.Validator().MaxAge())

	_, err = Codec{SecretKey: "x", Shift: 7}.NewCodec()
	require.ErrorIs(t, err, envelope.ErrKeyTooShort)
}
