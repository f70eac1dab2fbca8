// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/envelope"
)

// Freshness modes accepted by [Codec.Freshness].
const (
	FreshnessEnforce = "enforce"
	FreshnessOff     = "off"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging command-line flags, environment variables, an
// optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// Codec holds the envelope key, shift and freshness settings shared by
	// the gate and the CLI.
	Codec Codec `envPrefix:"CODEC_"`

	// Storage holds the scan and user database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the gate HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the gate address the CLI talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds scan retention settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Codec holds the envelope codec parameters. Both ends of the channel
// must agree on SecretKey and Shift.
type Codec struct {
	// SecretKey is the repeating XOR key, at least 8 bytes.
	// Env: CODEC_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Shift is the per-byte shift amount in [1, 25].
	// Env: CODEC_SHIFT
	Shift int `env:"SHIFT"`

	// MaxAge is the freshness window (e.g. "5m").
	// Env: CODEC_MAX_AGE
	MaxAge time.Duration `env:"MAX_AGE"`

	// Freshness is "enforce" or "off".
	// Env: CODEC_FRESHNESS
	Freshness string `env:"FRESHNESS"`
}

// Options returns the envelope options described by c.
func (c Codec) Options() []envelope.Option {
	opts := []envelope.Option{envelope.WithMaxAge(c.MaxAge)}
	if c.Freshness == FreshnessOff {
		opts = append(opts, envelope.WithoutFreshness())
	}
	return opts
}

// NewCodec builds the envelope codec described by c. Extra options are
// applied after the configured ones.
func (c Codec) NewCodec(extra ...envelope.Option) (*envelope.Codec, error) {
	codec, err := envelope.NewCodec([]byte(c.SecretKey), c.Shift, append(c.Options(), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("error creating codec: %w", err)
	}
	return codec, nil
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a postgres:// or postgresql:// URL opens
	// PostgreSQL through pgx, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the gate listener.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound gate client settings used by the CLI.
type Adapter struct {
	// HTTPAddress is the gate address, "host:port" or a full base URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the scan pruner.
type Workers struct {
	// PruneInterval is how often old scans are deleted.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`

	// Retention is how long a scan row is kept. It must exceed the codec
	// freshness window, otherwise a pruned nonce could be replayed.
	// Env: WORKERS_RETENTION
	Retention time.Duration `env:"RETENTION"`
}

// Defaults returns the built-in configuration merged under every other
// source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Codec: Codec{
			SecretKey: envelope.DefaultKey,
			Shift:     envelope.DefaultShift,
			MaxAge:    envelope.DefaultMaxAge,
			Freshness: FreshnessEnforce,
		},
		Storage: Storage{
			DB: DB{DSN: "shintya.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 5 * time.Second,
		},
		Workers: Workers{
			PruneInterval: time.Hour,
			Retention:     24 * time.Hour,
		},
	}
}

// ServerConfig is the configuration view used by cmd/gate.
type ServerConfig struct {
	Codec   Codec
	Server  Server
	Storage Storage
	Workers Workers
}

// GetServerConfig loads, merges and validates the gate configuration.
// args are the command-line arguments without the program name.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(serverFlags, args).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Codec:   cfg.Codec,
		Server:  cfg.Server,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
	}
	return serverCfg, serverCfg.validate()
}
