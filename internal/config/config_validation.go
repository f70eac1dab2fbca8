// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/envelope"
)

func (c Codec) validate() error {
	if len(c.SecretKey) < envelope.MinKeyLength {
		return fmt.Errorf("%w: secret key shorter than %d bytes", ErrInvalidCodecConfigs, envelope.MinKeyLength)
	}
	if c.Shift < envelope.MinShift || c.Shift > envelope.MaxShift {
		return fmt.Errorf("%w: shift %d not in [%d, %d]", ErrInvalidCodecConfigs, c.Shift, envelope.MinShift, envelope.MaxShift)
	}
	if c.MaxAge <= 0 {
		return fmt.Errorf("%w: max age must be positive", ErrInvalidCodecConfigs)
	}
	if c.Freshness != FreshnessEnforce && c.Freshness != FreshnessOff {
		return fmt.Errorf("%w: freshness %q is neither %q nor %q", ErrInvalidCodecConfigs, c.Freshness, FreshnessEnforce, FreshnessOff)
	}
	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" || s.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}

func (s Storage) validate() error {
	if s.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	return nil
}

func (a Adapter) validate() error {
	if a.HTTPAddress == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (w Workers) validate(window time.Duration) error {
	if w.PruneInterval <= 0 {
		return fmt.Errorf("%w: prune interval must be positive", ErrInvalidWorkerConfigs)
	}
	if w.Retention <= window {
		return fmt.Errorf("%w: retention %s must exceed the freshness window", ErrInvalidWorkerConfigs, w.Retention)
	}
	return nil
}

// validate checks every group the gate needs and reports all failures.
func (cfg *ServerConfig) validate() error {
	return errors.Join(
		cfg.Codec.validate(),
		cfg.Server.validate(),
		cfg.Storage.validate(),
		cfg.Workers.validate(cfg.Codec.MaxAge),
	)
}

func (cfg *CLIConfig) validate() error {
	return errors.Join(
		cfg.Codec.validate(),
		cfg.Adapter.validate(),
	)
}
