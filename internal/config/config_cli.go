// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// CLIConfig is the configuration view used by cmd/envelope.
type CLIConfig struct {
	// Codec holds the envelope parameters used for encode, decode and seal.
	Codec Codec
	// Adapter holds the gate address used by the scan command.
	Adapter Adapter
	// Args are the positional arguments left after the global flags: the
	// subcommand followed by its own flags and operands.
	Args []string
}

// GetCLIConfig builds and validates the CLI configuration. args are the
// command-line arguments without the program name; parsing stops at the
// first non-flag argument.
func GetCLIConfig(args []string) (*CLIConfig, error) {
	b := newConfigBuilder().
		withFlags(cliFlags, args).
		withEnv().
		withJSON().
		withDefaults()

	cfg, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	cliCfg := &CLIConfig{
		Codec:   cfg.Codec,
		Adapter: cfg.Adapter,
		Args:    b.rest,
	}
	return cliCfg, cliCfg.validate()
}
