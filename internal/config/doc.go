// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the gate server and the envelope CLI.
//
// Configuration is assembled from these sources, highest priority first:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path from -config or CONFIG)
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] for cmd/gate and [GetCLIConfig]
// for cmd/envelope.
package config
