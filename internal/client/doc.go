// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the envelope command-line application.
//
// [App] dispatches a subcommand (encode, decode, inspect, seal, scan or
// version) against a locally configured codec and, for scan, a gate reached
// through [adapter.GateAdapter]. Results go to the output writer; diagnostics
// go to the logger.
package client
