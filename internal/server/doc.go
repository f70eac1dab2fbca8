// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the gate transport.
//
// [Server.Run] serves until its context is cancelled and then shuts the
// listener down gracefully, giving in-flight admissions time to finish.
package server
