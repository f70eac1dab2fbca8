// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the gate transport and its
// client: JSON response writing, the resty client and id generation.
package utils
