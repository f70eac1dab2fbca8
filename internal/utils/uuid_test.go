// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, err := uuid.Parse(g.Generate())
	if err != nil {
		t.Fatalf("expected a valid uuid: %v", err)
	}
	if a.Version() != 7 {
		t.Errorf("expected version 7, got %d", a.Version())
	}

	if g.Generate() == a.String() {
		t.Error("expected distinct ids")
	}
}
