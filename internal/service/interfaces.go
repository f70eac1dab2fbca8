// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/shintya-qr/internal/envelope"
	"github.com/MKhiriev/shintya-qr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// GateService decides whether a scanned envelope opens the gate.
type GateService interface {
	Admit(ctx context.Context, env string) (models.Admission, error)
}

// EnvelopeService seals envelopes for registered identities and decodes
// envelopes without recording a scan.
type EnvelopeService interface {
	Issue(ctx context.Context, field, identity string) (models.IssuedEnvelope, error)
	Decode(ctx context.Context, env string) (envelope.Payload, error)
}

// UserService manages the registry of identities allowed through the gate.
type UserService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
}

// AppInfoService reports version information about the running gate.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
