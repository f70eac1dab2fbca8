// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/shintya-qr/internal/envelope"
	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/store"
	"github.com/MKhiriev/shintya-qr/models"
)

type Services struct {
	GateService     GateService
	EnvelopeService EnvelopeService
	UserService     UserService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, codec *envelope.Codec, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		GateService:     NewGateService(codec, storages.UserRepository, storages.ScanRepository, logger),
		EnvelopeService: NewEnvelopeService(codec, storages.UserRepository, logger),
		UserService:     NewUserService(storages.UserRepository, logger),
		AppInfoService:  appInfo,
	}, nil
}
