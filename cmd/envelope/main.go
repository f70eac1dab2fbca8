// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/shintya-qr/internal/client"
	"github.com/MKhiriev/shintya-qr/internal/config"
	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/service"
	"github.com/MKhiriev/shintya-qr/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("envelope", os.Stderr)
	cfg, err := config.GetCLIConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(cfg, models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit)), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init envelope app error")
	}

	if err = app.Run(ctx, cfg.Args); err != nil {
		event := log.Error().Err(err)
		if !client.IsUsageError(err) {
			event = event.Str("kind", string(service.KindOf(err)))
		}
		event.Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
