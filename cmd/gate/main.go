// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/shintya-qr/internal/config"
	"github.com/MKhiriev/shintya-qr/internal/handler"
	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/server"
	"github.com/MKhiriev/shintya-qr/internal/service"
	"github.com/MKhiriev/shintya-qr/internal/store"
	"github.com/MKhiriev/shintya-qr/internal/workers"
	"github.com/MKhiriev/shintya-qr/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("shintya-gate")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("max_age", cfg.Codec.MaxAge).
		Str("freshness", cfg.Codec.Freshness).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	codec, err := cfg.Codec.NewCodec()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating codec")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, codec, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	w := workers.NewWorkers(storages, cfg.Workers, log)
	w.Start(ctx)
	defer w.Stop()

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("gate stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
