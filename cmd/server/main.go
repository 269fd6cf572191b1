// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/handler"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/metrics"
	"github.com/MKhiriev/passport-api/internal/server"
	"github.com/MKhiriev/passport-api/internal/service"
	"github.com/MKhiriev/passport-api/internal/store"
	"github.com/MKhiriev/passport-api/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("passport-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	cfg.App.Version = buildVersion

	logger.SetLevel(cfg.App.Env.IsProduction())
	if cfg.App.UsesInsecureSignKey() {
		log.Warn().Msg("TOKEN_SIGN_KEY is not set, using the development fallback key")
	}
	log.Debug().Str("env", string(cfg.App.Env)).Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() { _ = storages.Close() }()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	reporters := []workers.ServingReporter{workers.ServingReporterFunc(metrics.SetDatabaseUp)}
	if handlers.GRPC != nil {
		reporters = append(reporters, handlers.GRPC)
	}
	backgroundWorkers := workers.NewWorkers(services, cfg.Workers, log, reporters...)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
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
