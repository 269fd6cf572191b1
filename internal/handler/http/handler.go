// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/service"
	"github.com/MKhiriev/passport-api/internal/session"
)

type Handler struct {
	services *service.Services
	cookies  *session.CookieManager

	// production hides error details from clients.
	production     bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookies:        session.NewCookieManager(cfg.Session, cfg.App.Env),
		production:     cfg.App.Env.IsProduction(),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
