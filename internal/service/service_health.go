// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/store"
	"github.com/MKhiriev/passport-api/models"
)

// Health statuses reported by [HealthService].
const (
	HealthStatusUp   = "UP"
	HealthStatusDown = "DOWN"

	healthMessage = "PassPort Inc. API is running"
)

type healthService struct {
	userRepository store.UserRepository
	version        string

	logger *logger.Logger
}

func NewHealthService(userRepository store.UserRepository, version string, logger *logger.Logger) HealthService {
	return &healthService{
		userRepository: userRepository,
		version:        version,
		logger:         logger,
	}
}

// Check pings the database and counts the stored accounts. Any failure
// yields ErrDatabaseUnavailable.
func (h *healthService) Check(ctx context.Context) (models.HealthStatus, error) {
	log := logger.FromContext(ctx)

	if err := h.userRepository.Ping(ctx); err != nil {
		log.Err(err).Msg("database ping failed")
		return models.HealthStatus{Status: HealthStatusDown}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	users, err := h.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Msg("counting users failed")
		return models.HealthStatus{Status: HealthStatusDown}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return models.HealthStatus{
		Status:  HealthStatusUp,
		Message: healthMessage,
		Users:   users,
		Version: h.version,
	}, nil
}
