// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/crypto"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/store"
	"github.com/MKhiriev/passport-api/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewPasswordHasher(cfg.App.PasswordHashCost)
	validator := validators.NewUserValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, validator, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, validator, logger),
		HealthService:  NewHealthService(storages.UserRepository, cfg.App.Version, logger),
		AppInfoService: appInfoService,
	}, nil
}
