// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/passport-api/models"
)

// AuthService registers and authenticates users and manages their session
// tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService works on already authenticated accounts.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error)
	DeleteAccount(ctx context.Context, userID int64) error

	// DeleteUser removes targetID on behalf of actorID. Role checks happen
	// in the transport layer.
	DeleteUser(ctx context.Context, actorID, targetID int64) error
}

// HealthService reports whether the credential store is reachable.
type HealthService interface {
	Check(ctx context.Context) (models.HealthStatus, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
