// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the passport-api HTTP API.
//
// The primary abstraction is [ServerAdapter], which hides the REST routes,
// the session cookie and the error envelope from the command-line client.
// [NewHTTPServerAdapter] returns the resty-based implementation.
//
// Non-2xx answers are returned as [*APIError]. They match the sentinel
// errors of this package via [errors.Is] (e.g. [ErrUnauthorized] for 401),
// so callers can branch on the outcome without inspecting status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/passport-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the passport-api server.
// Implementations keep the session cookie issued by Register and Login and
// send it with every later request.
type ServerAdapter interface {
	// Register creates an account. The server logs the new user in right
	// away, so the session cookie is stored as well.
	Register(ctx context.Context, request models.RegisterRequest) (models.Response, error)

	// Login authenticates the user and stores the issued session cookie.
	Login(ctx context.Context, request models.LoginRequest) (models.Response, error)

	// Logout asks the server to clear the session cookie.
	Logout(ctx context.Context) error

	// Profile returns the logged-in user.
	Profile(ctx context.Context) (models.PublicUser, error)

	// UpdateProfile changes the given fields of the logged-in user and returns
	// the updated profile.
	UpdateProfile(ctx context.Context, request models.UpdateProfileRequest) (models.PublicUser, error)

	// DeleteAccount removes the logged-in user.
	DeleteAccount(ctx context.Context) error

	// DeleteUser removes another user. Requires an admin session.
	DeleteUser(ctx context.Context, userID int64) error

	// Health returns the server and database status.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
