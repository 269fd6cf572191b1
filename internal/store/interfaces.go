// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/passport-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the Credential Store: it persists user accounts and
// enforces email uniqueness.
type UserRepository interface {
	// CreateUser inserts user and returns it with the store-assigned id,
	// role and creation time. A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by exact email. A miss yields
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by id. A miss yields [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser writes the non-nil fields of update and returns the stored
	// row afterwards.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// DeleteUser hard-deletes the user. A miss yields [ErrUserNotFound].
	DeleteUser(ctx context.Context, userID int64) error

	// CountUsers returns the number of stored accounts.
	CountUsers(ctx context.Context) (int64, error)

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error
}

// ErrorClassificator inspects driver errors of one database.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
