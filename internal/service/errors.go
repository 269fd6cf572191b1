// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided       = errors.New("invalid data provided")
	ErrMissingCredentials        = errors.New("email and password are required")
	ErrMissingRegistrationFields = errors.New("all fields are required")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrPasswordTooLong           = errors.New("password is too long")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrEmailAlreadyInUse      = errors.New("email already in use")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired token")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrPasswordChangeNotAllowed = errors.New("this route does not change passwords, use /auth/update-password")
	ErrUserNotFound             = errors.New("user not found")
	ErrCannotDeleteSelf         = errors.New("cannot delete your own account")

	ErrDatabaseUnavailable   = errors.New("database unavailable")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
