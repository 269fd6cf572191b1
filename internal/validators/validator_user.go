// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/passport-api/models"
)

// Field name constants used to restrict validation of user payloads to a
// subset of fields.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldUserID    = "user_id"

	// FieldEmailFormat checks that a present email is a bare RFC 5322
	// address. Presence itself is checked by FieldEmail.
	FieldEmailFormat = "email_format"
)

// UserValidator validates the account payloads accepted by the auth routes.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFirstName, FieldLastName, FieldEmailFormat}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrMissingEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrMissingPassword
			}
		case FieldFirstName:
			if isBlank(request.FirstName) {
				return ErrMissingFirstName
			}
		case FieldLastName:
			if isBlank(request.LastName) {
				return ErrMissingLastName
			}
		case FieldEmailFormat:
			if !isBlank(request.Email) && !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrMissingEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrMissingPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserUpdate only checks fields that are present; absent fields are
// left untouched by the update.
func (v *UserValidator) validateUserUpdate(_ context.Context, update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEmail, FieldFirstName, FieldLastName, FieldEmailFormat}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if update.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldEmail:
			if update.Email != nil && isBlank(*update.Email) {
				return ErrEmptyUpdateValue
			}
		case FieldFirstName:
			if update.FirstName != nil && isBlank(*update.FirstName) {
				return ErrEmptyUpdateValue
			}
		case FieldLastName:
			if update.LastName != nil && isBlank(*update.LastName) {
				return ErrEmptyUpdateValue
			}
		case FieldEmailFormat:
			if update.Email != nil && !isBlank(*update.Email) && !isValidEmail(*update.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isValidEmail accepts bare addresses only: "Name <a@b.c>" parses as a mail
// address but is not a login identifier.
func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".")
}
