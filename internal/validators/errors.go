// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingField is wrapped by every "required field is empty" error so
	// callers can match the whole group with errors.Is.
	ErrMissingField = errors.New("required field is missing")

	ErrMissingEmail     = fmt.Errorf("%w: email", ErrMissingField)
	ErrMissingPassword  = fmt.Errorf("%w: password", ErrMissingField)
	ErrMissingFirstName = fmt.Errorf("%w: firstName", ErrMissingField)
	ErrMissingLastName  = fmt.Errorf("%w: lastName", ErrMissingField)

	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyUpdateValue = errors.New("updated fields cannot be blank")
	ErrInvalidUserID    = errors.New("invalid user ID")
)
