// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrPasswordTooLong is returned for plaintexts over 72 bytes, which
	// bcrypt would otherwise silently truncate.
	ErrPasswordTooLong = errors.New("password must be 72 bytes or fewer")

	// ErrMalformedHash is returned when a stored digest is not a bcrypt hash.
	ErrMalformedHash = errors.New("stored password hash is malformed")
)
