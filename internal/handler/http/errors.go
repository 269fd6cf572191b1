// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/passport-api/models"
)

// Sentinel errors raised by the transport layer itself. Their text is sent
// to clients as is.
var (
	// ErrNoToken is returned by the auth middleware when the request carries
	// no session cookie.
	ErrNoToken = errors.New("access denied, no token")

	// ErrNotAuthenticatedOrNoRole is returned by the role middleware when no
	// identity is attached to the request or it carries no role.
	ErrNotAuthenticatedOrNoRole = errors.New("not authenticated or no role assigned")

	// ErrRoleNotPermitted is matched by every [roleNotPermittedError].
	ErrRoleNotPermitted = errors.New("permission denied")

	ErrRouteNotFound = errors.New("route not found")
	ErrInvalidJSON   = errors.New("invalid JSON body")
	ErrInvalidUserID = errors.New("invalid user id")
)

// roleNotPermittedError names the roles a route requires.
type roleNotPermittedError struct {
	required []models.Role
}

func (e *roleNotPermittedError) Error() string {
	return fmt.Sprintf("%s (requires: %s)", ErrRoleNotPermitted, models.JoinRoles(e.required))
}

func (e *roleNotPermittedError) Is(target error) bool {
	return target == ErrRoleNotPermitted
}
