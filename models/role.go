// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Role is the closed set of authorization roles a user can hold.
type Role string

const (
	// RoleUser is assigned to every newly registered account.
	RoleUser Role = "USER"

	// RoleAdmin grants access to the administrative routes.
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// String returns the role tag as stored in the database.
func (r Role) String() string {
	return string(r)
}

// ParseRole converts a stored or decoded role tag into a [Role].
// The comparison is case-insensitive; unknown tags yield ("", false).
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.Valid() {
		return "", false
	}
	return role, true
}

// JoinRoles renders roles as a comma-separated list, e.g. "ADMIN, USER".
func JoinRoles(roles []Role) string {
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ", ")
}
