// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// PasswordHash is a bcrypt digest and must never leave the server.
type User struct {
	// UserID is the unique numeric identifier assigned by the store.
	UserID int64 `json:"id"`

	// Email is the unique login identifier, compared case-sensitively.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// FirstName and LastName are the display name parts.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Role is the authorization tag. New users get [RoleUser].
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the fields of u that are safe to send to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.UserID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Identity returns the identity that is embedded into the session token.
func (u User) Identity() Identity {
	return Identity{
		UserID: u.UserID,
		Email:  u.Email,
		Role:   u.Role,
	}
}

// PublicUser is the client-facing projection of a [User].
type PublicUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// UserUpdate describes a partial update of a user's profile.
// Only non-nil fields are written.
type UserUpdate struct {
	UserID    int64
	FirstName *string
	LastName  *string
	Email     *string
}

// IsEmpty reports whether the update carries no field to change.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil
}
