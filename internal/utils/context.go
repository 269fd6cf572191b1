// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across passport-api:
// the typed authenticated identity stored in a request context, JSON
// response writing, trace id generation and session token issuing and
// verification.
package utils

import (
	"context"

	"github.com/MKhiriev/passport-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// identityCtxKey is the key under which the Auth Gate stores the caller's
// [models.Identity].
var identityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}

// IdentityFromContext retrieves the identity attached by [WithIdentity].
//
// Returns ok == false when no identity is present, which means the request
// did not pass the Auth Gate.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey).(models.Identity)
	return identity, ok
}

// GetUserIDFromContext retrieves the authenticated user's id from the context.
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	identity, ok := IdentityFromContext(ctx)
	if !ok || identity.UserID == 0 {
		return 0, false
	}
	return identity.UserID, true
}
