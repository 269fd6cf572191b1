// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the authenticated caller attached to a request once its
// session token has been verified.
type Identity struct {
	UserID int64
	Email  string
	Role   Role
}
