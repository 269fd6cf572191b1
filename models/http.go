// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// UpdateProfileRequest is the body of PATCH /auth/perfil.
//
// Password and PasswordConfirm are decoded only so that their presence can be
// rejected; this route never changes credentials.
type UpdateProfileRequest struct {
	FirstName       *string `json:"firstName,omitempty"`
	LastName        *string `json:"lastName,omitempty"`
	Email           *string `json:"email,omitempty"`
	Password        *string `json:"password,omitempty"`
	PasswordConfirm *string `json:"passwordConfirm,omitempty"`
}

// TouchesPassword reports whether the request tries to change credentials.
func (r UpdateProfileRequest) TouchesPassword() bool {
	return r.Password != nil || r.PasswordConfirm != nil
}

// ToUserUpdate converts the request into a store-level partial update.
func (r UpdateProfileRequest) ToUserUpdate(userID int64) UserUpdate {
	return UserUpdate{
		UserID:    userID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}
