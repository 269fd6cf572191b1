// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/service"
	"github.com/MKhiriev/passport-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registerBody = `{"email":"ana@example.com","password":"s3cret-pass","firstName":"Ana","lastName":"Lopez"}`

var registeredUser = models.User{
	UserID:       7,
	Email:        "ana@example.com",
	PasswordHash: "$2a$10$never-leaves-the-server",
	FirstName:    "Ana",
	LastName:     "Lopez",
	Role:         models.RoleUser,
	CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

// ── register ──

func TestRegister_Success(t *testing.T) {
	services, auth, _ := testServices()
	auth.registerUserFn = func(_ context.Context, r models.RegisterRequest) (models.User, error) {
		assert.Equal(t, "ana@example.com", r.Email)
		assert.Equal(t, "s3cret-pass", r.Password)
		return registeredUser, nil
	}
	router := newTestHandler(t, services, config.Development).Init()

	rec := serve(t, router, http.MethodPost, "/auth/register", registerBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), registeredUser.PasswordHash)
	assert.NotContains(t, rec.Body.String(), "s3cret-pass")

	resp := decodeResponse[models.Response](t, rec)
	assert.Equal(t, models.StatusSuccess, resp.Status)
	require.NotNil(t, resp.User)
	assert.Equal(t, registeredUser.Public(), *resp.User)
	assert.NotEmpty(t, resp.Token)

	cookie := findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, resp.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
	assert.Zero(t, cookie.MaxAge, "registration issues a browser-session cookie")
}

func TestRegister_InvalidJSON(t *testing.T) {
	services, _, _ := testServices()
	router := newTestHandler(t, services, config.Development).Init()

	rec := serve(t, router, http.MethodPost, "/auth/register", `{"email":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse[models.ErrorResponse](t, rec)
	assert.Equal(t, models.StatusFail, resp.Status)
	assert.Equal(t, ErrInvalidJSON.Error(), resp.Message)
}

func TestRegister_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"missing fields", service.ErrMissingRegistrationFields, http.StatusBadRequest, "all fields are required"},
		{"email taken", service.ErrEmailAlreadyRegistered, http.StatusBadRequest, "email already registered"},
		{"bad email", service.ErrInvalidEmail, http.StatusBadRequest, "invalid email address"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, genericErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, auth, _ := testServices()
			auth.registerUserFn = func(context.Context, models.RegisterRequest) (models.User, error) {
				return models.User{}, tt.err
			}
			router := newTestHandler(t, services, config.Production).Init()

			rec := serve(t, router, http.MethodPost, "/auth/register", registerBody)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeResponse[models.ErrorResponse](t, rec).Message)
			assert.Nil(t, findCookie(rec, testCookieName))
		})
	}
}

func TestRegister_TokenFailure(t *testing.T) {
	services, auth, _ := testServices()
	auth.registerUserFn = func(context.Context, models.RegisterRequest) (models.User, error) {
		return registeredUser, nil
	}
	auth.createTokenFn = func(context.Context, models.User) (models.Token, error) {
		return models.Token{}, service.ErrTokenCreationFailed
	}
	router := newTestHandler(t, services, config.Development).Init()

	rec := serve(t, router, http.MethodPost, "/auth/register", registerBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, findCookie(rec, testCookieName))
}

// ── login ──

func TestLogin_RememberMeControlsCookieLifetime(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantMaxAge int
	}{
		{"session cookie", `{"email":"ana@example.com","password":"s3cret-pass"}`, 0},
		{"remembered", `{"email":"ana@example.com","password":"s3cret-pass","rememberMe":true}`, 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, auth, _ := testServices()
			auth.loginFn = func(_ context.Context, r models.LoginRequest) (models.User, error) {
				return registeredUser, nil
			}
			router := newTestHandler(t, services, config.Development).Init()

			rec := serve(t, router, http.MethodPost, "/auth/login", tt.body)

			require.Equal(t, http.StatusOK, rec.Code)
			cookie := findCookie(rec, testCookieName)
			require.NotNil(t, cookie)
			assert.Equal(t, tt.wantMaxAge, cookie.MaxAge)

			resp := decodeResponse[models.Response](t, rec)
			assert.Equal(t, models.StatusSuccess, resp.Status)
			assert.Equal(t, registeredUser.Email, resp.User.Email)

			parsed, err := auth.ParseToken(context.Background(), cookie.Value)
			require.NoError(t, err)
			assert.Equal(t, registeredUser.Identity(), parsed.Claims.Identity())
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	services, auth, _ := testServices()
	auth.loginFn = func(context.Context, models.LoginRequest) (models.User, error) {
		return models.User{}, service.ErrInvalidCredentials
	}
	router := newTestHandler(t, services, config.Development).Init()

	rec := serve(t, router, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(rec, testCookieName), "failed login must not issue a cookie")
	resp := decodeResponse[models.ErrorResponse](t, rec)
	assert.Equal(t, models.StatusFail, resp.Status)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), resp.Message)
}

func TestLogin_MissingCredentials(t *testing.T) {
	services, auth, _ := testServices()
	auth.loginFn = func(context.Context, models.LoginRequest) (models.User, error) {
		return models.User{}, service.ErrMissingCredentials
	}
	router := newTestHandler(t, services, config.Development).Init()

	rec := serve(t, router, http.MethodPost, "/auth/login", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_SecureCookieInProduction(t *testing.T) {
	services, auth, _ := testServices()
	auth.loginFn = func(context.Context, models.LoginRequest) (models.User, error) {
		return registeredUser, nil
	}
	router := newTestHandler(t, services, config.Production).Init()

	rec := serve(t, router, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"x"}`)

	cookie := findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

// ── logout ──

func TestLogout_ClearsCookie(t *testing.T) {
	services, _, _ := testServices()
	router := newTestHandler(t, services, config.Development).Init()

	rec := serve(t, router, http.MethodPost, "/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	resp := decodeResponse[models.Response](t, rec)
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.True(t, strings.Contains(resp.Message, "logged out"))
}
