// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session stores the session token in an http-only client cookie
// and removes it again on logout.
package session

import (
	"net/http"
	"time"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/models"
)

// CookieManager writes, clears and reads the session cookie.
type CookieManager struct {
	name           string
	secure         bool
	rememberMaxAge time.Duration

	// now is replaceable in tests.
	now func() time.Time
}

// NewCookieManager builds a CookieManager from the session settings.
// Cookies are marked Secure in production only.
func NewCookieManager(cfg config.Session, env config.Environment) *CookieManager {
	return &CookieManager{
		name:           cfg.CookieName,
		secure:         env.IsProduction(),
		rememberMaxAge: cfg.RememberMaxAge,
		now:            time.Now,
	}
}

// Name returns the cookie name.
func (m *CookieManager) Name() string {
	return m.name
}

// Set attaches token to the response.
//
// Without remember the cookie has neither Max-Age nor Expires, so the
// browser drops it when the session ends. With remember it lives for the
// configured max age.
func (m *CookieManager) Set(w http.ResponseWriter, token models.Token, remember bool) {
	cookie := m.base()
	cookie.Value = token.SignedString

	if remember && m.rememberMaxAge > 0 {
		cookie.MaxAge = int(m.rememberMaxAge / time.Second)
		cookie.Expires = m.now().Add(m.rememberMaxAge).UTC()
	}

	http.SetCookie(w, cookie)
}

// Clear instructs the browser to discard the session cookie. The name,
// path and attributes match the ones used by Set.
func (m *CookieManager) Clear(w http.ResponseWriter) {
	cookie := m.base()
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0).UTC()

	http.SetCookie(w, cookie)
}

// Token returns the session token carried by r, if any.
func (m *CookieManager) Token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (m *CookieManager) base() *http.Cookie {
	return &http.Cookie{
		Name:     m.name,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
