// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client  *resty.Client
	cookies *cookieStore

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates cfg.BaseURL, restores the
// session from cfg.CookieFile when set and configures the request timeout.
//
// Returns an error if the base URL is empty or cannot be parsed, or the
// cookie file exists but is unreadable.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	return newHTTPServerAdapter(cfg, logger)
}

func newHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (*httpServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	cookies, err := newCookieStore(baseURL, cfg.CookieFile)
	if err != nil {
		return nil, err
	}

	a := &httpServerAdapter{cookies: cookies, logger: logger}
	a.client = resty.New().
		SetBaseURL(baseURL.String()).
		SetTimeout(cfg.RequestTimeout).
		SetCookieJar(cookies.jar).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{logger}).
		OnAfterResponse(a.afterResponse)

	return a, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("address must include host and scheme")
	}

	return u, nil
}

// afterResponse logs every exchange and persists the cookie jar.
func (h *httpServerAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("request finished")

	if err := h.cookies.save(); err != nil {
		h.logger.Warn().Err(err).Msg("session was not saved")
	}
	return nil
}

// Register implements [ServerAdapter]. It POSTs the request to
// POST /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.Response, error) {
	var result models.Response

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/auth/register")
	if err != nil {
		return models.Response{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Response{}, err
	}

	return result, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.Response, error) {
	var result models.Response

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return models.Response{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Response{}, err
	}

	return result, nil
}

// Logout implements [ServerAdapter]. The server answers with an expired
// cookie, which drops the session from the jar.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Profile implements [ServerAdapter]. It GETs /auth/perfil.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.PublicUser, error) {
	var result models.Response

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/auth/perfil")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}
	if result.Data == nil {
		return models.PublicUser{}, fmt.Errorf("profile response carries no user")
	}

	return *result.Data, nil
}

// UpdateProfile implements [ServerAdapter]. It PATCHes /auth/perfil.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, request models.UpdateProfileRequest) (models.PublicUser, error) {
	var result models.Response

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Patch("/auth/perfil")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}
	if result.User == nil {
		return models.PublicUser{}, fmt.Errorf("update profile response carries no user")
	}

	return *result.User, nil
}

// DeleteAccount implements [ServerAdapter]. It sends DELETE /auth/perfil.
func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/auth/perfil")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteUser implements [ServerAdapter]. It sends
// DELETE /admin/users/{id}.
func (h *httpServerAdapter) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		Delete("/admin/users/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [ServerAdapter]. It GETs /health.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var result models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return result, nil
}

// Version implements [ServerAdapter]. It GETs /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// restyLogger routes resty's own diagnostics into the client logger.
type restyLogger struct {
	logger *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(strings.TrimSpace(format), v...)
}
