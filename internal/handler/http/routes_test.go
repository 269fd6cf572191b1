// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/service"
	"github.com/MKhiriev/passport-api/internal/store"
	"github.com/MKhiriev/passport-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_UnknownRouteAndMethod(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{"unknown path", http.MethodGet, "/nope"},
		{"unknown auth path", http.MethodPost, "/auth/nope"},
		{"wrong method on top level route", http.MethodPost, "/health"},
		{"wrong method on auth route", http.MethodGet, "/auth/login"},
		{"wrong method on admin route", http.MethodGet, "/admin/users/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, _, _ := testServices()
			router := newTestHandler(t, services, config.Production).Init()

			rec := serve(t, router, tt.method, tt.target, "", sessionCookie(t, adminIdentity))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			resp := decodeResponse[models.ErrorResponse](t, rec)
			assert.Equal(t, models.StatusFail, resp.Status)
			assert.Equal(t, "route not found", resp.Message)
		})
	}
}

func TestRoutes_Metrics(t *testing.T) {
	services, _, _ := testServices()
	router := newTestHandler(t, services, config.Development).Init()

	serve(t, router, http.MethodGet, "/api/version", "")
	rec := serve(t, router, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "passport_http_requests_total")
	assert.Contains(t, body, `route="/api/version"`)
	assert.Contains(t, body, "go_goroutines")
}

// ── end to end over SQLite ──

type apiClient struct {
	t       *testing.T
	baseURL string
	http    *http.Client
}

func newAPIClient(t *testing.T, baseURL string) *apiClient {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &apiClient{t: t, baseURL: baseURL, http: &http.Client{Jar: jar}}
}

func (c *apiClient) do(method, path, body string, cookies ...*http.Cookie) (int, []byte) {
	c.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, raw
}

func newSQLiteServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	cfg := testConfig(config.Development)
	cfg.App.PasswordHashCost = 4
	cfg.Storage.DB.DSN = "sqlite://" + filepath.Join(t.TempDir(), "passport.db")

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func TestEndToEnd_UserLifecycle(t *testing.T) {
	srv := newSQLiteServer(t)
	ana := newAPIClient(t, srv.URL)

	code, _ := ana.do(http.MethodGet, "/auth/perfil", "")
	require.Equal(t, http.StatusUnauthorized, code)

	code, raw := ana.do(http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, code, string(raw))
	var registered models.Response
	require.NoError(t, json.Unmarshal(raw, &registered))
	require.NotNil(t, registered.User)
	assert.Equal(t, models.RoleUser, registered.User.Role)

	code, _ = ana.do(http.MethodPost, "/auth/register", registerBody)
	assert.Equal(t, http.StatusBadRequest, code, "email is unique")

	// the registration cookie already authenticates
	code, raw = ana.do(http.MethodGet, "/auth/perfil", "")
	require.Equal(t, http.StatusOK, code, string(raw))
	assert.NotContains(t, string(raw), "$2a$")

	code, _ = ana.do(http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, code)
	code, _ = ana.do(http.MethodGet, "/auth/perfil", "")
	require.Equal(t, http.StatusUnauthorized, code)

	code, _ = ana.do(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"wrong-pass"}`)
	require.Equal(t, http.StatusUnauthorized, code)
	code, _ = ana.do(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"s3cret-pass","rememberMe":true}`)
	require.Equal(t, http.StatusOK, code)

	code, raw = ana.do(http.MethodPatch, "/auth/perfil", `{"lastName":"Lopez Vidal"}`)
	require.Equal(t, http.StatusOK, code, string(raw))
	var updated models.Response
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "Lopez Vidal", updated.User.LastName)
	assert.Equal(t, "Ana", updated.User.FirstName)

	code, _ = ana.do(http.MethodPatch, "/auth/perfil", `{"password":"new-pass"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = ana.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)

	// admins are provisioned out of band, so a token is minted directly
	admin := newAPIClient(t, srv.URL)
	adminCookie := sessionCookie(t, models.Identity{UserID: 1000, Email: "root@example.com", Role: models.RoleAdmin})

	code, _ = admin.do(http.MethodDelete, "/admin/users/1000", "", adminCookie)
	assert.Equal(t, http.StatusBadRequest, code)

	target := "/admin/users/" + jsonNumber(registered.User.ID)
	code, raw = admin.do(http.MethodDelete, target, "", adminCookie)
	require.Equal(t, http.StatusOK, code, string(raw))

	code, _ = admin.do(http.MethodDelete, target, "", adminCookie)
	assert.Equal(t, http.StatusNotFound, code)

	// the token outlives the account
	code, _ = ana.do(http.MethodGet, "/auth/perfil", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestEndToEnd_DeleteOwnAccount(t *testing.T) {
	srv := newSQLiteServer(t)
	bob := newAPIClient(t, srv.URL)

	code, _ := bob.do(http.MethodPost, "/auth/register", `{"email":"bob@example.com","password":"pw","firstName":"Bob","lastName":"Stone"}`)
	require.Equal(t, http.StatusCreated, code)

	code, _ = bob.do(http.MethodDelete, "/auth/perfil", "")
	require.Equal(t, http.StatusNoContent, code)

	// the cookie was cleared together with the account
	code, _ = bob.do(http.MethodGet, "/auth/perfil", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = bob.do(http.MethodPost, "/auth/login", `{"email":"bob@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func jsonNumber(id int64) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}
