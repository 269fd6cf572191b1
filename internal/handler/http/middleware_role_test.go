// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/utils"
	"github.com/MKhiriev/passport-api/models"
	"github.com/stretchr/testify/assert"
)

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name        string
		identity    *models.Identity
		roles       []models.Role
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no identity",
			roles:       []models.Role{models.RoleAdmin},
			wantStatus:  http.StatusForbidden,
			wantMessage: "not authenticated or no role assigned",
		},
		{
			name:        "identity without role",
			identity:    &models.Identity{UserID: 1},
			roles:       []models.Role{models.RoleAdmin},
			wantStatus:  http.StatusForbidden,
			wantMessage: "not authenticated or no role assigned",
		},
		{
			name:        "user on admin route",
			identity:    &models.Identity{UserID: 1, Role: models.RoleUser},
			roles:       []models.Role{models.RoleAdmin},
			wantStatus:  http.StatusForbidden,
			wantMessage: "permission denied (requires: ADMIN)",
		},
		{
			name:        "unknown role",
			identity:    &models.Identity{UserID: 1, Role: models.Role("admin ")},
			roles:       []models.Role{models.RoleAdmin},
			wantStatus:  http.StatusForbidden,
			wantMessage: "permission denied (requires: ADMIN)",
		},
		{
			name:        "message names every permitted role",
			identity:    &models.Identity{UserID: 1, Role: models.Role("GUEST")},
			roles:       []models.Role{models.RoleAdmin, models.RoleUser},
			wantStatus:  http.StatusForbidden,
			wantMessage: "permission denied (requires: ADMIN, USER)",
		},
		{
			name:       "admin passes",
			identity:   &models.Identity{UserID: 1, Role: models.RoleAdmin},
			roles:      []models.Role{models.RoleAdmin},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "any listed role passes",
			identity:   &models.Identity{UserID: 1, Role: models.RoleUser},
			roles:      []models.Role{models.RoleAdmin, models.RoleUser},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, _, _ := testServices()
			h := newTestHandler(t, services, config.Production)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodDelete, "/admin/users/2", nil)
			if tt.identity != nil {
				req = req.WithContext(utils.WithIdentity(req.Context(), *tt.identity))
			}
			rec := httptest.NewRecorder()

			h.requireRoles(tt.roles...)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeResponse[models.ErrorResponse](t, rec).Message)
			}
		})
	}
}
