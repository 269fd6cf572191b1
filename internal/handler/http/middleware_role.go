// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/passport-api/internal/utils"
	"github.com/MKhiriev/passport-api/models"
)

// requireRoles lets a request through only when the identity attached by
// [Handler.auth] holds one of roles. It must be mounted after auth.
func (h *Handler) requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	permitted := slices.Clone(roles)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.IdentityFromContext(r.Context())
			if !ok || identity.Role == "" {
				h.writeError(w, r, ErrNotAuthenticatedOrNoRole)
				return
			}

			if !slices.Contains(permitted, identity.Role) {
				h.writeError(w, r, &roleNotPermittedError{required: permitted})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
