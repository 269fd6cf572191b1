// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/passport-api/internal/metrics"
	"github.com/MKhiriev/passport-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		middleware.Compress(5, "application/json"),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Route("/auth", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/perfil", h.getProfile)
			r.Patch("/perfil", h.updateProfile)
			r.Delete("/perfil", h.deleteAccount)
		})
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(h.auth, h.requireRoles(models.RoleAdmin))
		r.Delete("/users/{id}", h.deleteUser)
	})

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.checkHTTPMethod(router))

	return router
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}
