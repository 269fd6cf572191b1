// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/metrics"
	"github.com/MKhiriev/passport-api/internal/service"
	"github.com/MKhiriev/passport-api/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func requestCount(method, route, status string) float64 {
	return testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(method, route, status))
}

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	services, _, users := testServices()
	users.deleteUserFn = func(context.Context, int64, int64) error { return nil }
	router := newTestHandler(t, services, config.Development).Init()

	adminBefore := requestCount(http.MethodDelete, "/admin/users/{id}", "200")
	unmatchedBefore := requestCount(http.MethodGet, unmatchedRoute, "404")

	serve(t, router, http.MethodDelete, "/admin/users/5", "", sessionCookie(t, adminIdentity))
	serve(t, router, http.MethodDelete, "/admin/users/6", "", sessionCookie(t, adminIdentity))
	serve(t, router, http.MethodGet, "/does/not/exist", "")

	assert.Equal(t, adminBefore+2, requestCount(http.MethodDelete, "/admin/users/{id}", "200"))
	assert.Equal(t, unmatchedBefore+1, requestCount(http.MethodGet, unmatchedRoute, "404"))
}

func TestAuthAttemptsAreCounted(t *testing.T) {
	services, auth, _ := testServices()
	auth.loginFn = func(_ context.Context, r models.LoginRequest) (models.User, error) {
		if r.Password == "right" {
			return registeredUser, nil
		}
		return models.User{}, service.ErrInvalidCredentials
	}
	router := newTestHandler(t, services, config.Development).Init()

	success := metrics.AuthAttemptsTotal.WithLabelValues(metrics.FlowLogin, metrics.ResultSuccess)
	failure := metrics.AuthAttemptsTotal.WithLabelValues(metrics.FlowLogin, metrics.ResultFailure)
	successBefore, failureBefore := testutil.ToFloat64(success), testutil.ToFloat64(failure)

	serve(t, router, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"right"}`)
	serve(t, router, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"wrong"}`)
	serve(t, router, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"wrong"}`)

	assert.Equal(t, successBefore+1, testutil.ToFloat64(success))
	assert.Equal(t, failureBefore+2, testutil.ToFloat64(failure))
}
