// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response statuses used in every JSON envelope.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the JSON envelope returned by the auth and admin routes.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Token   string      `json:"token,omitempty"`
	User    *PublicUser `json:"user,omitempty"`
	Data    *PublicUser `json:"data,omitempty"`
}

// ErrorResponse is the JSON body written by the centralized error responder.
// Error and Stack are only filled in development mode.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	TraceID string `json:"traceId,omitempty"`
	Error   string `json:"error,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Users   int64  `json:"users"`
	Version string `json:"version,omitempty"`
}
