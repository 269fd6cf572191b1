// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyBaseURL = errors.New("empty server address")
)

// APIError is a non-2xx answer of the server.
type APIError struct {
	StatusCode int
	Message    string
	TraceID    string

	kind error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("server answered %d: %s", e.StatusCode, e.Message)
	if e.TraceID != "" {
		msg += " (trace id " + e.TraceID + ")"
	}
	return msg
}

// Unwrap exposes the sentinel error matching the status code, if any.
func (e *APIError) Unwrap() error {
	return e.kind
}
