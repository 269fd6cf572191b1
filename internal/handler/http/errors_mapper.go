// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/service"
	"github.com/MKhiriev/passport-api/internal/utils"
	"github.com/MKhiriev/passport-api/models"
)

// genericErrorMessage is the only detail production clients get for
// unexpected errors.
const genericErrorMessage = "something went wrong, please try again later"

// operationalError describes how a known error is answered. An empty
// message means the error's own text is safe to send.
type operationalError struct {
	status  int
	message string
}

var errorStatusMap = map[error]operationalError{
	service.ErrInvalidDataProvided:       {status: http.StatusBadRequest},
	service.ErrMissingCredentials:        {status: http.StatusBadRequest},
	service.ErrMissingRegistrationFields: {status: http.StatusBadRequest},
	service.ErrInvalidEmail:              {status: http.StatusBadRequest},
	service.ErrPasswordTooLong:           {status: http.StatusBadRequest},
	service.ErrEmailAlreadyRegistered:    {status: http.StatusBadRequest},
	service.ErrEmailAlreadyInUse:         {status: http.StatusBadRequest},
	service.ErrPasswordChangeNotAllowed:  {status: http.StatusBadRequest},
	service.ErrCannotDeleteSelf:          {status: http.StatusBadRequest},
	service.ErrInvalidCredentials:        {status: http.StatusUnauthorized},
	service.ErrTokenIsExpiredOrInvalid:   {status: http.StatusForbidden},
	service.ErrUserNotFound:              {status: http.StatusNotFound},
	service.ErrDatabaseUnavailable:       {status: http.StatusInternalServerError},

	ErrInvalidJSON:              {status: http.StatusBadRequest},
	ErrInvalidUserID:            {status: http.StatusBadRequest},
	ErrNoToken:                  {status: http.StatusUnauthorized},
	ErrNotAuthenticatedOrNoRole: {status: http.StatusForbidden},
	ErrRoleNotPermitted:         {status: http.StatusForbidden},
	ErrRouteNotFound:            {status: http.StatusNotFound},
}

// lookupError finds the operational error err matches and the message to
// answer with.
func lookupError(err error) (int, string, bool) {
	var roleErr *roleNotPermittedError
	if errors.As(err, &roleErr) {
		return http.StatusForbidden, roleErr.Error(), true
	}

	for target, op := range errorStatusMap {
		if errors.Is(err, target) {
			message := op.message
			if message == "" {
				message = target.Error()
			}
			return op.status, message, true
		}
	}
	return 0, "", false
}

func statusFromError(err error) int {
	if status, _, ok := lookupError(err); ok {
		return status
	}
	return http.StatusInternalServerError
}

// responseStatus is "fail" for client errors and "error" for server errors.
func responseStatus(code int) string {
	if code >= http.StatusInternalServerError {
		return models.StatusError
	}
	return models.StatusFail
}

// writeError is the single place where failed requests are answered.
//
// Operational errors get their status and safe message. Anything else is
// logged and answered with 500; outside production the error chain and the
// goroutine stack are included in the body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	body := models.ErrorResponse{TraceID: w.Header().Get(traceIDHeader)}

	code, message, ok := lookupError(err)
	if ok {
		log.Debug().Err(err).Int("status", code).Msg("request failed")
		body.Status = responseStatus(code)
		body.Message = message
		if !h.production {
			body.Error = err.Error()
		}
	} else {
		code = http.StatusInternalServerError
		log.Error().Err(err).Str("uri", r.RequestURI).Str("method", r.Method).Msg("unexpected error")
		body.Status = models.StatusError
		body.Message = genericErrorMessage
		if !h.production {
			body.Error = err.Error()
			body.Stack = string(debug.Stack())
		}
	}

	if _, writeErr := utils.WriteJSON(w, body, code); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
