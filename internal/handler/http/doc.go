// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// metrics, session cookie authentication and role checks are handled in this
// package before requests are delegated to the service layer. Every failure
// is answered through a single error responder, see [Handler.writeError].
package http
