// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/passport-api/internal/adapter"
	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/logger"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args and returns once it is done.
	Run(ctx context.Context, args []string) error
}

// AdapterFactory builds the server adapter once flags have been parsed.
type AdapterFactory func(cfg config.ClientConfig, logger *logger.Logger) (adapter.ServerAdapter, error)
