// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the server. Every probe
// result is passed on to reporters.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger, reporters ...ServingReporter) *Workers {
	logger.Info().Msg("creating new workers...")

	return &Workers{
		workers: []Worker{
			NewHealthProbe(services.HealthService, cfg.HealthProbeInterval, logger, reporters...),
		},
	}
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
