// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/service"
)

// HealthProbe periodically checks the database through the health service
// and tells its reporters whether the API can serve requests.
type HealthProbe struct {
	healthService service.HealthService
	reporters     []ServingReporter
	interval      time.Duration

	logger *logger.Logger
}

func NewHealthProbe(healthService service.HealthService, interval time.Duration, logger *logger.Logger, reporters ...ServingReporter) *HealthProbe {
	if interval <= 0 {
		interval = config.DefaultHealthProbeInterval
	}

	return &HealthProbe{
		healthService: healthService,
		reporters:     reporters,
		interval:      interval,
		logger:        logger,
	}
}

// Run probes once right away and then on every tick until ctx is cancelled.
func (p *HealthProbe) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("health probe started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	last := p.probe(ctx, nil)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("health probe stopped")
			return
		case <-ticker.C:
			last = p.probe(ctx, last)
		}
	}
}

// probe runs one check and returns its outcome. Transitions are logged;
// steady states are not.
func (p *HealthProbe) probe(ctx context.Context, previous *bool) *bool {
	checkCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	status, err := p.healthService.Check(checkCtx)
	if ctx.Err() != nil {
		return previous
	}
	serving := err == nil

	for _, reporter := range p.reporters {
		reporter.SetServing(serving)
	}

	if previous == nil || *previous != serving {
		if serving {
			p.logger.Info().Int64("users", status.Users).Msg("database is reachable")
		} else {
			p.logger.Warn().Err(err).Msg("database is unreachable")
		}
	}

	return &serving
}
