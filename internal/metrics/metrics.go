// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines the Prometheus metrics of the passport-api server.
//
// All metrics are registered with [Registry], which is served on
// GET /metrics together with the Go runtime and process collectors.
//
// Metric naming follows Prometheus conventions:
//   - passport_ prefix for all custom metrics
//   - _total suffix for counters
//   - _seconds suffix for duration histograms
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth flows and results used as label values of AuthAttemptsTotal.
const (
	FlowRegister = "register"
	FlowLogin    = "login"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Registry holds every passport-api collector.
var Registry = prometheus.NewRegistry()

var (
	// HTTPRequestsTotal counts served requests by method, route pattern and
	// status code.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passport_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDurationSeconds is a histogram of request latency.
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "passport_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AuthAttemptsTotal counts register and login attempts by outcome.
	AuthAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passport_auth_attempts_total",
			Help: "Total authentication attempts by flow and result.",
		},
		[]string{"flow", "result"},
	)

	// DatabaseUp is 1 while the background health probe reaches the database.
	DatabaseUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "passport_database_up",
			Help: "Whether the last database health probe succeeded.",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		AuthAttemptsTotal,
		DatabaseUp,
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// RecordRequest records one finished HTTP request.
func RecordRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordAuthAttempt records the outcome of a register or login attempt.
func RecordAuthAttempt(flow string, ok bool) {
	result := ResultFailure
	if ok {
		result = ResultSuccess
	}
	AuthAttemptsTotal.WithLabelValues(flow, result).Inc()
}

// SetDatabaseUp records the result of a database health probe.
func SetDatabaseUp(up bool) {
	if up {
		DatabaseUp.Set(1)
		return
	}
	DatabaseUp.Set(0)
}
