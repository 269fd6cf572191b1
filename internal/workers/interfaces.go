// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// ServingReporter receives the outcome of every health probe.
type ServingReporter interface {
	SetServing(serving bool)
}

// ServingReporterFunc adapts a plain function to [ServingReporter].
type ServingReporterFunc func(serving bool)

// SetServing calls f(serving).
func (f ServingReporterFunc) SetServing(serving bool) {
	f(serving)
}
