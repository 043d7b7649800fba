// Package telemetry provides progress reporting adapters.
package telemetry

import (
	"context"

	"github.com/hullworks/keel/internal/core/domain"
	"github.com/hullworks/keel/internal/core/ports"
)

// NoOpReporter is a no-op implementation of ports.Reporter.
type NoOpReporter struct{}

// NewNoOpReporter creates a new NoOpReporter.
func NewNoOpReporter() *NoOpReporter {
	return &NoOpReporter{}
}

// Record creates a new no-op vertex.
func (r *NoOpReporter) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (r *NoOpReporter) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Log does nothing.
func (v *NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
