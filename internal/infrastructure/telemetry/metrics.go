package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/bnema/tilemux"

// Command outcomes.
const (
	OutcomeApplied = "applied"
	OutcomeNoop    = "noop"
	OutcomeError   = "error"
)

// Metrics holds the metric instruments. A nil *Metrics records nothing.
type Metrics struct {
	Commands          metric.Int64Counter
	SessionsCreated   metric.Int64Counter
	SessionsDestroyed metric.Int64Counter
}

// NewMetrics creates the instruments on the given provider.
func NewMetrics(provider metric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Commands, err = meter.Int64Counter("pane.commands",
		metric.WithDescription("Pane commands dispatched, partitioned by action and outcome"))
	if err != nil {
		return nil, err
	}

	m.SessionsCreated, err = meter.Int64Counter("pane.sessions.created",
		metric.WithDescription("Terminal sessions created for new panes"))
	if err != nil {
		return nil, err
	}

	m.SessionsDestroyed, err = meter.Int64Counter("pane.sessions.destroyed",
		metric.WithDescription("Terminal sessions torn down for removed panes"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordCommand records one dispatched command.
func (m *Metrics) RecordCommand(ctx context.Context, action, outcome string) {
	if m == nil {
		return
	}
	m.Commands.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pane.action", action),
		attribute.String("pane.outcome", outcome),
	))
}

// RecordSessionCreated records a session creation attempt.
func (m *Metrics) RecordSessionCreated(ctx context.Context, failed bool) {
	if m == nil {
		return
	}
	m.SessionsCreated.Add(ctx, 1, metric.WithAttributes(attribute.Bool("error", failed)))
}

// RecordSessionDestroyed records a session teardown attempt.
func (m *Metrics) RecordSessionDestroyed(ctx context.Context, failed bool) {
	if m == nil {
		return
	}
	m.SessionsDestroyed.Add(ctx, 1, metric.WithAttributes(attribute.Bool("error", failed)))
}
