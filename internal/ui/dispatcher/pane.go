// Package dispatcher routes user actions to the pane engine.
package dispatcher

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/bnema/tilemux/internal/application/usecase"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/infrastructure/telemetry"
	"github.com/bnema/tilemux/internal/logging"
	"github.com/bnema/tilemux/internal/ui/input"
)

// PaneDispatcher applies actions to a single workspace. Like the workspace it
// drives, it must only be used from one goroutine.
type PaneDispatcher struct {
	panes   *usecase.ManagePanesUseCase
	ws      *entity.Workspace
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// NewPaneDispatcher creates a dispatcher for ws. metrics and tracer may be nil.
func NewPaneDispatcher(
	ctx context.Context,
	panes *usecase.ManagePanesUseCase,
	ws *entity.Workspace,
	metrics *telemetry.Metrics,
	tracer trace.Tracer,
) *PaneDispatcher {
	logging.FromContext(ctx).Debug().Str("workspace_id", string(ws.ID)).Msg("creating pane dispatcher")
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &PaneDispatcher{
		panes:   panes,
		ws:      ws,
		metrics: metrics,
		tracer:  tracer,
	}
}

// Workspace returns the workspace being driven.
func (d *PaneDispatcher) Workspace() *entity.Workspace {
	return d.ws
}

// Dispatch runs action and returns the telemetry outcome: applied, noop or error.
func (d *PaneDispatcher) Dispatch(ctx context.Context, action input.Action) (string, error) {
	ctx, span := d.tracer.Start(ctx, "pane.dispatch",
		trace.WithAttributes(attribute.String("pane.action", string(action))))
	defer span.End()

	log := logging.FromContext(ctx)
	log.Debug().Str("action", string(action)).Msg("dispatching pane action")

	before := d.ws.Revision
	err := d.apply(ctx, action)

	outcome := telemetry.OutcomeNoop
	switch {
	case err != nil:
		outcome = telemetry.OutcomeError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn().Err(err).Str("action", string(action)).Msg("pane action failed")
	case d.ws.Revision != before:
		outcome = telemetry.OutcomeApplied
	}

	span.SetAttributes(
		attribute.String("pane.outcome", outcome),
		attribute.Int64("pane.revision", int64(d.ws.Revision)),
	)
	d.metrics.RecordCommand(ctx, string(action), outcome)
	return outcome, err
}

func (d *PaneDispatcher) apply(ctx context.Context, action input.Action) error {
	if dir, ok := action.SplitDirection(); ok {
		if d.ws.PaneCount() == 0 {
			_, err := d.panes.Open(ctx, d.ws)
			return err
		}
		_, err := d.panes.Split(ctx, d.ws, d.ws.Focused, dir)
		return err
	}
	if dir, ok := action.NavDirection(); ok {
		return d.panes.Navigate(ctx, d.ws, dir)
	}
	if delta, ok := action.LinearDelta(); ok {
		return d.panes.NavigateLinear(ctx, d.ws, delta)
	}
	if index, ok := action.PaneIndex(); ok {
		return d.panes.NavigateSpecific(ctx, d.ws, index)
	}
	if dir, ok := action.ResizeDirection(); ok {
		return d.panes.Resize(ctx, d.ws, dir)
	}

	switch action {
	case input.ActionMaximize:
		return d.panes.ToggleMaximize(ctx, d.ws)
	case input.ActionClosePane:
		if d.ws.Focused == "" {
			return nil
		}
		return d.panes.Remove(ctx, d.ws, d.ws.Focused)
	default:
		return fmt.Errorf("unhandled action %q", action)
	}
}
