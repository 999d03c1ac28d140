package session

import (
	"context"
	"time"

	"github.com/bnema/tilemux/internal/application/port"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/domain/repository"
	"github.com/bnema/tilemux/internal/infrastructure/telemetry"
	"github.com/bnema/tilemux/internal/logging"
)

// RecordingProvider decorates a SessionProvider, writing every creation and
// teardown to the session ledger and the session counters. Ledger failures
// are logged and never fail the pane operation.
type RecordingProvider struct {
	next        port.SessionProvider
	ledger      repository.SessionLedger
	metrics     *telemetry.Metrics
	workspaceID entity.WorkspaceID
	now         func() time.Time
}

var _ port.SessionProvider = (*RecordingProvider)(nil)

// NewRecordingProvider wraps next. ledger and metrics may be nil.
func NewRecordingProvider(
	next port.SessionProvider,
	ledger repository.SessionLedger,
	metrics *telemetry.Metrics,
	workspaceID entity.WorkspaceID,
) *RecordingProvider {
	return &RecordingProvider{
		next:        next,
		ledger:      ledger,
		metrics:     metrics,
		workspaceID: workspaceID,
		now:         time.Now,
	}
}

// CreateSession delegates and records the new session.
func (p *RecordingProvider) CreateSession(ctx context.Context, paneID entity.PaneID) (entity.SessionHandle, error) {
	handle, err := p.next.CreateSession(ctx, paneID)
	p.metrics.RecordSessionCreated(ctx, err != nil)
	if err != nil {
		return "", err
	}

	if p.ledger != nil {
		rec := &entity.SessionRecord{
			Handle:      handle,
			PaneID:      paneID,
			WorkspaceID: p.workspaceID,
			CreatedAt:   p.now(),
		}
		if lerr := p.ledger.RecordCreated(ctx, rec); lerr != nil {
			logging.FromContext(ctx).Warn().
				Err(lerr).
				Str("session", string(handle)).
				Msg("failed to record session creation")
		}
	}
	return handle, nil
}

// DestroySession delegates and records the teardown.
func (p *RecordingProvider) DestroySession(ctx context.Context, handle entity.SessionHandle) error {
	err := p.next.DestroySession(ctx, handle)
	p.metrics.RecordSessionDestroyed(ctx, err != nil)

	if p.ledger != nil {
		if lerr := p.ledger.RecordDestroyed(ctx, handle, p.now()); lerr != nil {
			logging.FromContext(ctx).Warn().
				Err(lerr).
				Str("session", string(handle)).
				Msg("failed to record session teardown")
		}
	}
	return err
}
