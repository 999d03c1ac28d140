package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/domain/repository"
	"github.com/bnema/tilemux/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/tilemux/internal/logging"
)

const defaultRecentLimit = 20

type sessionLedgerRepo struct {
	queries *sqlc.Queries
}

// NewSessionLedger returns a SQLite-backed session ledger.
func NewSessionLedger(db *sql.DB) repository.SessionLedger {
	return &sessionLedgerRepo{queries: sqlc.New(db)}
}

func (r *sessionLedgerRepo) RecordCreated(ctx context.Context, record *entity.SessionRecord) error {
	log := logging.FromContext(ctx)
	if err := record.Validate(); err != nil {
		return err
	}

	log.Debug().
		Str("session", string(record.Handle)).
		Str("pane_id", string(record.PaneID)).
		Msg("recording session")

	return r.queries.InsertPaneSession(ctx, sqlc.InsertPaneSessionParams{
		ID:          string(record.Handle),
		PaneID:      string(record.PaneID),
		WorkspaceID: string(record.WorkspaceID),
		CreatedAt:   record.CreatedAt.UTC(),
	})
}

func (r *sessionLedgerRepo) RecordDestroyed(ctx context.Context, handle entity.SessionHandle, destroyedAt time.Time) error {
	updated, err := r.queries.MarkPaneSessionDestroyed(ctx, sqlc.MarkPaneSessionDestroyedParams{
		DestroyedAt: sql.NullTime{Time: destroyedAt.UTC(), Valid: true},
		ID:          string(handle),
	})
	if err != nil {
		return err
	}
	if updated == 0 {
		return fmt.Errorf("session %s is unknown or already destroyed: %w", handle, entity.ErrInvalidSession)
	}
	return nil
}

func (r *sessionLedgerRepo) Recent(ctx context.Context, limit int) ([]*entity.SessionRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	rows, err := r.queries.GetRecentPaneSessions(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	records := make([]*entity.SessionRecord, len(rows))
	for i := range rows {
		records[i] = recordFromRow(rows[i])
	}
	return records, nil
}

func (r *sessionLedgerRepo) DeleteDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logging.FromContext(ctx)
	deleted, err := r.queries.DeleteDestroyedPaneSessionsBefore(ctx, sql.NullTime{Time: cutoff.UTC(), Valid: true})
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.Debug().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("pruned destroyed sessions")
	}
	return deleted, nil
}

func recordFromRow(row sqlc.PaneSession) *entity.SessionRecord {
	rec := &entity.SessionRecord{
		Handle:      entity.SessionHandle(row.ID),
		PaneID:      entity.PaneID(row.PaneID),
		WorkspaceID: entity.WorkspaceID(row.WorkspaceID),
		CreatedAt:   row.CreatedAt,
	}
	if row.DestroyedAt.Valid {
		t := row.DestroyedAt.Time
		rec.DestroyedAt = &t
	}
	return rec
}
