// Package repository declares persistence interfaces for domain entities.
package repository

import (
	"context"
	"time"

	"github.com/bnema/tilemux/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_session_ledger.go -package=mocks . SessionLedger

// SessionLedger keeps an audit trail of terminal sessions created and
// destroyed for panes.
type SessionLedger interface {
	RecordCreated(ctx context.Context, record *entity.SessionRecord) error
	RecordDestroyed(ctx context.Context, handle entity.SessionHandle, destroyedAt time.Time) error

	// Recent returns the newest records first.
	Recent(ctx context.Context, limit int) ([]*entity.SessionRecord, error)

	// DeleteDestroyedBefore prunes destroyed sessions older than cutoff.
	// Returns number of deleted records.
	DeleteDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
