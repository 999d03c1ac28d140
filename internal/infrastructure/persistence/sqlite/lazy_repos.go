package sqlite

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/tilemux/internal/application/port"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/domain/repository"
)

// LazySessionLedger defers opening the database until the ledger is used.
type LazySessionLedger struct {
	provider port.DatabaseProvider
	repo     repository.SessionLedger
	once     sync.Once
	initErr  error
}

// NewLazySessionLedger creates a lazy-loading session ledger.
func NewLazySessionLedger(provider port.DatabaseProvider) repository.SessionLedger {
	return &LazySessionLedger{provider: provider}
}

func (r *LazySessionLedger) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewSessionLedger(db)
	})
	return r.initErr
}

func (r *LazySessionLedger) RecordCreated(ctx context.Context, record *entity.SessionRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.RecordCreated(ctx, record)
}

func (r *LazySessionLedger) RecordDestroyed(ctx context.Context, handle entity.SessionHandle, destroyedAt time.Time) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.RecordDestroyed(ctx, handle, destroyedAt)
}

func (r *LazySessionLedger) Recent(ctx context.Context, limit int) ([]*entity.SessionRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Recent(ctx, limit)
}

func (r *LazySessionLedger) DeleteDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteDestroyedBefore(ctx, cutoff)
}
