package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tilemux/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openLedger(t *testing.T) (context.Context, *sqlite.LazyDB) {
	t.Helper()
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "tilemux.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	return ctx, lazy
}

func TestSessionLedger_Lifecycle(t *testing.T) {
	ctx, lazy := openLedger(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	ledger := sqlite.NewSessionLedger(db)

	createdAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	rec := &entity.SessionRecord{Handle: "s-1", PaneID: "p1", WorkspaceID: "ws-1", CreatedAt: createdAt}
	require.NoError(t, ledger.RecordCreated(ctx, rec))

	recent, err := ledger.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	got := recent[0]
	assert.Equal(t, rec.Handle, got.Handle)
	assert.Equal(t, rec.PaneID, got.PaneID)
	assert.Equal(t, rec.WorkspaceID, got.WorkspaceID)
	assert.True(t, got.CreatedAt.Equal(createdAt))
	assert.True(t, got.IsLive())

	destroyedAt := createdAt.Add(time.Hour)
	require.NoError(t, ledger.RecordDestroyed(ctx, "s-1", destroyedAt))

	recent, err = ledger.Recent(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, recent[0].DestroyedAt)
	assert.True(t, recent[0].DestroyedAt.Equal(destroyedAt))
}

func TestSessionLedger_RecordDestroyedTwice(t *testing.T) {
	ctx, lazy := openLedger(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	ledger := sqlite.NewSessionLedger(db)

	now := time.Now()
	require.NoError(t, ledger.RecordCreated(ctx, &entity.SessionRecord{Handle: "s-1", PaneID: "p1", CreatedAt: now}))
	require.NoError(t, ledger.RecordDestroyed(ctx, "s-1", now))

	assert.ErrorIs(t, ledger.RecordDestroyed(ctx, "s-1", now), entity.ErrInvalidSession)
	assert.ErrorIs(t, ledger.RecordDestroyed(ctx, "unknown", now), entity.ErrInvalidSession)
}

func TestSessionLedger_RejectsInvalidRecord(t *testing.T) {
	ctx, lazy := openLedger(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	ledger := sqlite.NewSessionLedger(db)

	err = ledger.RecordCreated(ctx, &entity.SessionRecord{PaneID: "p1", CreatedAt: time.Now()})

	assert.ErrorIs(t, err, entity.ErrInvalidSession)
}

func TestSessionLedger_RecentNewestFirstWithLimit(t *testing.T) {
	ctx, lazy := openLedger(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	ledger := sqlite.NewSessionLedger(db)

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	for i, h := range []entity.SessionHandle{"a", "b", "c"} {
		rec := &entity.SessionRecord{Handle: h, PaneID: "p", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, ledger.RecordCreated(ctx, rec))
	}

	recent, err := ledger.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, entity.SessionHandle("c"), recent[0].Handle)
	assert.Equal(t, entity.SessionHandle("b"), recent[1].Handle)

	all, err := ledger.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSessionLedger_DeleteDestroyedBefore(t *testing.T) {
	ctx, lazy := openLedger(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	ledger := sqlite.NewSessionLedger(db)

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	for _, h := range []entity.SessionHandle{"old", "new", "live"} {
		require.NoError(t, ledger.RecordCreated(ctx, &entity.SessionRecord{Handle: h, PaneID: "p", CreatedAt: base}))
	}
	require.NoError(t, ledger.RecordDestroyed(ctx, "old", base.Add(time.Hour)))
	require.NoError(t, ledger.RecordDestroyed(ctx, "new", base.Add(3*time.Hour)))

	deleted, err := ledger.DeleteDestroyedBefore(ctx, base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := ledger.Recent(ctx, 10)
	require.NoError(t, err)
	handles := make([]entity.SessionHandle, 0, len(remaining))
	for _, r := range remaining {
		handles = append(handles, r.Handle)
	}
	assert.ElementsMatch(t, []entity.SessionHandle{"new", "live"}, handles)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx, lazy := openLedger(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	require.NoError(t, sqlite.RunMigrations(ctx, db))
	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
