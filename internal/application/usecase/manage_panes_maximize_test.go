package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tilemux/internal/domain/entity"
)

func TestMaximize_SetAndClear(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 3)

	require.NoError(t, uc.Maximize(testCtx(), ws, "p1"))
	assert.Equal(t, entity.StateMaximized, ws.State())
	assert.Equal(t, entity.PaneID("p1"), ws.Maximized)
	assert.Equal(t, entity.PaneID("p1"), ws.Focused)
	before := order(t, ws)

	require.NoError(t, uc.Maximize(testCtx(), ws, ""))
	assert.Equal(t, entity.StateNormal, ws.State())
	assert.Equal(t, before, order(t, ws))
}

func TestMaximize_Idempotent(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 2)
	require.NoError(t, uc.Maximize(testCtx(), ws, "p2"))
	rev := ws.Revision

	require.NoError(t, uc.Maximize(testCtx(), ws, "p2"))
	assert.Equal(t, rev, ws.Revision)

	require.NoError(t, uc.Maximize(testCtx(), ws, ""))
	rev = ws.Revision
	require.NoError(t, uc.Maximize(testCtx(), ws, ""))
	assert.Equal(t, rev, ws.Revision)
}

func TestMaximize_SinglePaneIsRecorded(t *testing.T) {
	uc := newUseCase(t)
	ws := openWorkspace(t, uc)

	require.NoError(t, uc.Maximize(testCtx(), ws, "p1"))

	assert.Equal(t, entity.StateMaximized, ws.State())
}

func TestMaximize_PaneNotFound(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 2)

	err := uc.Maximize(testCtx(), ws, "ghost")

	assert.ErrorIs(t, err, entity.ErrPaneNotFound)
	assert.Equal(t, entity.StateNormal, ws.State())
}

func TestMaximize_SplitReturnsToNormal(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 2)
	require.NoError(t, uc.Maximize(testCtx(), ws, "p2"))

	p3, err := uc.Split(testCtx(), ws, "p2", entity.DirectionBottom)
	require.NoError(t, err)

	assert.Equal(t, p3, ws.Focused)
	assert.Equal(t, entity.StateNormal, ws.State())
}

func TestMaximize_RemovingOtherPaneKeepsState(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 3)
	require.NoError(t, uc.Maximize(testCtx(), ws, "p3"))

	require.NoError(t, uc.Remove(testCtx(), ws, "p1"))

	assert.Equal(t, entity.PaneID("p3"), ws.Maximized)
	assert.Equal(t, entity.PaneID("p3"), ws.Focused)
}

func TestToggleMaximize(t *testing.T) {
	uc := newUseCase(t)
	ws := openWorkspace(t, uc)

	require.NoError(t, uc.ToggleMaximize(testCtx(), ws))
	assert.Equal(t, entity.StateNormal, ws.State(), "single pane is never maximized by toggle")

	_, err := uc.Split(testCtx(), ws, "p1", entity.DirectionRight)
	require.NoError(t, err)

	require.NoError(t, uc.ToggleMaximize(testCtx(), ws))
	assert.Equal(t, entity.PaneID("p2"), ws.Maximized)

	require.NoError(t, uc.ToggleMaximize(testCtx(), ws))
	assert.Equal(t, entity.StateNormal, ws.State())
}

func TestMaximize_NavigationLeavesMaximize(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 2)
	require.NoError(t, uc.Maximize(testCtx(), ws, "p2"))

	require.NoError(t, uc.Navigate(testCtx(), ws, entity.DirectionLeft))

	assert.Equal(t, entity.PaneID("p1"), ws.Focused)
	assert.Equal(t, entity.StateNormal, ws.State())
}
