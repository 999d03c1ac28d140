package usecase_test

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tilemux/internal/application/port/mocks"
	"github.com/bnema/tilemux/internal/application/usecase"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

const ratioDelta = 1e-9

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("error", "console")
	return logging.WithContext(context.Background(), logger)
}

// sequentialIDs returns p1, p2, p3...
func sequentialIDs() usecase.IDGenerator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("p%d", n.Add(1))
	}
}

// newSessions returns a provider mock that hands out "s-<pane>" handles and
// accepts any number of create/destroy calls.
func newSessions(t *testing.T) *mocks.MockSessionProvider {
	t.Helper()
	sessions := mocks.NewMockSessionProvider(t)
	sessions.EXPECT().
		CreateSession(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id entity.PaneID) (entity.SessionHandle, error) {
			return entity.SessionHandle("s-" + string(id)), nil
		}).
		Maybe()
	sessions.EXPECT().DestroySession(mock.Anything, mock.Anything).Return(nil).Maybe()
	return sessions
}

func newUseCase(t *testing.T) *usecase.ManagePanesUseCase {
	t.Helper()
	return usecase.NewManagePanesUseCase(sequentialIDs(), newSessions(t), nil)
}

// openWorkspace returns a workspace holding a single pane "p1".
func openWorkspace(t *testing.T, uc *usecase.ManagePanesUseCase) *entity.Workspace {
	t.Helper()
	ws := entity.NewWorkspace("ws", "test")
	id, err := uc.Open(testCtx(), ws)
	require.NoError(t, err)
	require.Equal(t, entity.PaneID("p1"), id)
	return ws
}

// rowOf builds a row of n panes p1..pn with equal ratios, focus on the last.
func rowOf(t *testing.T, uc *usecase.ManagePanesUseCase, n int) *entity.Workspace {
	t.Helper()
	ws := openWorkspace(t, uc)
	for i := 1; i < n; i++ {
		_, err := uc.Split(testCtx(), ws, ws.Focused, entity.DirectionRight)
		require.NoError(t, err)
	}
	return ws
}

func order(t *testing.T, ws *entity.Workspace) []entity.PaneID {
	t.Helper()
	out, err := ws.Tree.LinearOrder()
	require.NoError(t, err)
	return out
}

func ratioOf(t *testing.T, ws *entity.Workspace, id entity.PaneID) float64 {
	t.Helper()
	n, ok := ws.Tree.FindPane(id)
	require.True(t, ok, "pane %s missing", id)
	return ws.Tree.Ratio(n)
}

// requireSameLayout compares two snapshot trees structurally, with ratios
// compared within tolerance.
func requireSameLayout(t *testing.T, want, got *entity.SnapshotNode) {
	t.Helper()
	if want == nil || got == nil {
		require.Equal(t, want == nil, got == nil)
		return
	}
	require.Equal(t, want.PaneID, got.PaneID)
	require.True(t, math.Abs(want.Ratio-got.Ratio) < ratioDelta, "ratio %v != %v", want.Ratio, got.Ratio)
	if want.IsPane() {
		return
	}
	require.Equal(t, want.Axis, got.Axis)
	require.Len(t, got.Children, len(want.Children))
	for i := range want.Children {
		requireSameLayout(t, want.Children[i], got.Children[i])
	}
}
