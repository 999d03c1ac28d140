package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tilemux/internal/application/port/mocks"
	"github.com/bnema/tilemux/internal/application/usecase"
	"github.com/bnema/tilemux/internal/domain/entity"
)

func TestOpen_CreatesFocusedPaneAndNotifies(t *testing.T) {
	// Arrange
	sessions := mocks.NewMockSessionProvider(t)
	notifier := mocks.NewMockLayoutNotifier(t)
	sessions.EXPECT().CreateSession(mock.Anything, entity.PaneID("p1")).Return("s-1", nil).Once()
	notifier.EXPECT().
		LayoutChanged(mock.Anything, mock.AnythingOfType("entity.LayoutSnapshot")).
		Run(func(_ context.Context, s entity.LayoutSnapshot) {
			assert.Equal(t, entity.PaneID("p1"), s.Focused)
			assert.Equal(t, uint64(1), s.Revision)
			require.NotNil(t, s.Root)
			assert.Equal(t, entity.SessionHandle("s-1"), s.Root.Session)
		}).
		Return().
		Once()
	uc := usecase.NewManagePanesUseCase(sequentialIDs(), sessions, notifier)
	ws := entity.NewWorkspace("ws", "test")

	// Act
	id, err := uc.Open(testCtx(), ws)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.PaneID("p1"), id)
	assert.Equal(t, id, ws.Focused)
	assert.Equal(t, 1, ws.PaneCount())
}

func TestOpen_NonEmptyWorkspace(t *testing.T) {
	uc := newUseCase(t)
	ws := openWorkspace(t, uc)

	_, err := uc.Open(testCtx(), ws)

	assert.ErrorIs(t, err, entity.ErrWorkspaceNotEmpty)
	assert.Equal(t, 1, ws.PaneCount())
}

func TestSplit_RightThenBottomScenario(t *testing.T) {
	uc := newUseCase(t)
	ws := openWorkspace(t, uc)

	p2, err := uc.Split(testCtx(), ws, "p1", entity.DirectionRight)
	require.NoError(t, err)

	root := ws.Snapshot().Root
	assert.Equal(t, entity.AxisRow, root.Axis)
	require.Len(t, root.Children, 2)
	assert.InDelta(t, 0.5, root.Children[0].Ratio, ratioDelta)
	assert.InDelta(t, 0.5, root.Children[1].Ratio, ratioDelta)
	assert.Equal(t, p2, ws.Focused)

	p3, err := uc.Split(testCtx(), ws, p2, entity.DirectionBottom)
	require.NoError(t, err)

	root = ws.Snapshot().Root
	require.Len(t, root.Children, 2)
	assert.Equal(t, entity.PaneID("p1"), root.Children[0].PaneID)
	assert.InDelta(t, 0.5, root.Children[0].Ratio, ratioDelta)

	column := root.Children[1]
	assert.Equal(t, entity.AxisColumn, column.Axis)
	assert.InDelta(t, 0.5, column.Ratio, ratioDelta)
	require.Len(t, column.Children, 2)
	assert.Equal(t, p2, column.Children[0].PaneID)
	assert.Equal(t, p3, column.Children[1].PaneID)
	assert.InDelta(t, 0.5, column.Children[0].Ratio, ratioDelta)
	assert.InDelta(t, 0.5, column.Children[1].Ratio, ratioDelta)
	assert.Equal(t, p3, ws.Focused)
}

func TestSplit_SameAxisSharesEqually(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 3)

	assert.Equal(t, []entity.PaneID{"p1", "p2", "p3"}, order(t, ws))
	for _, id := range order(t, ws) {
		assert.InDelta(t, 1.0/3, ratioOf(t, ws, id), ratioDelta)
	}
	assert.Equal(t, entity.AxisRow, ws.Snapshot().Root.Axis)
	require.NoError(t, ws.Tree.Validate())
}

func TestSplit_LeftAndTopInsertBefore(t *testing.T) {
	uc := newUseCase(t)
	ws := openWorkspace(t, uc)

	p2, err := uc.Split(testCtx(), ws, "p1", entity.DirectionLeft)
	require.NoError(t, err)
	assert.Equal(t, []entity.PaneID{p2, "p1"}, order(t, ws))

	p3, err := uc.Split(testCtx(), ws, "p1", entity.DirectionTop)
	require.NoError(t, err)
	assert.Equal(t, []entity.PaneID{p2, p3, "p1"}, order(t, ws))
}

func TestSplit_TargetMissing(t *testing.T) {
	// No CreateSession expectation: the provider must not be called.
	sessions := mocks.NewMockSessionProvider(t)
	sessions.EXPECT().CreateSession(mock.Anything, entity.PaneID("p1")).Return("s-1", nil).Once()
	uc := usecase.NewManagePanesUseCase(sequentialIDs(), sessions, nil)
	ws := openWorkspace(t, uc)

	_, err := uc.Split(testCtx(), ws, "ghost", entity.DirectionRight)

	assert.ErrorIs(t, err, entity.ErrPaneNotFound)
	assert.Equal(t, 1, ws.PaneCount())
}

func TestSplit_SessionFailureLeavesTreeUntouched(t *testing.T) {
	// Arrange
	boom := errors.New("pty exhausted")
	sessions := mocks.NewMockSessionProvider(t)
	sessions.EXPECT().CreateSession(mock.Anything, entity.PaneID("p1")).Return("s-1", nil).Once()
	sessions.EXPECT().CreateSession(mock.Anything, entity.PaneID("p2")).Return("s-2", nil).Once()
	sessions.EXPECT().CreateSession(mock.Anything, entity.PaneID("p3")).Return("", boom).Once()
	uc := usecase.NewManagePanesUseCase(sequentialIDs(), sessions, nil)
	ws := rowOf(t, uc, 2)
	before := ws.Snapshot()

	// Act
	_, err := uc.Split(testCtx(), ws, "p1", entity.DirectionBottom)

	// Assert
	require.ErrorIs(t, err, boom)
	after := ws.Snapshot()
	requireSameLayout(t, before.Root, after.Root)
	assert.Equal(t, before.Revision, after.Revision)
	assert.Equal(t, before.Focused, after.Focused)
	require.NoError(t, ws.Tree.Validate())
}

func TestSplit_InvalidDirection(t *testing.T) {
	uc := newUseCase(t)
	ws := openWorkspace(t, uc)

	_, err := uc.Split(testCtx(), ws, "p1", entity.Direction("diagonal"))

	assert.Error(t, err)
	assert.Equal(t, 1, ws.PaneCount())
}

func TestSplit_DuplicateIDRejected(t *testing.T) {
	sessions := newSessions(t)
	uc := usecase.NewManagePanesUseCase(func() string { return "same" }, sessions, nil)
	ws := entity.NewWorkspace("ws", "test")
	_, err := uc.Open(testCtx(), ws)
	require.NoError(t, err)

	_, err = uc.Split(testCtx(), ws, "same", entity.DirectionRight)

	assert.Error(t, err)
	assert.Equal(t, 1, ws.PaneCount())
}

func TestSplitThenRemove_RestoresLayout(t *testing.T) {
	dirs := []entity.Direction{
		entity.DirectionLeft, entity.DirectionRight, entity.DirectionTop, entity.DirectionBottom,
	}
	for _, dir := range dirs {
		t.Run(string(dir), func(t *testing.T) {
			uc := newUseCase(t)
			ws := rowOf(t, uc, 3)
			_, err := uc.Split(testCtx(), ws, "p2", entity.DirectionBottom)
			require.NoError(t, err)
			require.NoError(t, uc.Resize(testCtx(), ws, usecase.ResizeGrowHorizontal))
			before := ws.Snapshot()

			for _, target := range before.Panes() {
				newID, err := uc.Split(testCtx(), ws, target, dir)
				require.NoError(t, err)
				require.NoError(t, uc.Remove(testCtx(), ws, newID))
				requireSameLayout(t, before.Root, ws.Snapshot().Root)
			}
		})
	}
}

func TestRemove_CollapsesToSurvivor(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 2)

	require.NoError(t, uc.Remove(testCtx(), ws, "p2"))

	root := ws.Snapshot().Root
	assert.True(t, root.IsPane())
	assert.Equal(t, entity.PaneID("p1"), root.PaneID)
	assert.InDelta(t, 1.0, root.Ratio, ratioDelta)
	assert.Equal(t, entity.PaneID("p1"), ws.Focused)
}

func TestRemove_RenormalizesSiblings(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 4)

	require.NoError(t, uc.Remove(testCtx(), ws, "p3"))

	assert.Equal(t, []entity.PaneID{"p1", "p2", "p4"}, order(t, ws))
	for _, id := range order(t, ws) {
		assert.InDelta(t, 1.0/3, ratioOf(t, ws, id), ratioDelta)
	}
}

func TestRemove_FocusMovesToNextThenPrevious(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 3)
	require.NoError(t, uc.Focus(testCtx(), ws, "p2"))

	require.NoError(t, uc.Remove(testCtx(), ws, "p2"))
	assert.Equal(t, entity.PaneID("p3"), ws.Focused)

	require.NoError(t, uc.Remove(testCtx(), ws, "p3"))
	assert.Equal(t, entity.PaneID("p1"), ws.Focused)
}

func TestRemove_FocusDescendsIntoNextSubtree(t *testing.T) {
	uc := newUseCase(t)
	ws := openWorkspace(t, uc)
	_, err := uc.Split(testCtx(), ws, "p1", entity.DirectionRight) // p2
	require.NoError(t, err)
	_, err = uc.Split(testCtx(), ws, "p2", entity.DirectionBottom) // p3
	require.NoError(t, err)
	require.NoError(t, uc.Focus(testCtx(), ws, "p1"))

	require.NoError(t, uc.Remove(testCtx(), ws, "p1"))

	assert.Equal(t, entity.PaneID("p2"), ws.Focused)
	assert.Equal(t, entity.AxisColumn, ws.Snapshot().Root.Axis)
}

func TestRemove_UnfocusedKeepsFocus(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 3)

	require.NoError(t, uc.Remove(testCtx(), ws, "p1"))

	assert.Equal(t, entity.PaneID("p3"), ws.Focused)
}

func TestRemove_FlattensSameAxisSurvivor(t *testing.T) {
	// Arrange: row[p1, column[p2, row[p3, p4]]]
	uc := newUseCase(t)
	ws := openWorkspace(t, uc)
	_, err := uc.Split(testCtx(), ws, "p1", entity.DirectionRight)
	require.NoError(t, err)
	_, err = uc.Split(testCtx(), ws, "p2", entity.DirectionBottom)
	require.NoError(t, err)
	_, err = uc.Split(testCtx(), ws, "p3", entity.DirectionRight)
	require.NoError(t, err)

	// Act
	require.NoError(t, uc.Remove(testCtx(), ws, "p2"))

	// Assert: row[p1, p3, p4]
	root := ws.Snapshot().Root
	assert.Equal(t, entity.AxisRow, root.Axis)
	require.Len(t, root.Children, 3)
	for _, c := range root.Children {
		assert.True(t, c.IsPane())
	}
	assert.InDelta(t, 0.5, ratioOf(t, ws, "p1"), ratioDelta)
	assert.InDelta(t, 0.25, ratioOf(t, ws, "p3"), ratioDelta)
	assert.InDelta(t, 0.25, ratioOf(t, ws, "p4"), ratioDelta)
	require.NoError(t, ws.Tree.Validate())
}

func TestRemove_LastPaneEmptiesWorkspace(t *testing.T) {
	sessions := mocks.NewMockSessionProvider(t)
	sessions.EXPECT().CreateSession(mock.Anything, entity.PaneID("p1")).Return("s-1", nil).Once()
	sessions.EXPECT().DestroySession(mock.Anything, entity.SessionHandle("s-1")).Return(nil).Once()
	uc := usecase.NewManagePanesUseCase(sequentialIDs(), sessions, nil)
	ws := openWorkspace(t, uc)

	require.NoError(t, uc.Remove(testCtx(), ws, "p1"))

	assert.True(t, ws.Tree.Empty())
	assert.Empty(t, ws.Focused)
	assert.Equal(t, entity.StateNormal, ws.State())
	assert.Nil(t, ws.Snapshot().Root)
}

func TestRemove_DestroyFailureIsNotFatal(t *testing.T) {
	sessions := mocks.NewMockSessionProvider(t)
	sessions.EXPECT().
		CreateSession(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id entity.PaneID) (entity.SessionHandle, error) {
			return entity.SessionHandle("s-" + string(id)), nil
		})
	sessions.EXPECT().DestroySession(mock.Anything, entity.SessionHandle("s-p2")).Return(errors.New("gone")).Once()
	uc := usecase.NewManagePanesUseCase(sequentialIDs(), sessions, nil)
	ws := rowOf(t, uc, 2)

	err := uc.Remove(testCtx(), ws, "p2")

	require.NoError(t, err)
	assert.Equal(t, 1, ws.PaneCount())
}

func TestRemove_PaneNotFound(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 2)
	rev := ws.Revision

	err := uc.Remove(testCtx(), ws, "ghost")

	assert.ErrorIs(t, err, entity.ErrPaneNotFound)
	assert.Equal(t, rev, ws.Revision)
}

func TestRemove_MaximizedPaneReturnsToNormal(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 3)
	require.NoError(t, uc.Maximize(testCtx(), ws, "p1"))
	require.Equal(t, entity.StateMaximized, ws.State())

	require.NoError(t, uc.Remove(testCtx(), ws, "p1"))

	assert.Equal(t, entity.StateNormal, ws.State())
	assert.Empty(t, ws.Maximized)
	assert.Equal(t, entity.PaneID("p2"), ws.Focused)
}

func TestNotifier_OnlyAppliedChangesNotify(t *testing.T) {
	// Arrange
	notifier := mocks.NewMockLayoutNotifier(t)
	var revisions []uint64
	notifier.EXPECT().
		LayoutChanged(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s entity.LayoutSnapshot) {
			revisions = append(revisions, s.Revision)
		}).
		Return()
	uc := usecase.NewManagePanesUseCase(sequentialIDs(), newSessions(t), notifier)
	ws := entity.NewWorkspace("ws", "test")

	// Act
	_, err := uc.Open(testCtx(), ws)
	require.NoError(t, err)
	_, err = uc.Split(testCtx(), ws, "p1", entity.DirectionRight)
	require.NoError(t, err)
	require.NoError(t, uc.Navigate(testCtx(), ws, entity.DirectionRight)) // edge, no-op
	require.NoError(t, uc.Resize(testCtx(), ws, usecase.ResizeGrowVertical))
	require.NoError(t, uc.NavigateSpecific(testCtx(), ws, 9))
	require.NoError(t, uc.NavigateLinear(testCtx(), ws, 1))

	// Assert
	assert.Equal(t, []uint64{1, 2, 3}, revisions)
	assert.Equal(t, uint64(3), ws.Revision)
}

func TestCommit_FailsLoudlyOnCorruptTree(t *testing.T) {
	uc := newUseCase(t)
	ws := rowOf(t, uc, 2)
	n, ok := ws.Tree.FindPane("p1")
	require.True(t, ok)
	ws.Tree.SetRatio(n, 0.9)

	err := uc.Focus(testCtx(), ws, "p1")

	assert.ErrorIs(t, err, entity.ErrInvalidTreeState)
}

func TestNilWorkspace(t *testing.T) {
	uc := newUseCase(t)
	ctx := testCtx()

	_, err := uc.Open(ctx, nil)
	assert.ErrorIs(t, err, entity.ErrNilWorkspace)
	_, err = uc.Split(ctx, nil, "p1", entity.DirectionRight)
	assert.ErrorIs(t, err, entity.ErrNilWorkspace)
	assert.ErrorIs(t, uc.Remove(ctx, nil, "p1"), entity.ErrNilWorkspace)
	assert.ErrorIs(t, uc.Navigate(ctx, nil, entity.DirectionLeft), entity.ErrNilWorkspace)
	assert.ErrorIs(t, uc.NavigateLinear(ctx, nil, 1), entity.ErrNilWorkspace)
	assert.ErrorIs(t, uc.NavigateSpecific(ctx, nil, 0), entity.ErrNilWorkspace)
	assert.ErrorIs(t, uc.Resize(ctx, nil, usecase.ResizeGrowVertical), entity.ErrNilWorkspace)
	assert.ErrorIs(t, uc.Maximize(ctx, nil, ""), entity.ErrNilWorkspace)
	assert.Equal(t, 0, uc.CountPanes(nil))
}

func TestZeroValueWorkspace(t *testing.T) {
	uc := newUseCase(t)
	ctx := testCtx()

	tests := []struct {
		name    string
		run     func(ws *entity.Workspace) error
		wantErr error
	}{
		{"split", func(ws *entity.Workspace) error {
			_, err := uc.Split(ctx, ws, "p1", entity.DirectionRight)
			return err
		}, entity.ErrPaneNotFound},
		{"remove", func(ws *entity.Workspace) error { return uc.Remove(ctx, ws, "p1") }, entity.ErrPaneNotFound},
		{"focus", func(ws *entity.Workspace) error { return uc.Focus(ctx, ws, "p1") }, entity.ErrPaneNotFound},
		{"maximize", func(ws *entity.Workspace) error { return uc.Maximize(ctx, ws, "p1") }, entity.ErrPaneNotFound},
		{"navigate", func(ws *entity.Workspace) error { return uc.Navigate(ctx, ws, entity.DirectionLeft) }, nil},
		{"navigate linear", func(ws *entity.Workspace) error { return uc.NavigateLinear(ctx, ws, 1) }, nil},
		{"navigate specific", func(ws *entity.Workspace) error { return uc.NavigateSpecific(ctx, ws, 0) }, nil},
		{"resize", func(ws *entity.Workspace) error { return uc.Resize(ctx, ws, usecase.ResizeGrowHorizontal) }, nil},
		{"toggle maximize", func(ws *entity.Workspace) error { return uc.ToggleMaximize(ctx, ws) }, nil},
		{"linear order", func(ws *entity.Workspace) error {
			order, err := uc.LinearOrder(ctx, ws)
			assert.Empty(t, order)
			return err
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := &entity.Workspace{ID: "zero"}

			var err error
			require.NotPanics(t, func() { err = tt.run(ws) })

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Zero(t, ws.Revision)
			assert.Zero(t, uc.CountPanes(ws))
		})
	}

	ws := &entity.Workspace{ID: "zero"}
	id, err := uc.Open(ctx, ws)
	require.NoError(t, err)
	assert.Equal(t, ws.Focused, id)
}
