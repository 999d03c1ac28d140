package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/tilemux/internal/application/port"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ManagePanesUseCase handles pane tree operations for workspaces.
//
// It keeps no per-workspace state: every call receives the workspace it
// mutates, so independent workspaces can be driven from different goroutines.
// A single workspace must only be mutated by one caller at a time.
type ManagePanesUseCase struct {
	idGenerator IDGenerator
	sessions    port.SessionProvider
	notifier    port.LayoutNotifier

	mu     sync.RWMutex
	resize ResizeSettings
}

// NewManagePanesUseCase creates a new pane management use case.
// notifier may be nil.
func NewManagePanesUseCase(
	idGenerator IDGenerator,
	sessions port.SessionProvider,
	notifier port.LayoutNotifier,
) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		idGenerator: idGenerator,
		sessions:    sessions,
		notifier:    notifier,
		resize:      DefaultResizeSettings(),
	}
}

// Open creates the first pane of an empty workspace and focuses it.
func (uc *ManagePanesUseCase) Open(ctx context.Context, ws *entity.Workspace) (entity.PaneID, error) {
	log := logging.FromContext(ctx)
	if ws == nil {
		return "", entity.ErrNilWorkspace
	}
	if ws.Tree == nil {
		ws.Tree = entity.NewTree()
	}
	if !ws.Tree.Empty() {
		return "", fmt.Errorf("open workspace %s: %w", ws.ID, entity.ErrWorkspaceNotEmpty)
	}

	pane, err := uc.newPane(ctx, ws)
	if err != nil {
		return "", err
	}
	ws.Tree.SetRoot(ws.Tree.NewPaneNode(pane))
	ws.SetFocus(pane.ID)

	if err := uc.commit(ctx, ws); err != nil {
		return "", err
	}

	log.Info().
		Str("workspace_id", string(ws.ID)).
		Str("pane_id", string(pane.ID)).
		Msg("workspace opened")

	return pane.ID, nil
}

// Split creates a new pane next to target on the side given by dir and focuses it.
//
// When the target's container already runs along the split axis the new pane
// joins it and every sibling gives up an equal share; otherwise the target's
// slot is replaced by a new container holding target and new pane at 50/50.
func (uc *ManagePanesUseCase) Split(
	ctx context.Context,
	ws *entity.Workspace,
	target entity.PaneID,
	dir entity.Direction,
) (entity.PaneID, error) {
	log := logging.FromContext(ctx)
	if ws == nil {
		return "", entity.ErrNilWorkspace
	}
	if !dir.Valid() {
		return "", fmt.Errorf("invalid split direction %q", dir)
	}

	log.Debug().
		Str("target_id", string(target)).
		Str("direction", string(dir)).
		Msg("splitting pane")

	tree := ws.Tree
	targetNode, ok := tree.FindPane(target)
	if !ok {
		return "", fmt.Errorf("split %s: %w", target, entity.ErrPaneNotFound)
	}

	// The session exists before the tree changes, so a provider failure leaves
	// the pre-split layout untouched.
	pane, err := uc.newPane(ctx, ws)
	if err != nil {
		return "", err
	}
	newNode := tree.NewPaneNode(pane)

	axis := dir.Axis()
	parent := tree.Parent(targetNode)
	if parent != entity.NoNode && tree.Axis(parent) == axis {
		n := tree.ChildCount(parent)
		scale := float64(n) / float64(n+1)
		for _, c := range tree.Children(parent) {
			tree.SetRatio(c, tree.Ratio(c)*scale)
		}
		i := tree.IndexOf(parent, targetNode)
		if dir.Forward() {
			i++
		}
		tree.InsertChild(parent, i, newNode)
		tree.SetRatio(newNode, 1/float64(n+1))
		tree.Normalize(parent)
	} else {
		container := tree.NewContainer(axis)
		tree.Replace(targetNode, container)
		first, second := newNode, targetNode
		if dir.Forward() {
			first, second = targetNode, newNode
		}
		tree.InsertChild(container, 0, first)
		tree.InsertChild(container, 1, second)
		tree.SetRatio(first, 0.5)
		tree.SetRatio(second, 0.5)
	}

	ws.SetFocus(pane.ID)
	if err := uc.commit(ctx, ws); err != nil {
		return "", err
	}

	log.Info().
		Str("new_pane_id", string(pane.ID)).
		Str("target_id", string(target)).
		Str("direction", string(dir)).
		Int("pane_count", tree.PaneCount()).
		Msg("pane split completed")

	return pane.ID, nil
}

// Remove destroys target's session and takes it out of the tree, collapsing
// its container when a single child would remain.
func (uc *ManagePanesUseCase) Remove(ctx context.Context, ws *entity.Workspace, target entity.PaneID) error {
	log := logging.FromContext(ctx)
	if ws == nil {
		return entity.ErrNilWorkspace
	}
	log.Debug().Str("pane_id", string(target)).Msg("removing pane")

	tree := ws.Tree
	node, ok := tree.FindPane(target)
	if !ok {
		return fmt.Errorf("remove %s: %w", target, entity.ErrPaneNotFound)
	}
	pane := tree.Pane(node)
	parent := tree.Parent(node)
	successor := uc.successor(tree, node)

	uc.destroySession(ctx, pane)

	if parent == entity.NoNode {
		tree.SetRoot(entity.NoNode)
		tree.Free(node)
		ws.Focused = ""
		ws.Maximized = ""
		if err := uc.commit(ctx, ws); err != nil {
			return err
		}
		log.Info().Str("pane_id", string(target)).Msg("last pane removed, workspace empty")
		return nil
	}

	tree.RemoveChild(parent, node)
	tree.Free(node)
	collapsed := tree.ChildCount(parent) == 1
	if collapsed {
		collapse(tree, parent)
	} else {
		tree.Normalize(parent)
	}

	if ws.Maximized == target {
		ws.Maximized = ""
	}
	if ws.Focused == target {
		ws.SetFocus(successor)
	}

	if err := uc.commit(ctx, ws); err != nil {
		return err
	}

	log.Info().
		Str("pane_id", string(target)).
		Str("focused", string(ws.Focused)).
		Bool("collapsed", collapsed).
		Int("pane_count", tree.PaneCount()).
		Msg("pane removed")

	return nil
}

// successor picks who inherits focus when node goes away: the first pane of the
// next sibling subtree, else the last pane of the previous one.
func (*ManagePanesUseCase) successor(tree *entity.Tree, node entity.NodeID) entity.PaneID {
	parent := tree.Parent(node)
	if parent == entity.NoNode {
		return ""
	}
	i := tree.IndexOf(parent, node)
	pick := entity.NoNode
	switch {
	case i+1 < tree.ChildCount(parent):
		pick = tree.FirstPane(tree.ChildAt(parent, i+1))
	case i > 0:
		pick = tree.LastPane(tree.ChildAt(parent, i-1))
	}
	if p := tree.Pane(pick); p != nil {
		return p.ID
	}
	return ""
}

// collapse removes a container left with one child. The survivor takes the
// container's slot and ratio; a surviving container on the same axis as its new
// parent is flattened into it.
func collapse(tree *entity.Tree, container entity.NodeID) {
	survivor := tree.ChildAt(container, 0)
	slotParent := tree.Parent(container)
	tree.RemoveChild(container, survivor)
	tree.Replace(container, survivor)
	tree.Free(container)

	if slotParent != entity.NoNode && tree.IsContainer(survivor) && tree.Axis(survivor) == tree.Axis(slotParent) {
		flatten(tree, slotParent, survivor)
	}
}

// flatten splices child's children into parent in child's position, scaling
// their ratios by child's share.
func flatten(tree *entity.Tree, parent, child entity.NodeID) {
	share := tree.Ratio(child)
	grandchildren := tree.Children(child)
	i := tree.RemoveChild(parent, child)
	for k, g := range grandchildren {
		tree.SetRatio(g, tree.Ratio(g)*share)
		tree.InsertChild(parent, i+k, g)
	}
	tree.Free(child)
	tree.Normalize(parent)
}

// CountPanes returns the number of panes in a workspace.
func (uc *ManagePanesUseCase) CountPanes(ws *entity.Workspace) int {
	if ws == nil {
		return 0
	}
	return ws.PaneCount()
}

// LinearOrder returns the workspace panes in depth-first order.
func (uc *ManagePanesUseCase) LinearOrder(ctx context.Context, ws *entity.Workspace) ([]entity.PaneID, error) {
	if ws == nil {
		return nil, entity.ErrNilWorkspace
	}
	order, err := ws.Tree.LinearOrder()
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("workspace_id", string(ws.ID)).Msg("pane tree is corrupt")
		return nil, err
	}
	return order, nil
}

func (uc *ManagePanesUseCase) newPane(ctx context.Context, ws *entity.Workspace) (*entity.Pane, error) {
	id := entity.PaneID(uc.idGenerator())
	if ws.HasPane(id) {
		return nil, fmt.Errorf("pane id %s already in use", id)
	}
	session, err := uc.sessions.CreateSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("create session for pane %s: %w", id, err)
	}
	return entity.NewPane(id, session), nil
}

// destroySession is fire-and-forget: a failing teardown never blocks removal.
func (uc *ManagePanesUseCase) destroySession(ctx context.Context, pane *entity.Pane) {
	if err := uc.sessions.DestroySession(ctx, pane.Session); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("pane_id", string(pane.ID)).
			Str("session", string(pane.Session)).
			Msg("failed to destroy session")
	}
}

// commit verifies the tree, bumps the revision and notifies listeners.
// A broken invariant is reported, never repaired.
func (uc *ManagePanesUseCase) commit(ctx context.Context, ws *entity.Workspace) error {
	if err := ws.Tree.Validate(); err != nil {
		logging.FromContext(ctx).Error().
			Err(err).
			Str("workspace_id", string(ws.ID)).
			Msg("pane tree invariant violated")
		return err
	}
	ws.Touch()
	if uc.notifier != nil {
		uc.notifier.LayoutChanged(ctx, ws.Snapshot())
	}
	return nil
}
