package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// NavigateLinear moves focus delta steps through the linear pane order,
// wrapping around at both ends.
func (uc *ManagePanesUseCase) NavigateLinear(ctx context.Context, ws *entity.Workspace, delta int) error {
	log := logging.FromContext(ctx)
	if ws == nil {
		return entity.ErrNilWorkspace
	}

	order, err := uc.LinearOrder(ctx, ws)
	if err != nil {
		return err
	}
	n := len(order)
	if n <= 1 || delta%n == 0 {
		return nil
	}

	current := indexOf(order, ws.Focused)
	if current < 0 {
		current = 0
	}
	next := (current + delta%n + n) % n

	log.Debug().
		Int("delta", delta).
		Str("from", string(ws.Focused)).
		Str("to", string(order[next])).
		Msg("linear navigation")

	return uc.focus(ctx, ws, order[next])
}

// NavigateSpecific focuses the pane at index in the linear order.
// An out-of-range index is ignored.
func (uc *ManagePanesUseCase) NavigateSpecific(ctx context.Context, ws *entity.Workspace, index int) error {
	if ws == nil {
		return entity.ErrNilWorkspace
	}
	order, err := uc.LinearOrder(ctx, ws)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(order) {
		logging.FromContext(ctx).Debug().
			Int("index", index).
			Int("pane_count", len(order)).
			Msg("pane index out of range, ignoring")
		return nil
	}
	return uc.focus(ctx, ws, order[index])
}

// Navigate moves focus to the pane adjacent to the focused one in direction dir.
// Nothing happens when no pane lies that way.
func (uc *ManagePanesUseCase) Navigate(ctx context.Context, ws *entity.Workspace, dir entity.Direction) error {
	log := logging.FromContext(ctx)
	if ws == nil {
		return entity.ErrNilWorkspace
	}
	if !dir.Valid() {
		return fmt.Errorf("invalid navigation direction %q", dir)
	}

	tree := ws.Tree
	origin, ok := tree.FindPane(ws.Focused)
	if !ok {
		return nil
	}

	target := findAdjacentPane(tree, origin, dir)
	if target == entity.NoNode {
		log.Debug().
			Str("from", string(ws.Focused)).
			Str("direction", string(dir)).
			Msg("no pane in direction")
		return nil
	}

	log.Debug().
		Str("from", string(ws.Focused)).
		Str("to", string(tree.Pane(target).ID)).
		Str("direction", string(dir)).
		Msg("directional navigation")

	return uc.focus(ctx, ws, tree.Pane(target).ID)
}

// Focus moves the focus pointer to paneID.
func (uc *ManagePanesUseCase) Focus(ctx context.Context, ws *entity.Workspace, paneID entity.PaneID) error {
	if ws == nil {
		return entity.ErrNilWorkspace
	}
	if !ws.HasPane(paneID) {
		return fmt.Errorf("focus %s: %w", paneID, entity.ErrPaneNotFound)
	}
	return uc.focus(ctx, ws, paneID)
}

func (uc *ManagePanesUseCase) focus(ctx context.Context, ws *entity.Workspace, paneID entity.PaneID) error {
	if ws.Focused == paneID {
		return nil
	}
	ws.SetFocus(paneID)
	return uc.commit(ctx, ws)
}

// findAdjacentPane walks up from origin to the first ancestor running along
// dir's axis where origin's branch is not already at the edge, steps to the
// neighbouring sibling and descends to a leaf.
func findAdjacentPane(tree *entity.Tree, origin entity.NodeID, dir entity.Direction) entity.NodeID {
	axis := dir.Axis()
	step := -1
	if dir.Forward() {
		step = 1
	}

	child := origin
	for parent := tree.Parent(child); parent != entity.NoNode; child, parent = parent, tree.Parent(parent) {
		if tree.Axis(parent) != axis {
			continue
		}
		i := tree.IndexOf(parent, child) + step
		if i < 0 || i >= tree.ChildCount(parent) {
			continue
		}
		return findLeafInDirection(tree, tree.ChildAt(parent, i), origin, dir)
	}
	return entity.NoNode
}

// findLeafInDirection descends from n toward the edge we enter through.
// Along dir's axis it takes the child nearest that edge; across it, the child
// whose span contains the origin's center, else the first child.
func findLeafInDirection(tree *entity.Tree, n, origin entity.NodeID, dir entity.Direction) entity.NodeID {
	axis := dir.Axis()
	cross := perpendicular(axis)
	start, end := tree.Span(origin, cross)
	center := (start + end) / 2

	for tree.IsContainer(n) {
		children := tree.Children(n)
		if tree.Axis(n) == axis {
			if dir.Forward() {
				n = children[0]
			} else {
				n = children[len(children)-1]
			}
			continue
		}
		next := children[0]
		for _, c := range children {
			s, e := tree.Span(c, cross)
			if center >= s && center < e {
				next = c
				break
			}
		}
		n = next
	}
	return n
}

func perpendicular(a entity.Axis) entity.Axis {
	if a == entity.AxisRow {
		return entity.AxisColumn
	}
	return entity.AxisRow
}

func indexOf(order []entity.PaneID, id entity.PaneID) int {
	for i, p := range order {
		if p == id {
			return i
		}
	}
	return -1
}
