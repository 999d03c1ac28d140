package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// ResizeDirection indicates the axis and sense of a resize.
type ResizeDirection string

const (
	ResizeGrowVertical     ResizeDirection = "grow_vertical"
	ResizeShrinkVertical   ResizeDirection = "shrink_vertical"
	ResizeGrowHorizontal   ResizeDirection = "grow_horizontal"
	ResizeShrinkHorizontal ResizeDirection = "shrink_horizontal"
)

// Axis returns the container axis the resize acts on: horizontal resizes
// change widths inside rows, vertical ones change heights inside columns.
func (d ResizeDirection) Axis() (entity.Axis, bool) {
	switch d {
	case ResizeGrowHorizontal, ResizeShrinkHorizontal:
		return entity.AxisRow, true
	case ResizeGrowVertical, ResizeShrinkVertical:
		return entity.AxisColumn, true
	default:
		return 0, false
	}
}

// Grow reports whether the resize enlarges the focused branch.
func (d ResizeDirection) Grow() bool {
	return d == ResizeGrowHorizontal || d == ResizeGrowVertical
}

// ResizeSettings controls how far one resize step moves and how small a pane may get.
type ResizeSettings struct {
	StepPercent    float64
	MinPanePercent float64
}

const (
	defaultResizeStepPercent = 5.0
	defaultMinPanePercent    = 5.0
)

// DefaultResizeSettings returns a 5% step with a 5% floor.
func DefaultResizeSettings() ResizeSettings {
	return ResizeSettings{
		StepPercent:    defaultResizeStepPercent,
		MinPanePercent: defaultMinPanePercent,
	}
}

// SetResizeSettings swaps the resize settings. Safe to call from a config watcher.
// Non-positive values fall back to the defaults.
func (uc *ManagePanesUseCase) SetResizeSettings(s ResizeSettings) {
	if s.StepPercent <= 0 {
		s.StepPercent = defaultResizeStepPercent
	}
	if s.MinPanePercent <= 0 {
		s.MinPanePercent = defaultMinPanePercent
	}
	uc.mu.Lock()
	uc.resize = s
	uc.mu.Unlock()
}

// ResizeSettings returns the active resize settings.
func (uc *ManagePanesUseCase) ResizeSettings() ResizeSettings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.resize
}

// Resize grows or shrinks the branch holding the focused pane inside the
// nearest ancestor container running along dir's axis.
func (uc *ManagePanesUseCase) Resize(ctx context.Context, ws *entity.Workspace, dir ResizeDirection) error {
	log := logging.FromContext(ctx)
	if ws == nil {
		return entity.ErrNilWorkspace
	}
	axis, ok := dir.Axis()
	if !ok {
		return fmt.Errorf("invalid resize direction %q", dir)
	}

	tree := ws.Tree
	focused, ok := tree.FindPane(ws.Focused)
	if !ok {
		return nil
	}

	branch, container := findNearestContainerForAxis(tree, focused, axis)
	if container == entity.NoNode {
		log.Debug().Str("direction", string(dir)).Msg("no container on resize axis")
		return nil
	}

	settings := uc.ResizeSettings()
	children := tree.Children(container)
	ratios := make([]float64, len(children))
	for i, c := range children {
		ratios[i] = tree.Ratio(c)
	}
	index := tree.IndexOf(container, branch)

	step := settings.StepPercent / 100.0
	if !dir.Grow() {
		step = -step
	}
	oldRatio := ratios[index]
	if !resizeRatios(ratios, index, step, settings.MinPanePercent/100.0) {
		log.Debug().
			Str("direction", string(dir)).
			Float64("ratio", oldRatio).
			Msg("resize has no room")
		return nil
	}

	for i, c := range children {
		tree.SetRatio(c, ratios[i])
	}
	tree.Normalize(container)

	log.Debug().
		Str("direction", string(dir)).
		Float64("old_ratio", oldRatio).
		Float64("new_ratio", tree.Ratio(branch)).
		Msg("pane resized")

	return uc.commit(ctx, ws)
}

// findNearestContainerForAxis walks up from n and returns the first container
// with the given axis along with the child of it that leads back to n.
func findNearestContainerForAxis(tree *entity.Tree, n entity.NodeID, axis entity.Axis) (branch, container entity.NodeID) {
	for parent := tree.Parent(n); parent != entity.NoNode; n, parent = parent, tree.Parent(parent) {
		if tree.Axis(parent) == axis {
			return n, parent
		}
	}
	return entity.NoNode, entity.NoNode
}

// resizeRatios moves ratios[i] by delta while keeping every entry at or above
// floor, redistributing the difference over the other entries in proportion
// to their size. Returns false when nothing can move.
func resizeRatios(ratios []float64, i int, delta, floor float64) bool {
	n := len(ratios)
	if n < 2 || i < 0 || i >= n || delta == 0 {
		return false
	}
	if limit := 1 / float64(n); floor > limit {
		floor = limit
	}

	current := ratios[i]
	var target float64
	if delta > 0 {
		// Siblings already under the floor give nothing, so growth is capped
		// by what the others hold above it.
		spare := 0.0
		for j, r := range ratios {
			if j != i && r > floor {
				spare += r - floor
			}
		}
		target = clampFloat64(current+delta, 0, current+spare)
	} else {
		target = clampFloat64(current+delta, floor, 1)
	}
	change := target - current
	if (delta > 0 && change < entity.RatioTolerance) || (delta < 0 && change > -entity.RatioTolerance) {
		return false
	}

	if change > 0 {
		change -= takeProportionally(ratios, i, change, floor)
	} else {
		giveProportionally(ratios, i, -change)
	}
	ratios[i] = current + change
	return true
}

// takeProportionally removes amount from every entry except skip, in
// proportion to their size, pinning entries that would drop below floor and
// spreading the rest over the remaining ones. Returns what could not be taken.
func takeProportionally(ratios []float64, skip int, amount, floor float64) float64 {
	active := make([]int, 0, len(ratios)-1)
	for j, r := range ratios {
		if j != skip && r > floor {
			active = append(active, j)
		}
	}

	for amount > entity.RatioTolerance && len(active) > 0 {
		sum := 0.0
		for _, j := range active {
			sum += ratios[j]
		}
		var next []int
		taken := 0.0
		for _, j := range active {
			if ratios[j]-amount*ratios[j]/sum <= floor {
				taken += ratios[j] - floor
				ratios[j] = floor
				continue
			}
			next = append(next, j)
		}
		if len(next) == len(active) {
			for _, j := range active {
				ratios[j] -= amount * ratios[j] / sum
			}
			return 0
		}
		amount -= taken
		active = next
	}
	if amount < 0 {
		return 0
	}
	return amount
}

// giveProportionally adds amount to every entry except skip, in proportion to their size.
func giveProportionally(ratios []float64, skip int, amount float64) {
	sum := 0.0
	for j, r := range ratios {
		if j != skip {
			sum += r
		}
	}
	for j := range ratios {
		if j == skip {
			continue
		}
		if sum <= 0 {
			ratios[j] += amount / float64(len(ratios)-1)
			continue
		}
		ratios[j] += amount * ratios[j] / sum
	}
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
