package entity

import "math"

// PaneRect represents a pane's screen position and size in cells.
type PaneRect struct {
	PaneID PaneID
	X, Y   int // Top-left position relative to the workspace
	W, H   int // Width and height
}

// Center returns the center point of the rectangle.
func (r PaneRect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// SplitLength divides total cells between children according to ratios.
// Boundaries are rounded from cumulative ratios so lengths always add up to total.
func SplitLength(total int, ratios []float64) []int {
	out := make([]int, len(ratios))
	if len(ratios) == 0 {
		return out
	}
	acc := 0.0
	prev := 0
	for i, r := range ratios {
		acc += r
		edge := int(math.Round(acc * float64(total)))
		if i == len(ratios)-1 || edge > total {
			edge = total
		}
		if edge < prev {
			edge = prev
		}
		out[i] = edge - prev
		prev = edge
	}
	return out
}

// ComputeRects lays the snapshot out on a w x h grid. When a pane is
// maximized it is the only rectangle returned and fills the whole area.
func ComputeRects(s LayoutSnapshot, w, h int) []PaneRect {
	if s.Root == nil {
		return nil
	}
	if s.Maximized != "" {
		return []PaneRect{{PaneID: s.Maximized, W: w, H: h}}
	}
	var out []PaneRect
	var place func(n *SnapshotNode, x, y, w, h int)
	place = func(n *SnapshotNode, x, y, w, h int) {
		if n.IsPane() {
			out = append(out, PaneRect{PaneID: n.PaneID, X: x, Y: y, W: w, H: h})
			return
		}
		ratios := make([]float64, len(n.Children))
		for i, c := range n.Children {
			ratios[i] = c.Ratio
		}
		if n.Axis == AxisRow {
			widths := SplitLength(w, ratios)
			for i, c := range n.Children {
				place(c, x, y, widths[i], h)
				x += widths[i]
			}
			return
		}
		heights := SplitLength(h, ratios)
		for i, c := range n.Children {
			place(c, x, y, w, heights[i])
			y += heights[i]
		}
	}
	place(s.Root, 0, 0, w, h)
	return out
}

// Span returns the interval a node covers along axis inside the unit square
// occupied by the whole tree.
func (t *Tree) Span(id NodeID, axis Axis) (start, end float64) {
	var path []NodeID
	for n := id; n != NoNode; n = t.Parent(n) {
		path = append(path, n)
	}
	start, end = 0, 1
	for i := len(path) - 1; i > 0; i-- {
		parent, child := path[i], path[i-1]
		if t.Axis(parent) != axis {
			continue
		}
		length := end - start
		offset := 0.0
		for _, c := range t.nodes[parent].children {
			if c == child {
				break
			}
			offset += t.nodes[c].ratio
		}
		start += offset * length
		end = start + t.nodes[child].ratio*length
	}
	return start, end
}
