package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tilemux/internal/domain/entity"
)

// RenderLayout draws the snapshot as nested pane frames filling exactly w x h cells.
// Pane sizes follow entity.SplitLength so the frames match ComputeRects.
func RenderLayout(t *Theme, snap entity.LayoutSnapshot, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	if snap.Root == nil {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, t.Subtle.Render("no panes"))
	}

	r := layoutRenderer{theme: t, snap: snap, index: make(map[entity.PaneID]int)}
	for i, id := range snap.Panes() {
		r.index[id] = i + 1
	}
	if snap.Maximized != "" {
		if n := snap.Root.Find(snap.Maximized); n != nil {
			return r.pane(n, w, h)
		}
	}
	return r.node(snap.Root, w, h)
}

type layoutRenderer struct {
	theme *Theme
	snap  entity.LayoutSnapshot
	index map[entity.PaneID]int
}

func (r layoutRenderer) node(n *entity.SnapshotNode, w, h int) string {
	if n.IsPane() {
		return r.pane(n, w, h)
	}

	ratios := make([]float64, len(n.Children))
	for i, c := range n.Children {
		ratios[i] = c.Ratio
	}

	parts := make([]string, 0, len(n.Children))
	if n.Axis == entity.AxisRow {
		widths := entity.SplitLength(w, ratios)
		for i, c := range n.Children {
			if widths[i] > 0 {
				parts = append(parts, r.node(c, widths[i], h))
			}
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	heights := entity.SplitLength(h, ratios)
	for i, c := range n.Children {
		if heights[i] > 0 {
			parts = append(parts, r.node(c, w, heights[i]))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r layoutRenderer) pane(n *entity.SnapshotNode, w, h int) string {
	if w < 3 || h < 3 {
		return blank(w, h)
	}

	style := r.theme.Pane
	title := r.theme.Subtle
	switch {
	case n.PaneID == r.snap.Maximized:
		style = r.theme.PaneMaximized
		title = r.theme.Highlight
	case n.PaneID == r.snap.Focused:
		style = r.theme.PaneFocused
		title = r.theme.Highlight
	}

	inner := w - 2
	lines := []string{
		title.Render(truncate(fmt.Sprintf("%d %s", r.index[n.PaneID], n.PaneID), inner)),
	}
	if n.Session != "" {
		lines = append(lines, truncate(n.Session.Short(), inner))
	}
	if n.PaneID == r.snap.Maximized {
		lines = append(lines, truncate(IconMaximize+" maximized", inner))
	}
	if len(lines) > h-2 {
		lines = lines[:h-2]
	}

	return style.
		Width(inner).
		Height(h - 2).
		Render(strings.Join(lines, "\n"))
}

func blank(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	row := strings.Repeat(" ", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) > n-1 {
		runes = runes[:n-1]
	}
	return string(runes) + "…"
}
