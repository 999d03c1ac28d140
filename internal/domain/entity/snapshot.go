package entity

// SnapshotNode is a read-only copy of one tree node.
// Leaves carry a PaneID; containers carry an Axis and Children.
type SnapshotNode struct {
	PaneID   PaneID
	Session  SessionHandle
	Axis     Axis
	Ratio    float64
	Children []*SnapshotNode
}

// IsPane reports whether the node is a leaf.
func (n *SnapshotNode) IsPane() bool {
	return n != nil && n.PaneID != ""
}

// Walk visits the node and its descendants depth-first. Returns early if fn returns false.
func (n *SnapshotNode) Walk(fn func(*SnapshotNode) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the leaf holding the pane, or nil.
func (n *SnapshotNode) Find(id PaneID) *SnapshotNode {
	var found *SnapshotNode
	n.Walk(func(c *SnapshotNode) bool {
		if c.PaneID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// LayoutSnapshot is what presentation layers receive after each change.
type LayoutSnapshot struct {
	WorkspaceID WorkspaceID
	Root        *SnapshotNode // nil for an empty workspace
	Focused     PaneID
	Maximized   PaneID
	PaneCount   int
	Revision    uint64
}

// Panes returns the snapshot's panes in linear order.
func (s LayoutSnapshot) Panes() []PaneID {
	var out []PaneID
	s.Root.Walk(func(n *SnapshotNode) bool {
		if n.IsPane() {
			out = append(out, n.PaneID)
		}
		return true
	})
	return out
}

func (t *Tree) snapshot(id NodeID) *SnapshotNode {
	n := t.nodes[id]
	out := &SnapshotNode{Ratio: n.ratio}
	if n.pane != nil {
		out.PaneID = n.pane.ID
		out.Session = n.pane.Session
		return out
	}
	out.Axis = n.axis
	out.Children = make([]*SnapshotNode, 0, len(n.children))
	for _, c := range n.children {
		out.Children = append(out.Children, t.snapshot(c))
	}
	return out
}
