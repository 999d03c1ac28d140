package entity

import "time"

// WorkspaceID uniquely identifies a workspace.
type WorkspaceID string

// WindowState is the presentation state of a workspace.
type WindowState int

const (
	StateNormal    WindowState = iota // Every pane visible
	StateMaximized                    // Only the maximized pane visible
)

func (s WindowState) String() string {
	if s == StateMaximized {
		return "maximized"
	}
	return "normal"
}

// Workspace is one split tab: a pane tree, the focus pointer and the
// maximize state. Maximize is presentation-only and kept outside the tree.
type Workspace struct {
	ID        WorkspaceID
	Name      string
	Tree      *Tree
	Focused   PaneID // Empty iff the tree is empty
	Maximized PaneID // Empty means StateNormal
	Revision  uint64 // Bumped on every applied change
	CreatedAt time.Time
}

// NewWorkspace creates an empty workspace.
func NewWorkspace(id WorkspaceID, name string) *Workspace {
	return &Workspace{
		ID:        id,
		Name:      name,
		Tree:      NewTree(),
		CreatedAt: time.Now(),
	}
}

// PaneCount returns the number of panes in the workspace.
func (w *Workspace) PaneCount() int {
	if w.Tree == nil {
		return 0
	}
	return w.Tree.PaneCount()
}

// State returns Normal or Maximized.
func (w *Workspace) State() WindowState {
	if w.Maximized != "" {
		return StateMaximized
	}
	return StateNormal
}

// HasPane reports whether the pane lives in this workspace.
func (w *Workspace) HasPane(id PaneID) bool {
	if w.Tree == nil {
		return false
	}
	_, ok := w.Tree.FindPane(id)
	return ok
}

// FocusedPane returns the focused pane, or nil for an empty workspace.
func (w *Workspace) FocusedPane() *Pane {
	if w.Tree == nil {
		return nil
	}
	n, ok := w.Tree.FindPane(w.Focused)
	if !ok {
		return nil
	}
	return w.Tree.Pane(n)
}

// SetFocus moves the focus pointer. Focusing a pane other than the maximized
// one returns the workspace to StateNormal.
func (w *Workspace) SetFocus(id PaneID) {
	w.Focused = id
	if w.Maximized != "" && w.Maximized != id {
		w.Maximized = ""
	}
}

// Touch records an applied change.
func (w *Workspace) Touch() {
	w.Revision++
}

// Snapshot returns an immutable copy of the workspace layout.
func (w *Workspace) Snapshot() LayoutSnapshot {
	s := LayoutSnapshot{
		WorkspaceID: w.ID,
		Focused:     w.Focused,
		Maximized:   w.Maximized,
		Revision:    w.Revision,
	}
	if w.Tree != nil && !w.Tree.Empty() {
		s.Root = w.Tree.snapshot(w.Tree.Root())
		s.PaneCount = w.Tree.PaneCount()
	}
	return s
}
