package entity

import "errors"

var (
	// ErrPaneNotFound is returned when an operation targets a pane absent from the tree.
	ErrPaneNotFound = errors.New("pane not found")
	// ErrInvalidTreeState signals a broken tree invariant. It is never repaired silently.
	ErrInvalidTreeState = errors.New("invalid tree state")
	// ErrWorkspaceNotEmpty is returned when opening a workspace that already has panes.
	ErrWorkspaceNotEmpty = errors.New("workspace is not empty")
	// ErrNilWorkspace is returned when an operation receives no workspace.
	ErrNilWorkspace = errors.New("workspace is required")
)
