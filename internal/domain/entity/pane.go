// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "time"

// PaneID uniquely identifies a pane within a workspace.
type PaneID string

// SessionHandle identifies the terminal session owned by a pane.
// The session provider decides what the handle points to.
type SessionHandle string

// Short returns the last 8 characters of the handle for display.
func (h SessionHandle) Short() string {
	if len(h) < 8 {
		return string(h)
	}
	return string(h[len(h)-8:])
}

// Axis indicates how a container arranges its children.
type Axis int

const (
	AxisRow    Axis = iota // Children side by side, left/right adjacency
	AxisColumn             // Children stacked, top/bottom adjacency
)

func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Direction is a compass direction used for splitting and navigation.
type Direction string

const (
	DirectionLeft   Direction = "left"
	DirectionRight  Direction = "right"
	DirectionTop    Direction = "top"
	DirectionBottom Direction = "bottom"
)

// Axis returns the container axis a direction moves along.
func (d Direction) Axis() Axis {
	if d == DirectionTop || d == DirectionBottom {
		return AxisColumn
	}
	return AxisRow
}

// Forward reports whether the direction points toward the end of a container
// (right or bottom).
func (d Direction) Forward() bool {
	return d == DirectionRight || d == DirectionBottom
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionLeft, DirectionRight, DirectionTop, DirectionBottom:
		return true
	default:
		return false
	}
}

// Pane is a leaf of the layout tree hosting one terminal session.
type Pane struct {
	ID        PaneID
	Session   SessionHandle
	CreatedAt time.Time
}

// NewPane creates a new pane bound to a session.
func NewPane(id PaneID, session SessionHandle) *Pane {
	return &Pane{
		ID:        id,
		Session:   session,
		CreatedAt: time.Now(),
	}
}
