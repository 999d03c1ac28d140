package entity

import (
	"errors"
	"time"
)

// SessionRecord is one ledger entry: a terminal session created for a pane,
// and when it was torn down.
type SessionRecord struct {
	Handle      SessionHandle
	PaneID      PaneID
	WorkspaceID WorkspaceID
	CreatedAt   time.Time
	DestroyedAt *time.Time
}

// ShortHandle returns the last 8 characters of the handle for display.
func (s *SessionRecord) ShortHandle() string {
	return s.Handle.Short()
}

// IsLive reports whether the session has not been destroyed yet.
func (s *SessionRecord) IsLive() bool {
	return s != nil && s.DestroyedAt == nil
}

// End marks the session destroyed at the given time.
func (s *SessionRecord) End(destroyedAt time.Time) {
	destroyedAt = destroyedAt.UTC()
	s.DestroyedAt = &destroyedAt
}

// Validate checks the fields required to persist the record.
func (s *SessionRecord) Validate() error {
	if s == nil || s.Handle == "" || s.PaneID == "" || s.CreatedAt.IsZero() {
		return ErrInvalidSession
	}
	return nil
}

// ErrInvalidSession is returned when a session record is incomplete.
var ErrInvalidSession = errors.New("invalid session record")
