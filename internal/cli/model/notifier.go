package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tilemux/internal/domain/entity"
)

// LayoutMsg carries a layout snapshot into the Bubble Tea update loop.
type LayoutMsg struct {
	Snapshot entity.LayoutSnapshot
}

// ChannelNotifier implements port.LayoutNotifier by queueing snapshots for the
// Bubble Tea program. Only the latest snapshot is kept, so LayoutChanged never
// blocks the goroutine running the pane engine.
type ChannelNotifier struct {
	ch chan entity.LayoutSnapshot
}

// NewChannelNotifier creates a notifier holding at most one pending snapshot.
func NewChannelNotifier() *ChannelNotifier {
	return &ChannelNotifier{ch: make(chan entity.LayoutSnapshot, 1)}
}

// LayoutChanged replaces any pending snapshot with snap.
func (n *ChannelNotifier) LayoutChanged(_ context.Context, snap entity.LayoutSnapshot) {
	for {
		select {
		case n.ch <- snap:
			return
		default:
		}
		select {
		case <-n.ch:
		default:
		}
	}
}

// Wait returns a command that delivers the next snapshot as a LayoutMsg.
func (n *ChannelNotifier) Wait() tea.Cmd {
	return func() tea.Msg {
		return LayoutMsg{Snapshot: <-n.ch}
	}
}
