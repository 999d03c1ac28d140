// Package session provides port.SessionProvider implementations.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/tilemux/internal/application/port"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// ErrUnknownSession is returned when destroying a handle that is not live.
var ErrUnknownSession = errors.New("unknown session")

// MemoryProvider hands out UUID handles and tracks which are live. It stands
// in for a real PTY backend in the playground and in tests.
type MemoryProvider struct {
	mu    sync.Mutex
	live  map[entity.SessionHandle]entity.PaneID
	newID func() string
}

var _ port.SessionProvider = (*MemoryProvider)(nil)

// NewMemoryProvider creates an empty provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		live:  make(map[entity.SessionHandle]entity.PaneID),
		newID: uuid.NewString,
	}
}

// CreateSession registers a new live session for paneID.
func (p *MemoryProvider) CreateSession(ctx context.Context, paneID entity.PaneID) (entity.SessionHandle, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	handle := entity.SessionHandle(p.newID())

	p.mu.Lock()
	p.live[handle] = paneID
	p.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("pane_id", string(paneID)).
		Str("session", string(handle)).
		Msg("session created")
	return handle, nil
}

// DestroySession forgets a live session. Destroying twice is an error.
func (p *MemoryProvider) DestroySession(ctx context.Context, handle entity.SessionHandle) error {
	p.mu.Lock()
	paneID, ok := p.live[handle]
	delete(p.live, handle)
	p.mu.Unlock()

	if !ok {
		return fmt.Errorf("destroy %s: %w", handle, ErrUnknownSession)
	}
	logging.FromContext(ctx).Debug().
		Str("pane_id", string(paneID)).
		Str("session", string(handle)).
		Msg("session destroyed")
	return nil
}

// Live returns the number of live sessions.
func (p *MemoryProvider) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}

// Owner returns the pane a live session belongs to.
func (p *MemoryProvider) Owner(handle entity.SessionHandle) (entity.PaneID, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, ok := p.live[handle]
	return id, ok
}
