package port

import (
	"context"

	"github.com/bnema/tilemux/internal/domain/entity"
)

// SessionProvider creates and tears down the terminal session owned by a pane.
// Each method is called exactly once per pane creation or removal.
type SessionProvider interface {
	CreateSession(ctx context.Context, paneID entity.PaneID) (entity.SessionHandle, error)
	DestroySession(ctx context.Context, handle entity.SessionHandle) error
}
