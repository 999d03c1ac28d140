package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// Maximize marks paneID as the only visible pane; an empty id restores the
// normal layout. The maximized pane also takes focus. Whether maximizing makes
// sense with a single pane is the caller's decision.
func (uc *ManagePanesUseCase) Maximize(ctx context.Context, ws *entity.Workspace, paneID entity.PaneID) error {
	log := logging.FromContext(ctx)
	if ws == nil {
		return entity.ErrNilWorkspace
	}

	if paneID == "" {
		if ws.Maximized == "" {
			return nil
		}
		log.Debug().Str("pane_id", string(ws.Maximized)).Msg("restoring layout")
		ws.Maximized = ""
		return uc.commit(ctx, ws)
	}

	if !ws.HasPane(paneID) {
		return fmt.Errorf("maximize %s: %w", paneID, entity.ErrPaneNotFound)
	}
	if ws.Maximized == paneID && ws.Focused == paneID {
		return nil
	}

	ws.SetFocus(paneID)
	ws.Maximized = paneID

	log.Debug().
		Str("pane_id", string(paneID)).
		Int("pane_count", ws.PaneCount()).
		Msg("pane maximized")

	return uc.commit(ctx, ws)
}

// ToggleMaximize restores the layout when a pane is maximized, otherwise
// maximizes the focused pane if it has siblings to hide.
func (uc *ManagePanesUseCase) ToggleMaximize(ctx context.Context, ws *entity.Workspace) error {
	if ws == nil {
		return entity.ErrNilWorkspace
	}
	if ws.State() == entity.StateMaximized {
		return uc.Maximize(ctx, ws, "")
	}
	if ws.PaneCount() < 2 {
		return nil
	}
	return uc.Maximize(ctx, ws, ws.Focused)
}
