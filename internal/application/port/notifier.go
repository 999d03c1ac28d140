package port

import (
	"context"

	"github.com/bnema/tilemux/internal/domain/entity"
)

// LayoutNotifier receives the full layout after every applied workspace change
// so presentation layers can re-render geometry from ratios and axes.
type LayoutNotifier interface {
	LayoutChanged(ctx context.Context, snapshot entity.LayoutSnapshot)
}
