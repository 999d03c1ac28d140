package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/tilemux/internal/domain/entity"
)

// SessionsCLIRenderer renders non-interactive output for `tilemux sessions`.
type SessionsCLIRenderer struct {
	theme *Theme
	now   func() time.Time
}

func NewSessionsCLIRenderer(theme *Theme) *SessionsCLIRenderer {
	return &SessionsCLIRenderer{theme: theme, now: time.Now}
}

func (r *SessionsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No pane sessions recorded yet.")
}

// RenderList renders the ledger records, newest first as returned by the repository.
func (r *SessionsCLIRenderer) RenderList(records []entity.SessionRecord, limit int) string {
	if len(records) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconDatabase), r.theme.Title.Render("Pane sessions")))
	if limit > 0 {
		b.WriteString(r.theme.Subtle.Render(fmt.Sprintf(" (showing up to %d)", limit)))
	}
	b.WriteString("\n\n")

	now := r.now()
	rows := make([][]string, 0, len(records))
	live := 0
	for i := range records {
		rec := &records[i]
		status := IconPlay + " live"
		if rec.IsLive() {
			live++
		} else {
			status = IconStop + " ended " + relativeTime(*rec.DestroyedAt, now)
		}
		rows = append(rows, []string{
			rec.ShortHandle(),
			string(rec.PaneID),
			string(rec.WorkspaceID),
			relativeTime(rec.CreatedAt, now),
			status,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("SESSION", "PANE", "WORKSPACE", "CREATED", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.Highlight.Padding(0, 1)
			}
			if col == 4 && row >= 0 && row < len(records) && records[row].IsLive() {
				return r.theme.Highlight.UnsetBold().Padding(0, 1)
			}
			return r.theme.Normal.Padding(0, 1)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render(fmt.Sprintf("%d live, %d ended", live, len(records)-live)))
	return b.String()
}

func (r *SessionsCLIRenderer) RenderPruned(n int64, olderThan time.Duration) string {
	return fmt.Sprintf("%s Removed %d ended sessions older than %s",
		r.theme.Highlight.Render(IconCheck), n, olderThan)
}

func (r *SessionsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

// relativeTime formats t relative to now, e.g. "3m ago".
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
