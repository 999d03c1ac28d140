package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// ActionRow is one line of `tilemux actions`.
type ActionRow struct {
	Name        string
	Keys        []string
	Description string
}

// ActionsCLIRenderer renders the action list with the keys bound to each action.
type ActionsCLIRenderer struct {
	theme *Theme
}

func NewActionsCLIRenderer(theme *Theme) *ActionsCLIRenderer {
	return &ActionsCLIRenderer{theme: theme}
}

func (r *ActionsCLIRenderer) RenderList(rows []ActionRow, configFile string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconKeyboard), r.theme.Title.Render("Pane actions")))

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		keys := strings.Join(row.Keys, ", ")
		if keys == "" {
			keys = "unbound"
		}
		data = append(data, []string{row.Name, keys, row.Description})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("ACTION", "KEYS", "DESCRIPTION").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.theme.Highlight.Padding(0, 1)
			case col == 1:
				return r.theme.Normal.Padding(0, 1)
			default:
				return r.theme.Subtle.Padding(0, 1)
			}
		})
	b.WriteString(t.Render())

	if configFile != "" {
		b.WriteString("\n")
		b.WriteString(r.theme.Subtle.Render("Rebind keys in the [keybindings] section of " + configFile))
	}
	return b.String()
}
