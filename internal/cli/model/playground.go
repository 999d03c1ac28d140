// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/infrastructure/telemetry"
	"github.com/bnema/tilemux/internal/logging"
	"github.com/bnema/tilemux/internal/ui/dispatcher"
	"github.com/bnema/tilemux/internal/ui/input"
)

// PlaygroundModel is the Bubble Tea model for the interactive pane playground.
type PlaygroundModel struct {
	// UI components
	help help.Model
	keys playgroundKeyMap

	// State
	snapshot entity.LayoutSnapshot
	width    int
	height   int
	status   string
	err      error

	// Dependencies
	ctx        context.Context
	dispatcher *dispatcher.PaneDispatcher
	notifier   *ChannelNotifier
	theme      *styles.Theme
}

// playgroundKeyMap adds the playground's own keys to the pane keymap.
type playgroundKeyMap struct {
	panes *input.Keymap
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k playgroundKeyMap) ShortHelp() []key.Binding {
	return append(k.panes.ShortHelp(), k.Help, k.Quit)
}

// FullHelp returns keybindings for the full help view.
func (k playgroundKeyMap) FullHelp() [][]key.Binding {
	return append(k.panes.FullHelp(), []key.Binding{k.Help, k.Quit})
}

// PlaygroundModelConfig holds the dependencies of the playground.
type PlaygroundModelConfig struct {
	Dispatcher *dispatcher.PaneDispatcher
	Notifier   *ChannelNotifier
	Keymap     *input.Keymap
}

// NewPlaygroundModel creates the playground. The workspace behind the
// dispatcher is expected to be opened already, its first snapshot pending
// on the notifier.
func NewPlaygroundModel(ctx context.Context, theme *styles.Theme, cfg PlaygroundModelConfig) PlaygroundModel {
	return PlaygroundModel{
		help: help.New(),
		keys: playgroundKeyMap{
			panes: cfg.Keymap,
			Help: key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "help"),
			),
			Quit: key.NewBinding(
				key.WithKeys("ctrl+c", "ctrl+q"),
				key.WithHelp("ctrl+q", "quit"),
			),
		},
		width:      80,
		height:     24,
		ctx:        ctx,
		dispatcher: cfg.Dispatcher,
		notifier:   cfg.Notifier,
		theme:      theme,
	}
}

// Init implements tea.Model.
func (m PlaygroundModel) Init() tea.Cmd {
	return m.notifier.Wait()
}

// Update implements tea.Model.
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case LayoutMsg:
		m.snapshot = msg.Snapshot
		return m, m.notifier.Wait()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m PlaygroundModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, ok := m.keys.panes.Lookup(msg)
	if !ok {
		return m, nil
	}

	outcome, err := m.dispatcher.Dispatch(m.ctx, action)
	m.err = err
	switch {
	case err != nil:
		m.status = fmt.Sprintf("%s: %v", action, err)
	case outcome == telemetry.OutcomeNoop:
		m.status = fmt.Sprintf("%s: nothing to do", action)
	default:
		m.status = string(action)
	}
	logging.FromContext(m.ctx).Debug().
		Str("action", string(action)).
		Str("outcome", outcome).
		Msg("playground key handled")
	return m, nil
}

// View implements tea.Model.
func (m PlaygroundModel) View() string {
	helpView := m.help.View(m.keys)
	status := m.renderStatus()

	layoutHeight := m.height - lipgloss.Height(status) - lipgloss.Height(helpView)
	if layoutHeight < 0 {
		layoutHeight = 0
	}

	parts := make([]string, 0, 3)
	if layout := styles.RenderLayout(m.theme, m.snapshot, m.width, layoutHeight); layout != "" {
		parts = append(parts, layout)
	}
	parts = append(parts, status, helpView)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m PlaygroundModel) renderStatus() string {
	fields := []string{
		styles.IconPane + " " + string(m.snapshot.WorkspaceID),
		fmt.Sprintf("%d panes", m.snapshot.PaneCount),
	}
	if m.snapshot.Focused != "" {
		fields = append(fields, "focus "+string(m.snapshot.Focused))
	}
	if m.snapshot.Maximized != "" {
		fields = append(fields, styles.IconMaximize+" maximized")
	}
	fields = append(fields, fmt.Sprintf("rev %d", m.snapshot.Revision))

	line := strings.Join(fields, "  ")
	if m.status != "" {
		style := m.theme.Normal
		if m.err != nil {
			style = m.theme.ErrorStyle
		}
		line += "  " + style.Render(m.status)
	}
	return m.theme.StatusBar.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(line)
}
