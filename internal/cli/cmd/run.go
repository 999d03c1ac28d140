package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bnema/tilemux/internal/application/usecase"
	"github.com/bnema/tilemux/internal/cli/model"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/infrastructure/config"
	"github.com/bnema/tilemux/internal/infrastructure/session"
	"github.com/bnema/tilemux/internal/logging"
	"github.com/bnema/tilemux/internal/ui/dispatcher"
	"github.com/bnema/tilemux/internal/ui/input"
)

var runName string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive pane playground",
	Long: `Open a workspace with one pane and drive it with the configured keys.

Every pane gets an in-memory session recorded in the session ledger.
Resize settings are reloaded when the config file changes; key bindings
apply on the next run.

Press ? for help and ctrl+q to quit.`,
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runName, "name", "playground", "workspace name")
}

// newPaneID returns a short random pane id.
func newPaneID() string {
	return uuid.NewString()[:8]
}

func resizeSettings(cfg *config.Config) usecase.ResizeSettings {
	return usecase.ResizeSettings{
		StepPercent:    cfg.Workspace.Resize.StepPercent,
		MinPanePercent: cfg.Workspace.Resize.MinPanePercent,
	}
}

func runPlayground(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	keymap, err := input.NewKeymap(app.Config.Keybindings)
	if err != nil {
		return err
	}

	ws := entity.NewWorkspace(entity.WorkspaceID(uuid.NewString()), runName)
	ctx := logging.WithWorkspaceID(logging.WithComponent(app.Ctx(), "playground"), string(ws.ID))
	log := logging.FromContext(ctx)
	defer logging.RecoverPanic(ctx)

	metrics := app.Telemetry.Metrics
	sessions := session.NewRecordingProvider(session.NewMemoryProvider(), app.Sessions, metrics, ws.ID)
	notifier := model.NewChannelNotifier()
	panes := usecase.NewManagePanesUseCase(newPaneID, sessions, notifier)
	panes.SetResizeSettings(resizeSettings(app.Config))

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		panes.SetResizeSettings(resizeSettings(cfg))
		log.Info().
			Float64("step_percent", cfg.Workspace.Resize.StepPercent).
			Float64("min_pane_percent", cfg.Workspace.Resize.MinPanePercent).
			Msg("resize settings reloaded")
	})
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	if _, err := panes.Open(ctx, ws); err != nil {
		return fmt.Errorf("open workspace: %w", err)
	}

	m := model.NewPlaygroundModel(ctx, app.Theme, model.PlaygroundModelConfig{
		Dispatcher: dispatcher.NewPaneDispatcher(ctx, panes, ws, metrics, app.Telemetry.Tracer),
		Notifier:   notifier,
		Keymap:     keymap,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("playground: %w", err)
	}

	// Tear down the remaining sessions so the ledger records their end.
	for ws.PaneCount() > 0 {
		if err := panes.Remove(ctx, ws, ws.Focused); err != nil {
			log.Warn().Err(err).Msg("failed to close pane on exit")
			break
		}
	}
	log.Info().Uint64("revision", ws.Revision).Msg("playground closed")
	return nil
}
