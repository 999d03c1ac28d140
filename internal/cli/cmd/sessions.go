package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/domain/entity"
)

const defaultSessionsLimit = 20

var (
	sessionsLimit int
	sessionsPrune time.Duration
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show the pane session ledger",
	Long: `List the terminal sessions created for panes, newest first.

Every pane owns one session. The ledger records when it was created and
when it was torn down, across every playground run.

Example:
  tilemux sessions --limit 50
  tilemux sessions --prune 168h   # drop ended sessions older than a week`,
	RunE: runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", defaultSessionsLimit, "maximum sessions to show")
	sessionsCmd.Flags().DurationVar(&sessionsPrune, "prune", 0, "delete ended sessions older than this duration")
}

func runSessions(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if sessionsLimit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", sessionsLimit)
	}

	renderer := styles.NewSessionsCLIRenderer(app.Theme)
	out := cmd.OutOrStdout()
	ctx := app.Ctx()

	if sessionsPrune > 0 {
		n, err := app.Sessions.DeleteDestroyedBefore(ctx, time.Now().Add(-sessionsPrune))
		if err != nil {
			fmt.Fprintln(out, renderer.RenderError(err))
			return fmt.Errorf("prune sessions: %w", err)
		}
		fmt.Fprintln(out, renderer.RenderPruned(n, sessionsPrune))
	}

	records, err := app.Sessions.Recent(ctx, sessionsLimit)
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return fmt.Errorf("list sessions: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, renderer.RenderEmptyList())
		return nil
	}

	rows := make([]entity.SessionRecord, 0, len(records))
	for _, r := range records {
		rows = append(rows, *r)
	}
	fmt.Fprintln(out, renderer.RenderList(rows, sessionsLimit))
	return nil
}
