package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/ui/input"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List pane actions and their key bindings",
	Long: `List every pane action with the keys bound to it.

Bindings come from the [keybindings] section of the config file. Actions
bound to nothing are shown as unbound.`,
	RunE: runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}

func runActions(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	keymap, err := input.NewKeymap(app.Config.Keybindings)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewActionsCLIRenderer(app.Theme).
		RenderList(actionRows(keymap), app.Manager.GetConfigFile()))
	return nil
}

func actionRows(keymap *input.Keymap) []styles.ActionRow {
	actions := input.AllActions()
	rows := make([]styles.ActionRow, 0, len(actions))
	for _, a := range actions {
		rows = append(rows, styles.ActionRow{
			Name:        string(a),
			Keys:        keymap.Keys(a),
			Description: a.Description(),
		})
	}
	return rows
}
