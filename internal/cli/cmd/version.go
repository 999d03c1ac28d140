package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		t := styles.NewTheme()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.Title.Render("tilemux "+buildInfo.Version))
		fmt.Fprintf(out, "  commit  %s\n", buildInfo.Commit)
		fmt.Fprintf(out, "  built   %s\n", buildInfo.BuildDate)
		fmt.Fprintf(out, "  go      %s\n", buildInfo.GoVersion)
		fmt.Fprintln(out, t.Subtle.Render("  "+build.RepoURL()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
