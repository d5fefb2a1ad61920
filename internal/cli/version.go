package cli

import (
	"aurum/internal/ui"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print aurum version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("aurum version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
	},
}
