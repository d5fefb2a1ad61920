package cli

import (
	"aurum/internal/history"
	"aurum/internal/ui"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded operations",
	Long: `List recent package operations, newest first. Every install,
removal, update and orphan cleanup is recorded with its outcome.

Examples:
  aurum history
  aurum history -n 50`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.Open()
	if err != nil {
		ui.ErrorMsg("Operation history is unavailable: %v", err)
		return err
	}
	defer store.Close()

	entries, err := store.List(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ui.InfoMsg("No operations recorded yet.")
		return nil
	}

	for _, entry := range entries {
		ui.Println("%s", entry.Summary())
	}
	return nil
}
