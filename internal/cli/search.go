package cli

import (
	"strings"

	"aurum/internal/ui"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for packages",
	Long: `Search the repositories of the active package manager and print
the matches as a table.

Examples:
  aurum search browser
  aurum search --manager yay spotify`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	packages := session.Search(cmd.Context(), query)
	if len(packages) == 0 {
		ui.WarningMsg("No packages found for '%s'.", query)
		return nil
	}

	ui.PrintPackages(packages)
	return nil
}
