package cli

import (
	"aurum/internal/ops"

	"github.com/spf13/cobra"
)

var removeMode string

var removeCmd = &cobra.Command{
	Use:     "remove [packages...]",
	Aliases: []string{"uninstall"},
	Short:   "Remove one or more packages",
	Long: `Remove packages with pacman. The mode controls how much is swept
along with the package:

  simple  Remove package only
  full    Remove package and unused dependencies
  purge   Remove package, dependencies, and clean cache

Examples:
  aurum remove firefox
  aurum remove firefox -m purge
  aurum remove -y vim htop -m full`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVarP(&removeMode, "mode", "m", string(ops.RemoveSimple), "removal mode (simple, full, purge)")
}

func runRemove(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	var failed error
	for _, pkg := range args {
		if err := session.Remove(cmd.Context(), pkg, ops.RemoveMode(removeMode)); err != nil {
			failed = err
		}
	}
	return failed
}
