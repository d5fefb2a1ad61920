package cli

import (
	"errors"

	"aurum/internal/ops"
	"aurum/internal/ui"

	"github.com/spf13/cobra"
)

var orphansList bool

var orphansCmd = &cobra.Command{
	Use:   "orphans",
	Short: "Remove orphaned packages",
	Long: `Find packages that were installed as dependencies and are no
longer required by anything, and remove them after confirmation.

Examples:
  aurum orphans          # List and remove after confirmation
  aurum orphans --list   # Only list, never remove
  aurum orphans -y       # Remove without asking`,
	Args: cobra.NoArgs,
	RunE: runOrphans,
}

func init() {
	orphansCmd.Flags().BoolVarP(&orphansList, "list", "l", false, "list orphans without removing them")
}

func runOrphans(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	if orphansList {
		orphans := session.ListOrphans(cmd.Context())
		if len(orphans) == 0 {
			ui.SuccessMsg("No orphaned packages found.")
			return nil
		}
		for _, pkg := range orphans {
			ui.Println("%s", pkg)
		}
		return nil
	}

	if err := session.RemoveOrphans(cmd.Context()); err != nil && !errors.Is(err, ops.ErrCancelled) {
		return err
	}
	return nil
}
