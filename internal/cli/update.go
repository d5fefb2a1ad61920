package cli

import (
	"aurum/internal/ops"

	"github.com/spf13/cobra"
)

var updateMode string

var updateCmd = &cobra.Command{
	Use:     "update",
	Aliases: []string{"upgrade"},
	Short:   "Update the system",
	Long: `Update installed packages. The mode controls which databases are
refreshed and whether AUR packages are included:

  standard  Update official repository packages
  full      Update all packages including AUR
  refresh   Refresh package databases and update
  force     Force refresh databases and update all packages

Examples:
  aurum update
  aurum update -m full
  aurum update -y -m refresh`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateMode, "mode", "m", string(ops.UpdateStandard), "update mode (standard, full, refresh, force)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	return session.Update(cmd.Context(), ops.UpdateMode(updateMode))
}
