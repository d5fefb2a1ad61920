package cli

import (
	"errors"

	"aurum/internal/ops"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [packages...]",
	Short: "Install one or more packages",
	Long: `Install packages with the active package manager. When a package
name has no exact repository match, similar packages are suggested and
you pick one interactively.

Examples:
  aurum install firefox vim
  aurum install -y htop              # No confirmation prompts
  aurum install discord --manager yay`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	var failed error
	for _, pkg := range args {
		if err := session.Install(cmd.Context(), pkg); err != nil {
			if errors.Is(err, ops.ErrCancelled) {
				continue
			}
			failed = err
		}
	}
	return failed
}
