// Package cli implements the command-line interface for aurum.
package cli

import (
	"fmt"

	"aurum/internal/config"
	"aurum/internal/executor"
	"aurum/internal/logging"
	"aurum/internal/ops"
	"aurum/internal/shell"
	"aurum/internal/ui"
	"aurum/pkg/manager"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	managerFlag string
	yes         bool
	verbose     bool
	noColor     bool

	// Global state
	cfg    *config.Config
	log    *logging.Logger
	runner *executor.Runner
)

// Build metadata - set at build time via ldflags
var (
	Version = "0.1.0-dev"
	Commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "aurum",
	Short: "Interactive front-end for pacman, yay and paru",
	Long: `Aurum wraps the Arch Linux package managers behind one interactive
assistant: fuzzy package search, guided install and removal, system
updates and orphan cleanup, with every operation logged and recorded.

Run aurum without arguments for the interactive menu, or use the
subcommands directly.

Examples:
  aurum                        # Interactive menu
  aurum install firefox        # Install a package
  aurum remove firefox -m purge
  aurum update -m full         # Update everything including AUR
  aurum search browser`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return shell.New(cfg, log, runner, Version).Run(cmd.Context())
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&managerFlag, "manager", "", "package manager (pacman, yay, paru)")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(orphansCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initializeApp sets up the application state.
func initializeApp() error {
	cfg = config.Load()

	// Apply global flag overrides
	if yes {
		cfg.AutoConfirm = true
	}
	if noColor {
		cfg.ColorsEnabled = false
	}

	ui.Init(cfg.ShouldUseColor())

	log = logging.New(config.LogPath())
	runner = executor.New(log)
	runner.SetVerbose(verbose)

	return nil
}

// activeManager resolves which manager an operation runs with: the
// --manager flag when given, otherwise the configured default, falling
// back to pacman. AUR helpers must actually be installed; pacman is
// assumed present on any Arch system.
func activeManager() (manager.Descriptor, error) {
	id := cfg.DefaultManager
	if managerFlag != "" {
		id = managerFlag
	}

	mgr, ok := manager.Get(id)
	if !ok {
		return manager.Descriptor{}, fmt.Errorf("unknown package manager %q", id)
	}
	if mgr.SupportsAUR && !mgr.Installed() {
		return manager.Descriptor{}, fmt.Errorf("%s is not installed; run aurum without arguments to bootstrap it", mgr.DisplayName)
	}
	return mgr, nil
}

// newSession builds an operation session for the active manager.
func newSession() (*ops.Session, error) {
	mgr, err := activeManager()
	if err != nil {
		ui.ErrorMsg("%v", err)
		return nil, err
	}
	return ops.NewSession(mgr, cfg, runner, log, ui.Prompter{}), nil
}
