// Package shell implements the interactive menu loop: manager selection,
// the action menu and the settings screens.
package shell

import (
	"context"
	"fmt"

	"aurum/internal/config"
	"aurum/internal/logging"
	"aurum/internal/ops"
	"aurum/internal/ui"
	"aurum/pkg/manager"
)

// Shell drives the interactive session.
type Shell struct {
	Config  *config.Config
	Log     *logging.Logger
	Runner  ops.Runner
	Prompt  ops.Prompter
	Version string
}

// New creates a shell around the given configuration, log and runner.
func New(cfg *config.Config, log *logging.Logger, runner ops.Runner, version string) *Shell {
	return &Shell{
		Config:  cfg,
		Log:     log,
		Runner:  runner,
		Prompt:  ui.Prompter{},
		Version: version,
	}
}

// Run starts the interactive loop. A panic anywhere below is logged and
// turned into a graceful exit instead of a stack trace on the user's
// terminal.
func (sh *Shell) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			sh.Log.Error("unexpected panic: %v", r)
			ui.ErrorMsg("An unexpected error occurred. Details were written to the log.")
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()

	fmt.Println(banner(sh.Version))
	fmt.Println()
	sh.Log.Info("interactive session started")

	for {
		mgr, ok := sh.chooseManager(ctx)
		if !ok {
			break
		}

		session := ops.NewSession(mgr, sh.Config, sh.Runner, sh.Log, sh.Prompt)
		if !sh.actionLoop(ctx, session) {
			break
		}
	}

	ui.InfoMsg("Goodbye!")
	sh.Log.Info("interactive session ended")
	return nil
}

// chooseManager shows the manager menu until the user picks an installed
// manager, bootstraps a missing AUR helper, or exits. The second return is
// false when the user wants to leave.
func (sh *Shell) chooseManager(ctx context.Context) (manager.Descriptor, bool) {
	for {
		choice := sh.managerMenu()
		if choice == 0 {
			return manager.Descriptor{}, false
		}

		all := manager.All()
		if choice < 1 || choice > len(all) {
			ui.ErrorMsg("Invalid selection.")
			continue
		}

		mgr := all[choice-1]
		if mgr.Installed() {
			sh.Log.Info("selected package manager: %s", mgr.ID)
			return mgr, true
		}

		if !mgr.SupportsAUR {
			ui.ErrorMsg("%s is not installed on this system.", mgr.DisplayName)
			continue
		}

		session := ops.NewSession(manager.Pacman, sh.Config, sh.Runner, sh.Log, sh.Prompt)
		if err := session.EnsureHelper(ctx, mgr); err != nil {
			continue
		}
		sh.Log.Info("selected package manager: %s", mgr.ID)
		return mgr, true
	}
}

// actionLoop runs the per-manager action menu. It returns true when the
// user wants to switch managers and false when they want to exit.
func (sh *Shell) actionLoop(ctx context.Context, session *ops.Session) bool {
	for {
		choice := sh.actionMenu(session.Manager)

		switch choice {
		case actionInstall:
			sh.installScreen(ctx, session)
		case actionRemove:
			sh.removeScreen(ctx, session)
		case actionUpdate:
			sh.updateScreen(ctx, session)
		case actionSearch:
			sh.searchScreen(ctx, session)
		case actionOrphans:
			_ = session.RemoveOrphans(ctx) //nolint:errcheck
		case actionHistory:
			sh.historyScreen()
		case actionSettings:
			sh.settingsScreen()
		case actionSystemInfo:
			sh.systemInfoScreen(ctx, session)
		case actionSwitch:
			return true
		case actionExit:
			return false
		default:
			ui.ErrorMsg("Invalid selection.")
		}
	}
}
