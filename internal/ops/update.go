package ops

import (
	"context"
	"fmt"

	"aurum/internal/history"
	"aurum/internal/ui"
	"aurum/pkg/manager"
)

// UpdateMode selects which refresh/upgrade combination runs.
type UpdateMode string

const (
	// UpdateStandard upgrades with the active manager.
	UpdateStandard UpdateMode = "standard"
	// UpdateFull upgrades everything including AUR, preferring a helper.
	UpdateFull UpdateMode = "full"
	// UpdateRefresh force-refreshes the databases, then upgrades.
	UpdateRefresh UpdateMode = "refresh"
	// UpdateForce force-refreshes and upgrades official plus AUR packages.
	UpdateForce UpdateMode = "force"
)

// Description returns the human-readable summary of the mode.
func (m UpdateMode) Description() string {
	switch m {
	case UpdateStandard:
		return "Update official repository packages"
	case UpdateFull:
		return "Update all packages including AUR"
	case UpdateRefresh:
		return "Refresh package databases and update"
	case UpdateForce:
		return "Force refresh databases and update all packages"
	}
	return string(m)
}

// Valid reports whether the mode is one of the four known modes.
func (m UpdateMode) Valid() bool {
	switch m {
	case UpdateStandard, UpdateFull, UpdateRefresh, UpdateForce:
		return true
	}
	return false
}

// command is one step of an update plan.
type command struct {
	sudo bool
	name string
	args []string
}

// updatePlan expands an update mode into the ordered command sequence for
// the given manager. hasYay/hasParu describe which AUR helpers are on PATH.
// The returned warning, if nonempty, is shown before running.
func updatePlan(mode UpdateMode, mgr manager.Descriptor, hasYay, hasParu bool) ([]command, string) {
	upgrade := func(args ...string) command {
		return command{sudo: mgr.NeedsSudo, name: mgr.ID, args: args}
	}

	switch mode {
	case UpdateStandard:
		return []command{upgrade("-Syu")}, ""

	case UpdateFull:
		if mgr.SupportsAUR {
			return []command{upgrade("-Syu")}, ""
		}
		switch {
		case hasYay:
			return []command{{name: "yay", args: []string{"-Syu"}}}, ""
		case hasParu:
			return []command{{name: "paru", args: []string{"-Syu"}}}, ""
		default:
			return []command{{sudo: true, name: "pacman", args: []string{"-Syu"}}},
				"No AUR helper available, updating official repos only"
		}

	case UpdateRefresh:
		return []command{upgrade("-Syyu")}, ""

	case UpdateForce:
		if mgr.SupportsAUR {
			return []command{upgrade("-Syyu")}, ""
		}
		plan := []command{{sudo: true, name: "pacman", args: []string{"-Syyu"}}}
		switch {
		case hasYay:
			plan = append(plan, command{name: "yay", args: []string{"-Syu"}})
		case hasParu:
			plan = append(plan, command{name: "paru", args: []string{"-Syu"}})
		}
		return plan, ""
	}

	return nil, ""
}

// Update runs a system update in the given mode, stopping at the first
// failed step. After a successful update the system is probed for orphaned
// packages and the user is offered their removal.
func (s *Session) Update(ctx context.Context, mode UpdateMode) error {
	if !mode.Valid() {
		ui.ErrorMsg("Unknown update mode '%s'.", mode)
		return fmt.Errorf("unknown update mode %q", mode)
	}

	backupPath := s.maybeBackup(ctx)

	ui.InfoMsg("Updating system (%s)...", mode.Description())

	plan, warning := updatePlan(mode, s.Manager, manager.Yay.Installed(), manager.Paru.Installed())
	if warning != "" {
		ui.WarningMsg("%s", warning)
	}

	entry := history.NewEntry(history.OpUpdate, s.Manager.ID, nil)
	entry.Mode = string(mode)

	for i, cmd := range plan {
		if len(plan) > 1 {
			ui.MutedMsg("Step %d/%d: %s", i+1, len(plan), cmd.name)
		}

		args := s.withNoConfirm(cmd.args)
		run := s.Runner.Interactive
		if cmd.sudo {
			run = s.Runner.InteractiveSudo
		}
		res := run(ctx, cmd.name, args...)

		if !res.Success {
			err := fmt.Errorf("%w: %s update step", ErrCommandFailed, cmd.name)
			entry.MarkFailed(err)
			s.record(entry)
			ui.ErrorMsg("System update failed!")
			s.Log.Error("update command failed: %s", cmd.name)
			surfaceBackup(backupPath)
			return err
		}
	}

	entry.MarkSuccess()
	s.record(entry)
	ui.SuccessMsg("System update completed successfully!")
	s.Log.Info("system update completed successfully with mode: %s", mode)

	s.offerOrphanRemoval(ctx)
	return nil
}

// offerOrphanRemoval probes for orphans after an update and asks the user
// whether to remove them. Auto-confirm only reports; it never sweeps
// unprompted packages away.
func (s *Session) offerOrphanRemoval(ctx context.Context) {
	orphans := s.ListOrphans(ctx)
	if len(orphans) == 0 {
		return
	}

	ui.WarningMsg("Found orphaned packages: %d packages", len(orphans))
	if s.Config.AutoConfirm {
		return
	}

	ok, err := s.Prompt.Confirm("Remove orphaned packages?", false)
	if err != nil || !ok {
		return
	}
	_ = s.RemoveOrphans(ctx)
}
