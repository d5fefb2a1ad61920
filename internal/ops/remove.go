package ops

import (
	"context"
	"fmt"
	"slices"

	"aurum/internal/history"
	"aurum/internal/ui"
	"aurum/pkg/manager"
)

// RemoveMode selects how much a removal sweeps along.
type RemoveMode string

const (
	// RemoveSimple removes only the package itself.
	RemoveSimple RemoveMode = "simple"
	// RemoveFull removes the package, then sweeps orphaned dependencies.
	RemoveFull RemoveMode = "full"
	// RemovePurge is RemoveFull plus a package cache clean.
	RemovePurge RemoveMode = "purge"
)

// Description returns the human-readable summary of the mode.
func (m RemoveMode) Description() string {
	switch m {
	case RemoveSimple:
		return "Remove package only"
	case RemoveFull:
		return "Remove package and unused dependencies"
	case RemovePurge:
		return "Remove package, dependencies, and clean cache"
	}
	return string(m)
}

// Valid reports whether the mode is one of the three known modes.
func (m RemoveMode) Valid() bool {
	return m == RemoveSimple || m == RemoveFull || m == RemovePurge
}

// Remove removes a package in the given mode. The first phase (the removal
// itself) is mandatory: if it fails, the mode aborts and later phases do
// not run. Later phases are a checklist, not a transaction: their failures
// are reported and logged but do not flip the overall outcome.
func (s *Session) Remove(ctx context.Context, pkg string, mode RemoveMode) error {
	if !mode.Valid() {
		ui.ErrorMsg("Unknown removal mode '%s'.", mode)
		return fmt.Errorf("unknown removal mode %q", mode)
	}

	if !manager.ValidName(pkg) {
		ui.ErrorMsg("Invalid package name: %s", pkg)
		return fmt.Errorf("%w: %q", ErrInvalidName, pkg)
	}

	if !slices.Contains(s.InstalledPackages(ctx), pkg) {
		ui.WarningMsg("Package '%s' is not installed.", pkg)
		return ErrNotInstalled
	}

	backupPath := s.maybeBackup(ctx)

	ui.InfoMsg("Removing %s (%s)...", pkg, mode.Description())

	entry := history.NewEntry(history.OpRemove, s.Manager.ID, []string{pkg})
	entry.Mode = string(mode)

	// Phase 1: remove the package. Mandatory.
	res := s.Runner.InteractiveSudo(ctx, "pacman", s.withNoConfirm([]string{"-Rns", pkg})...)
	if !res.Success {
		err := fmt.Errorf("%w: remove %s", ErrCommandFailed, pkg)
		entry.MarkFailed(err)
		s.record(entry)
		ui.ErrorMsg("Failed to remove package '%s'.", pkg)
		s.Log.Error("failed to remove package: %s", pkg)
		surfaceBackup(backupPath)
		return err
	}

	ui.SuccessMsg("Package '%s' removed successfully!", pkg)
	s.Log.Info("successfully removed package: %s", pkg)

	// Phase 2: sweep orphaned dependencies. Best-effort.
	if mode == RemoveFull || mode == RemovePurge {
		if err := s.sweepOrphans(ctx); err != nil {
			ui.WarningMsg("Failed to sweep orphaned dependencies.")
			s.Log.Warning("orphan sweep after removing %s failed: %v", pkg, err)
		}
	}

	// Phase 3: clean the package cache. Best-effort.
	if mode == RemovePurge {
		ui.InfoMsg("Cleaning package cache...")
		res := s.Runner.InteractiveSudo(ctx, "pacman", s.withNoConfirm([]string{"-Sc"})...)
		if res.Success {
			ui.SuccessMsg("Package cache cleaned successfully!")
		} else {
			ui.WarningMsg("Failed to clean package cache.")
			s.Log.Warning("cache clean after removing %s failed", pkg)
		}
	}

	entry.MarkSuccess()
	s.record(entry)
	return nil
}

// sweepOrphans removes whatever `pacman -Qtdq` reports, without prompting.
// Used as a phase of full/purge removals.
func (s *Session) sweepOrphans(ctx context.Context) error {
	orphans := s.ListOrphans(ctx)
	if len(orphans) == 0 {
		return nil
	}

	args := s.withNoConfirm(append([]string{"-Rns"}, orphans...))
	if res := s.Runner.InteractiveSudo(ctx, "pacman", args...); !res.Success {
		return fmt.Errorf("%w: orphan sweep", ErrCommandFailed)
	}
	return nil
}
