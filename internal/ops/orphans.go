package ops

import (
	"context"
	"fmt"
	"strings"

	"aurum/internal/history"
	"aurum/internal/ui"
)

// ListOrphans returns the packages installed as dependencies that nothing
// requires anymore. pacman exits nonzero when there are none.
func (s *Session) ListOrphans(ctx context.Context) []string {
	res := s.Runner.Capture(ctx, "pacman", "-Qtdq")
	if !res.Success || strings.TrimSpace(res.Output) == "" {
		return nil
	}
	return strings.Fields(res.Output)
}

// RemoveOrphans lists orphaned packages, asks for confirmation and removes
// them as a single argument-vector invocation.
func (s *Session) RemoveOrphans(ctx context.Context) error {
	ui.InfoMsg("Checking for orphaned packages...")

	orphans := s.ListOrphans(ctx)
	if len(orphans) == 0 {
		ui.SuccessMsg("No orphaned packages found.")
		return nil
	}

	ui.WarningMsg("Found %d orphaned packages:", len(orphans))
	for i, pkg := range orphans {
		if i == 10 {
			ui.MutedMsg("  ... and %d more", len(orphans)-10)
			break
		}
		ui.MutedMsg("  • %s", pkg)
	}

	if !s.confirm("Remove these orphaned packages?", false) {
		ui.InfoMsg("Orphaned package removal cancelled.")
		return ErrCancelled
	}

	backupPath := s.maybeBackup(ctx)

	args := s.withNoConfirm(append([]string{"-Rns"}, orphans...))
	res := s.Runner.InteractiveSudo(ctx, "pacman", args...)

	entry := history.NewEntry(history.OpOrphans, s.Manager.ID, orphans)
	if res.Success {
		entry.MarkSuccess()
		s.record(entry)
		ui.SuccessMsg("Orphaned packages removed successfully!")
		s.Log.Info("removed %d orphaned packages", len(orphans))
		return nil
	}

	err := fmt.Errorf("%w: orphan removal", ErrCommandFailed)
	entry.MarkFailed(err)
	s.record(entry)
	ui.ErrorMsg("Failed to remove orphaned packages.")
	s.Log.Error("failed to remove orphaned packages")
	surfaceBackup(backupPath)
	return err
}
