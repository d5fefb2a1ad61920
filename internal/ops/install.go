package ops

import (
	"context"
	"fmt"
	"slices"

	"aurum/internal/executor"
	"aurum/internal/history"
	"aurum/internal/ui"
	"aurum/pkg/manager"
)

// Install installs a single package with the active manager. If the exact
// name is not found in the repositories, the user disambiguates through the
// fuzzy resolver or cancels.
func (s *Session) Install(ctx context.Context, pkg string) error {
	if !manager.ValidName(pkg) {
		ui.ErrorMsg("Invalid package name: %s", pkg)
		return fmt.Errorf("%w: %q", ErrInvalidName, pkg)
	}

	if slices.Contains(s.InstalledPackages(ctx), pkg) {
		ui.WarningMsg("Package '%s' is already installed.", pkg)
		if !s.confirm("Reinstall?", false) {
			return ErrCancelled
		}
	}

	if !s.PackageExists(ctx, pkg) {
		selected, err := s.SearchInteractive(ctx, pkg)
		if err != nil {
			return err
		}
		if selected == "" {
			return ErrCancelled
		}
		pkg = selected
	}

	backupPath := s.maybeBackup(ctx)

	args := s.withNoConfirm([]string{"-S", pkg})

	ui.InfoMsg("Installing %s with %s...", pkg, s.Manager.DisplayName)

	res := s.runManager(ctx, args)

	entry := history.NewEntry(history.OpInstall, s.Manager.ID, []string{pkg})
	if res.Success {
		entry.MarkSuccess()
		s.record(entry)
		ui.SuccessMsg("Package '%s' installed successfully!", pkg)
		s.Log.Info("successfully installed package: %s", pkg)
		return nil
	}

	err := fmt.Errorf("%w: install %s", ErrCommandFailed, pkg)
	entry.MarkFailed(err)
	s.record(entry)
	ui.ErrorMsg("Failed to install package '%s'.", pkg)
	s.Log.Error("failed to install package: %s", pkg)
	surfaceBackup(backupPath)
	return err
}

// runManager runs the active manager interactively, elevating only when the
// manager needs it (AUR helpers call sudo themselves).
func (s *Session) runManager(ctx context.Context, args []string) executor.Result {
	if s.Manager.NeedsSudo {
		return s.Runner.InteractiveSudo(ctx, s.Manager.ID, args...)
	}
	return s.Runner.Interactive(ctx, s.Manager.ID, args...)
}
