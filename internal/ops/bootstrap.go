package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"aurum/internal/ui"
	"aurum/pkg/manager"
)

const aurBaseURL = "https://aur.archlinux.org"

// EnsureHelper makes sure the given AUR helper is installed, offering to
// build it from the AUR when it is missing. Returns nil when the helper is
// available afterwards.
func (s *Session) EnsureHelper(ctx context.Context, helper manager.Descriptor) error {
	if !helper.SupportsAUR {
		return fmt.Errorf("%s is not an AUR helper", helper.DisplayName)
	}
	if helper.Installed() {
		return nil
	}

	ui.WarningMsg("%s is not installed.", helper.DisplayName)
	if !s.confirm(fmt.Sprintf("Install %s from the AUR?", helper.DisplayName), true) {
		return ErrCancelled
	}

	return s.installHelper(ctx, helper)
}

// installHelper clones the helper's AUR repository into a temporary
// directory and builds it with makepkg -si.
func (s *Session) installHelper(ctx context.Context, helper manager.Descriptor) error {
	ui.InfoMsg("Installing %s...", helper.DisplayName)
	s.Log.Info("bootstrapping AUR helper: %s", helper.ID)

	if err := s.ensureGit(ctx); err != nil {
		return err
	}

	tmp, err := os.MkdirTemp("", "aurum-bootstrap-")
	if err != nil {
		ui.ErrorMsg("Failed to create build directory: %v", err)
		return err
	}
	defer os.RemoveAll(tmp)

	repoURL := fmt.Sprintf("%s/%s.git", aurBaseURL, helper.ID)
	if res := s.Runner.InteractiveDir(ctx, tmp, "git", "clone", repoURL); !res.Success {
		ui.ErrorMsg("Failed to clone %s repository.", helper.DisplayName)
		s.Log.Error("git clone failed for %s", repoURL)
		return fmt.Errorf("%w: git clone %s", ErrCommandFailed, repoURL)
	}

	buildDir := filepath.Join(tmp, helper.ID)
	args := []string{"-si"}
	if s.Config.AutoConfirm {
		args = append(args, "--noconfirm")
	}
	if res := s.Runner.InteractiveDir(ctx, buildDir, "makepkg", args...); !res.Success {
		ui.ErrorMsg("Failed to build %s.", helper.DisplayName)
		s.Log.Error("makepkg failed for %s", helper.ID)
		return fmt.Errorf("%w: makepkg %s", ErrCommandFailed, helper.ID)
	}

	ui.SuccessMsg("%s installed successfully!", helper.DisplayName)
	s.Log.Info("AUR helper installed: %s", helper.ID)
	return nil
}

// ensureGit installs git through pacman when it is missing. makepkg ships
// with base-devel and is assumed present on any Arch system that can build.
func (s *Session) ensureGit(ctx context.Context) error {
	if res := s.Runner.Capture(ctx, "pacman", "-Qq", "git"); res.Success {
		return nil
	}

	ui.InfoMsg("Installing git (required for AUR builds)...")
	if res := s.Runner.InteractiveSudo(ctx, "pacman", "-Sy", "git", "--noconfirm"); !res.Success {
		ui.ErrorMsg("Failed to install git.")
		return fmt.Errorf("%w: pacman -Sy git", ErrCommandFailed)
	}
	return nil
}
