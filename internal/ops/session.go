// Package ops implements the package operations: install, remove, update,
// orphan cleanup, search and AUR helper bootstrap. Every operation runs
// against an explicit Session instead of ambient globals.
package ops

import (
	"context"
	"errors"

	"aurum/internal/backup"
	"aurum/internal/config"
	"aurum/internal/executor"
	"aurum/internal/history"
	"aurum/internal/logging"
	"aurum/internal/ui"
	"aurum/pkg/manager"
)

var (
	// ErrInvalidName is returned when a package name fails validation.
	ErrInvalidName = errors.New("invalid package name")

	// ErrCancelled is returned when the user cancels an operation.
	ErrCancelled = errors.New("operation cancelled")

	// ErrNotInstalled is returned when removing a package that is not installed.
	ErrNotInstalled = errors.New("package is not installed")

	// ErrCommandFailed is returned when an external command exits nonzero.
	ErrCommandFailed = errors.New("command failed")
)

// Runner executes external commands. *executor.Runner satisfies it; tests
// substitute fakes.
type Runner interface {
	Capture(ctx context.Context, name string, args ...string) executor.Result
	CaptureSudo(ctx context.Context, name string, args ...string) executor.Result
	Interactive(ctx context.Context, name string, args ...string) executor.Result
	InteractiveSudo(ctx context.Context, name string, args ...string) executor.Result
	InteractiveDir(ctx context.Context, dir, name string, args ...string) executor.Result
}

// Prompter asks the user questions. ui.Prompter satisfies it.
type Prompter interface {
	Confirm(label string, defaultYes bool) (bool, error)
	Input(label string) (string, error)
}

// Session carries the state one operation needs: the active manager, the
// loaded configuration, the command runner and the log.
type Session struct {
	Manager manager.Descriptor
	Config  *config.Config
	Runner  Runner
	Log     *logging.Logger
	Prompt  Prompter

	// HistoryOff disables best-effort history recording.
	HistoryOff bool
}

// NewSession creates a session for the given manager.
func NewSession(mgr manager.Descriptor, cfg *config.Config, runner Runner, log *logging.Logger, prompt Prompter) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Session{Manager: mgr, Config: cfg, Runner: runner, Log: log, Prompt: prompt}
}

// InstalledPackages returns the names of all installed packages. Failure to
// query yields an empty list.
func (s *Session) InstalledPackages(ctx context.Context) []string {
	res := s.Runner.Capture(ctx, "pacman", "-Qq")
	if !res.Success {
		return nil
	}
	return manager.ParseInstalled(res.Output)
}

// maybeBackup writes a package-list backup before a mutating operation when
// enabled. Backup failure is logged, never blocks the operation; the
// returned path is empty when no backup was made.
func (s *Session) maybeBackup(ctx context.Context) string {
	if !s.Config.BackupBeforeOperations {
		return ""
	}

	packages := s.InstalledPackages(ctx)
	path, err := backup.Write(config.BackupDir(), packages)
	if err != nil {
		s.Log.Error("failed to back up system state: %v", err)
		return ""
	}

	s.Log.Info("system state backed up to: %s", path)
	return path
}

// surfaceBackup tells the user about an existing backup after a failure.
func surfaceBackup(path string) {
	if path != "" {
		ui.WarningMsg("System backup available at: %s", path)
	}
}

// record stores an operation outcome in the history database, best-effort.
func (s *Session) record(entry *history.Entry) {
	if s.HistoryOff {
		return
	}
	store, err := history.Open()
	if err != nil {
		return
	}
	defer store.Close()
	_ = store.Record(entry) //nolint:errcheck
}

// withNoConfirm appends --noconfirm when auto-confirm is enabled.
func (s *Session) withNoConfirm(args []string) []string {
	if s.Config.AutoConfirm {
		return append(args, "--noconfirm")
	}
	return args
}

// confirm asks the user unless auto-confirm answers for them.
func (s *Session) confirm(label string, defaultYes bool) bool {
	if s.Config.AutoConfirm {
		return true
	}
	ok, err := s.Prompt.Confirm(label, defaultYes)
	if err != nil {
		return defaultYes
	}
	return ok
}
