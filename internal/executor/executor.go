// Package executor runs external package-manager commands. Commands are
// always invoked with an argument vector, never through a shell, and every
// invocation is written to the operation log.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"aurum/internal/logging"
)

// DefaultTimeout bounds how long a single external command may run.
const DefaultTimeout = 300 * time.Second

// timeoutMessage is the output reported when a command exceeds the timeout.
const timeoutMessage = "Command timed out"

// Result is the outcome of one external command execution.
type Result struct {
	Success bool
	Output  string
}

// Runner executes external commands with timeout enforcement, optional
// output capture and sudo elevation.
type Runner struct {
	log     *logging.Logger
	timeout time.Duration
	verbose bool
}

// New creates a Runner logging to the given logger.
func New(log *logging.Logger) *Runner {
	if log == nil {
		log = logging.Discard()
	}
	return &Runner{log: log, timeout: DefaultTimeout}
}

// SetVerbose enables echoing each command line before execution.
func (r *Runner) SetVerbose(verbose bool) {
	r.verbose = verbose
}

// SetTimeout overrides the per-command timeout.
func (r *Runner) SetTimeout(d time.Duration) {
	if d > 0 {
		r.timeout = d
	}
}

// Capture runs a command and returns its combined stdout/stderr, trimmed.
// Exit code 0 is the sole success criterion.
func (r *Runner) Capture(ctx context.Context, name string, args ...string) Result {
	return r.run(ctx, "", false, true, name, args)
}

// CaptureSudo is Capture with sudo elevation when not running as root.
func (r *Runner) CaptureSudo(ctx context.Context, name string, args ...string) Result {
	return r.run(ctx, "", true, true, name, args)
}

// Interactive runs a command with the terminal attached, for subprocesses
// that prompt the user or stream long build output. No output is collected;
// only the exit code determines success.
func (r *Runner) Interactive(ctx context.Context, name string, args ...string) Result {
	return r.run(ctx, "", false, false, name, args)
}

// InteractiveSudo is Interactive with sudo elevation when not running as root.
func (r *Runner) InteractiveSudo(ctx context.Context, name string, args ...string) Result {
	return r.run(ctx, "", true, false, name, args)
}

// InteractiveDir is Interactive with the working directory set, for git
// clone and makepkg runs inside a build directory.
func (r *Runner) InteractiveDir(ctx context.Context, dir, name string, args ...string) Result {
	return r.run(ctx, dir, false, false, name, args)
}

func (r *Runner) run(ctx context.Context, dir string, elevate, capture bool, name string, args []string) Result {
	if elevate && !isRoot() {
		if !hasSudo() {
			msg := "this operation requires root privileges, but sudo is not available"
			r.log.Error("cannot execute %s: %s", name, msg)
			return Result{Success: false, Output: msg}
		}
		args = append([]string{name}, args...)
		name = "sudo"
	}

	cmdLine := name
	if len(args) > 0 {
		cmdLine += " " + strings.Join(args, " ")
	}
	r.log.Info("executing: %s", cmdLine)
	if r.verbose {
		fmt.Printf("Executing: %s\n", cmdLine)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var combined bytes.Buffer
	if capture {
		cmd.Stdout = &combined
		cmd.Stderr = &combined
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		r.log.Error("command timed out: %s", cmdLine)
		return Result{Success: false, Output: timeoutMessage}
	}

	output := ""
	if capture {
		output = strings.TrimSpace(combined.String())
	}

	if err != nil {
		r.log.Error("command failed: %s (exit code: %d)", cmdLine, exitCode(err))
		if capture && output != "" {
			r.log.Error("output: %s", output)
		}
		return Result{Success: false, Output: output}
	}

	return Result{Success: true, Output: output}
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
