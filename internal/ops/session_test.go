package ops

import (
	"context"
	"strings"
	"testing"

	"aurum/internal/config"
	"aurum/internal/executor"
	"aurum/internal/logging"
	"aurum/internal/ui"
	"aurum/pkg/manager"
)

// call is one recorded command invocation.
type call struct {
	sudo bool
	dir  string
	line string
}

// fakeRunner records every invocation and answers from a scripted result
// table. Commands without a scripted result succeed with empty output.
type fakeRunner struct {
	calls   []call
	results map[string]executor.Result
}

func (f *fakeRunner) record(sudo bool, dir, name string, args []string) executor.Result {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, call{sudo: sudo, dir: dir, line: line})
	if res, ok := f.results[line]; ok {
		return res
	}
	return executor.Result{Success: true}
}

func (f *fakeRunner) Capture(_ context.Context, name string, args ...string) executor.Result {
	return f.record(false, "", name, args)
}

func (f *fakeRunner) CaptureSudo(_ context.Context, name string, args ...string) executor.Result {
	return f.record(true, "", name, args)
}

func (f *fakeRunner) Interactive(_ context.Context, name string, args ...string) executor.Result {
	return f.record(false, "", name, args)
}

func (f *fakeRunner) InteractiveSudo(_ context.Context, name string, args ...string) executor.Result {
	return f.record(true, "", name, args)
}

func (f *fakeRunner) InteractiveDir(_ context.Context, dir, name string, args ...string) executor.Result {
	return f.record(false, dir, name, args)
}

func (f *fakeRunner) lines() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.line
	}
	return out
}

// fakePrompter answers confirmations and inputs from scripted queues. An
// exhausted queue answers the default / empty string.
type fakePrompter struct {
	confirms []bool
	inputs   []string
}

func (f *fakePrompter) Confirm(_ string, defaultYes bool) (bool, error) {
	if len(f.confirms) == 0 {
		return defaultYes, nil
	}
	answer := f.confirms[0]
	f.confirms = f.confirms[1:]
	return answer, nil
}

func (f *fakePrompter) Input(_ string) (string, error) {
	if len(f.inputs) == 0 {
		return "", nil
	}
	answer := f.inputs[0]
	f.inputs = f.inputs[1:]
	return answer, nil
}

// testSession builds a session around the fakes with backups, history and
// progress output turned off.
func testSession(mgr manager.Descriptor, runner *fakeRunner, prompt *fakePrompter) *Session {
	ui.Init(false)
	cfg := config.Default()
	cfg.BackupBeforeOperations = false
	cfg.ShowProgress = false
	s := NewSession(mgr, cfg, runner, logging.Discard(), prompt)
	s.HistoryOff = true
	return s
}

func okResult(output string) executor.Result {
	return executor.Result{Success: true, Output: output}
}

func failResult(msg string) executor.Result {
	return executor.Result{Success: false, Output: msg}
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d commands %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %q, want %q", i, got[i], want[i])
		}
	}
}
