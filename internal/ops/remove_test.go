package ops

import (
	"context"
	"errors"
	"testing"

	"aurum/internal/executor"
	"aurum/pkg/manager"
)

func TestRemovePurgeRunsAllPhases(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq":   okResult("firefox\nvim"),
		"pacman -Qtdq": okResult("orphan1\norphan2"),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	if err := s.Remove(context.Background(), "firefox", RemovePurge); err != nil {
		t.Fatalf("Remove() = %v, want nil", err)
	}

	assertLines(t, runner.lines(), []string{
		"pacman -Qq",
		"pacman -Rns firefox",
		"pacman -Qtdq",
		"pacman -Rns orphan1 orphan2",
		"pacman -Sc",
	})

	for _, c := range runner.calls {
		if c.line == "pacman -Rns firefox" && !c.sudo {
			t.Error("package removal ran without elevation")
		}
		if c.line == "pacman -Sc" && !c.sudo {
			t.Error("cache clean ran without elevation")
		}
	}
}

func TestRemoveSimpleSkipsLaterPhases(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq": okResult("firefox"),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	if err := s.Remove(context.Background(), "firefox", RemoveSimple); err != nil {
		t.Fatalf("Remove() = %v, want nil", err)
	}

	assertLines(t, runner.lines(), []string{
		"pacman -Qq",
		"pacman -Rns firefox",
	})
}

func TestRemoveFirstPhaseFailureAborts(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq":          okResult("firefox"),
		"pacman -Rns firefox": failResult("error: failed to prepare transaction"),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	err := s.Remove(context.Background(), "firefox", RemovePurge)
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Remove() = %v, want ErrCommandFailed", err)
	}

	// The orphan sweep and cache clean must not run after the removal fails.
	assertLines(t, runner.lines(), []string{
		"pacman -Qq",
		"pacman -Rns firefox",
	})
}

func TestRemoveLaterPhaseFailureStillSucceeds(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq":          okResult("firefox"),
		"pacman -Qtdq":        okResult("orphan1"),
		"pacman -Rns orphan1": failResult("error: target not found"),
		"pacman -Sc":          failResult("error: permission denied"),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	if err := s.Remove(context.Background(), "firefox", RemovePurge); err != nil {
		t.Fatalf("Remove() = %v, want nil despite later phase failures", err)
	}

	// All phases still attempted.
	assertLines(t, runner.lines(), []string{
		"pacman -Qq",
		"pacman -Rns firefox",
		"pacman -Qtdq",
		"pacman -Rns orphan1",
		"pacman -Sc",
	})
}

func TestRemoveNotInstalled(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq": okResult("vim"),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	err := s.Remove(context.Background(), "firefox", RemoveSimple)
	if !errors.Is(err, ErrNotInstalled) {
		t.Fatalf("Remove() = %v, want ErrNotInstalled", err)
	}

	for _, c := range runner.calls {
		if c.sudo {
			t.Fatalf("no elevated command should run, got %q", c.line)
		}
	}
}

func TestRemoveRejectsInvalidInput(t *testing.T) {
	runner := &fakeRunner{}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	if err := s.Remove(context.Background(), "bad name", RemoveSimple); !errors.Is(err, ErrInvalidName) {
		t.Errorf("invalid name: got %v, want ErrInvalidName", err)
	}
	if err := s.Remove(context.Background(), "firefox", RemoveMode("nuke")); err == nil {
		t.Error("unknown mode accepted")
	}
	if len(runner.calls) != 0 {
		t.Errorf("no command should run on invalid input, got %v", runner.lines())
	}
}

func TestRemoveAutoConfirmAppendsNoconfirm(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq": okResult("firefox"),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})
	s.Config.AutoConfirm = true

	if err := s.Remove(context.Background(), "firefox", RemoveSimple); err != nil {
		t.Fatalf("Remove() = %v, want nil", err)
	}

	assertLines(t, runner.lines(), []string{
		"pacman -Qq",
		"pacman -Rns firefox --noconfirm",
	})
}

func TestRemoveModeValid(t *testing.T) {
	for _, mode := range []RemoveMode{RemoveSimple, RemoveFull, RemovePurge} {
		if !mode.Valid() {
			t.Errorf("%s should be valid", mode)
		}
	}
	if RemoveMode("everything").Valid() {
		t.Error("unknown mode should be invalid")
	}
}
