package ops

import (
	"context"
	"errors"
	"testing"

	"aurum/internal/executor"
	"aurum/pkg/manager"
)

const fireSearchOutput = `extra/firefox 120.0.1-1
    Fast, Private & Safe Web Browser
extra/firefox-esr 115.0-1
    Extended Support Release of Firefox
`

func TestInstallExactMatch(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq": okResult("vim"),
		"pacman -Ss ^htop$": okResult(`extra/htop 3.3.0-1
    Interactive process viewer`),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	if err := s.Install(context.Background(), "htop"); err != nil {
		t.Fatalf("Install() = %v, want nil", err)
	}

	assertLines(t, runner.lines(), []string{
		"pacman -Qq",
		"pacman -Ss ^htop$",
		"pacman -S htop",
	})

	last := runner.calls[len(runner.calls)-1]
	if !last.sudo {
		t.Error("pacman install must be elevated")
	}
}

func TestInstallAURHelperNotElevated(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq": okResult(""),
		"yay -Ss ^htop$": okResult(`extra/htop 3.3.0-1
    Interactive process viewer`),
	}}
	s := testSession(manager.Yay, runner, &fakePrompter{})

	if err := s.Install(context.Background(), "htop"); err != nil {
		t.Fatalf("Install() = %v, want nil", err)
	}

	last := runner.calls[len(runner.calls)-1]
	if last.line != "yay -S htop" {
		t.Fatalf("last command = %q, want yay -S htop", last.line)
	}
	if last.sudo {
		t.Error("yay escalates on its own and must not run under sudo")
	}
}

func TestInstallDisambiguates(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq":          okResult(""),
		"pacman -Ss ^firefx$": failResult(""),
		"pacman -Ss firefx":   okResult(fireSearchOutput),
	}}
	prompt := &fakePrompter{inputs: []string{"1"}}
	s := testSession(manager.Pacman, runner, prompt)

	if err := s.Install(context.Background(), "firefx"); err != nil {
		t.Fatalf("Install() = %v, want nil", err)
	}

	last := runner.calls[len(runner.calls)-1]
	if last.line != "pacman -S firefox" {
		t.Fatalf("last command = %q, want pacman -S firefox", last.line)
	}
}

func TestInstallDisambiguationCancelled(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq":          okResult(""),
		"pacman -Ss ^firefx$": failResult(""),
		"pacman -Ss firefx":   okResult(fireSearchOutput),
	}}
	prompt := &fakePrompter{inputs: []string{"0"}}
	s := testSession(manager.Pacman, runner, prompt)

	err := s.Install(context.Background(), "firefx")
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Install() = %v, want ErrCancelled", err)
	}

	for _, c := range runner.calls {
		if c.line == "pacman -S firefox" {
			t.Error("install ran after cancellation")
		}
	}
}

func TestInstallNoResults(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq":            okResult(""),
		"pacman -Ss ^nonsense$": failResult(""),
		"pacman -Ss nonsense":   failResult(""),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	if err := s.Install(context.Background(), "nonsense"); !errors.Is(err, ErrCancelled) {
		t.Fatalf("Install() = %v, want ErrCancelled", err)
	}
}

func TestInstallRejectsInvalidName(t *testing.T) {
	runner := &fakeRunner{}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	for _, name := range []string{"", "-flag", "pkg; rm -rf /", "pkg name"} {
		if err := s.Install(context.Background(), name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Install(%q) = %v, want ErrInvalidName", name, err)
		}
	}
	if len(runner.calls) != 0 {
		t.Errorf("no command should run for invalid names, got %v", runner.lines())
	}
}

func TestInstallAlreadyInstalledDeclined(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq": okResult("htop"),
	}}
	prompt := &fakePrompter{confirms: []bool{false}}
	s := testSession(manager.Pacman, runner, prompt)

	if err := s.Install(context.Background(), "htop"); !errors.Is(err, ErrCancelled) {
		t.Fatalf("Install() = %v, want ErrCancelled", err)
	}
}

func TestInstallFailureSurfaces(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qq": okResult(""),
		"pacman -Ss ^htop$": okResult(`extra/htop 3.3.0-1
    Interactive process viewer`),
		"pacman -S htop": failResult("error: failed to commit transaction"),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	if err := s.Install(context.Background(), "htop"); !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Install() = %v, want ErrCommandFailed", err)
	}
}

func TestSearchInteractiveAutoConfirmPicksBest(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Ss firefox": okResult(fireSearchOutput),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})
	s.Config.AutoConfirm = true

	got, err := s.SearchInteractive(context.Background(), "firefox")
	if err != nil {
		t.Fatalf("SearchInteractive() error = %v", err)
	}
	if got != "firefox" {
		t.Errorf("auto-selected %q, want firefox", got)
	}
}

func TestSearchInteractiveInvalidSelection(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Ss firefox": okResult(fireSearchOutput),
	}}
	for _, answer := range []string{"99", "-1", "abc"} {
		prompt := &fakePrompter{inputs: []string{answer}}
		s := testSession(manager.Pacman, runner, prompt)

		got, err := s.SearchInteractive(context.Background(), "firefox")
		if err != nil {
			t.Fatalf("SearchInteractive(%q) error = %v", answer, err)
		}
		if got != "" {
			t.Errorf("selection %q accepted as %q, want rejection", answer, got)
		}
	}
}

func TestPackageExistsMatchesExactNameOnly(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Ss ^firefox$": okResult(`extra/firefox-esr 115.0-1
    Extended Support Release of Firefox`),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	if s.PackageExists(context.Background(), "firefox") {
		t.Error("firefox-esr in the results must not count as firefox")
	}
}
