package ops

import (
	"context"
	"errors"
	"testing"

	"aurum/internal/executor"
	"aurum/pkg/manager"
)

func planLines(plan []command) []string {
	out := make([]string, len(plan))
	for i, c := range plan {
		line := c.name
		for _, a := range c.args {
			line += " " + a
		}
		out[i] = line
	}
	return out
}

func TestUpdatePlan(t *testing.T) {
	tests := []struct {
		name        string
		mode        UpdateMode
		mgr         manager.Descriptor
		hasYay      bool
		hasParu     bool
		want        []string
		wantSudo    []bool
		wantWarning bool
	}{
		{
			name: "standard pacman",
			mode: UpdateStandard, mgr: manager.Pacman,
			want: []string{"pacman -Syu"}, wantSudo: []bool{true},
		},
		{
			name: "standard yay",
			mode: UpdateStandard, mgr: manager.Yay,
			want: []string{"yay -Syu"}, wantSudo: []bool{false},
		},
		{
			name: "full with aur manager",
			mode: UpdateFull, mgr: manager.Paru,
			want: []string{"paru -Syu"}, wantSudo: []bool{false},
		},
		{
			name: "full pacman borrows yay",
			mode: UpdateFull, mgr: manager.Pacman, hasYay: true,
			want: []string{"yay -Syu"}, wantSudo: []bool{false},
		},
		{
			name: "full pacman borrows paru",
			mode: UpdateFull, mgr: manager.Pacman, hasParu: true,
			want: []string{"paru -Syu"}, wantSudo: []bool{false},
		},
		{
			name: "full pacman without helper warns",
			mode: UpdateFull, mgr: manager.Pacman,
			want: []string{"pacman -Syu"}, wantSudo: []bool{true},
			wantWarning: true,
		},
		{
			name: "refresh pacman",
			mode: UpdateRefresh, mgr: manager.Pacman,
			want: []string{"pacman -Syyu"}, wantSudo: []bool{true},
		},
		{
			name: "force with aur manager",
			mode: UpdateForce, mgr: manager.Yay,
			want: []string{"yay -Syyu"}, wantSudo: []bool{false},
		},
		{
			name: "force pacman chains helper",
			mode: UpdateForce, mgr: manager.Pacman, hasYay: true,
			want:     []string{"pacman -Syyu", "yay -Syu"},
			wantSudo: []bool{true, false},
		},
		{
			name: "force pacman without helper",
			mode: UpdateForce, mgr: manager.Pacman,
			want: []string{"pacman -Syyu"}, wantSudo: []bool{true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, warning := updatePlan(tt.mode, tt.mgr, tt.hasYay, tt.hasParu)
			assertLines(t, planLines(plan), tt.want)
			for i, c := range plan {
				if c.sudo != tt.wantSudo[i] {
					t.Errorf("step %d sudo = %v, want %v", i, c.sudo, tt.wantSudo[i])
				}
			}
			if (warning != "") != tt.wantWarning {
				t.Errorf("warning = %q, wantWarning = %v", warning, tt.wantWarning)
			}
		})
	}
}

func TestUpdateSuccessProbesOrphans(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qtdq": failResult(""),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	if err := s.Update(context.Background(), UpdateStandard); err != nil {
		t.Fatalf("Update() = %v, want nil", err)
	}

	assertLines(t, runner.lines(), []string{
		"pacman -Syu",
		"pacman -Qtdq",
	})
}

func TestUpdateStopsAtFirstFailure(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Syu": failResult("error: failed retrieving file"),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	err := s.Update(context.Background(), UpdateStandard)
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Update() = %v, want ErrCommandFailed", err)
	}

	// No orphan probe after a failed update.
	assertLines(t, runner.lines(), []string{"pacman -Syu"})
}

func TestUpdateAutoConfirm(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qtdq": failResult(""),
	}}
	s := testSession(manager.Pacman, runner, &fakePrompter{})
	s.Config.AutoConfirm = true

	if err := s.Update(context.Background(), UpdateStandard); err != nil {
		t.Fatalf("Update() = %v, want nil", err)
	}
	if runner.calls[0].line != "pacman -Syu --noconfirm" {
		t.Errorf("first command = %q, want pacman -Syu --noconfirm", runner.calls[0].line)
	}
}

func TestUpdateOffersOrphanRemoval(t *testing.T) {
	runner := &fakeRunner{results: map[string]executor.Result{
		"pacman -Qtdq": okResult("orphan1"),
	}}
	prompt := &fakePrompter{confirms: []bool{true, true}}
	s := testSession(manager.Pacman, runner, prompt)

	if err := s.Update(context.Background(), UpdateStandard); err != nil {
		t.Fatalf("Update() = %v, want nil", err)
	}

	assertLines(t, runner.lines(), []string{
		"pacman -Syu",
		"pacman -Qtdq",
		"pacman -Qtdq",
		"pacman -Rns orphan1",
	})
}

func TestUpdateRejectsUnknownMode(t *testing.T) {
	runner := &fakeRunner{}
	s := testSession(manager.Pacman, runner, &fakePrompter{})

	if err := s.Update(context.Background(), UpdateMode("turbo")); err == nil {
		t.Fatal("unknown mode accepted")
	}
	if len(runner.calls) != 0 {
		t.Errorf("no command should run, got %v", runner.lines())
	}
}
