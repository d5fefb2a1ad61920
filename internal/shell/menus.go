package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"aurum/internal/config"
	"aurum/internal/history"
	"aurum/internal/ops"
	"aurum/internal/ui"
	"aurum/pkg/manager"
)

// Action menu entries.
const (
	actionExit = iota
	actionInstall
	actionRemove
	actionUpdate
	actionSearch
	actionOrphans
	actionHistory
	actionSettings
	actionSystemInfo
	actionSwitch
)

// readNumber asks for a menu selection and returns -1 on anything that is
// not a number, so callers fall through to their invalid-choice branch.
func (sh *Shell) readNumber(label string) int {
	answer, err := sh.Prompt.Input(label)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return -1
	}
	return n
}

// managerMenu prints the package manager menu and returns the selection.
func (sh *Shell) managerMenu() int {
	fmt.Println(header("Select package manager"))
	for i, mgr := range manager.All() {
		marker := ui.Yellow("not installed")
		if mgr.Installed() {
			marker = "installed"
		}
		line := fmt.Sprintf("  %d. %s (%s)", i+1, mgr.DisplayName, marker)
		if mgr.ID == sh.Config.DefaultManager {
			line += " " + hint("(default)")
		}
		fmt.Println(line)
	}
	fmt.Println("  0. Exit")
	return sh.readNumber("Enter choice")
}

// actionMenu prints the per-manager action menu and returns the selection.
func (sh *Shell) actionMenu(mgr manager.Descriptor) int {
	fmt.Println()
	fmt.Println(header(fmt.Sprintf("%s - what would you like to do?", mgr.DisplayName)))
	fmt.Println("  1. Install a package")
	fmt.Println("  2. Remove a package")
	fmt.Println("  3. Update the system")
	fmt.Println("  4. Search packages")
	fmt.Println("  5. Remove orphaned packages")
	fmt.Println("  6. View operation history")
	fmt.Println("  7. Settings")
	fmt.Println("  8. System information")
	fmt.Println("  9. Switch package manager")
	fmt.Println("  0. Exit")
	return sh.readNumber("Enter choice")
}

func (sh *Shell) installScreen(ctx context.Context, session *ops.Session) {
	pkg, err := sh.Prompt.Input("Package to install")
	if err != nil || strings.TrimSpace(pkg) == "" {
		return
	}
	_ = session.Install(ctx, strings.TrimSpace(pkg)) //nolint:errcheck
}

func (sh *Shell) removeScreen(ctx context.Context, session *ops.Session) {
	pkg, err := sh.Prompt.Input("Package to remove")
	if err != nil || strings.TrimSpace(pkg) == "" {
		return
	}

	fmt.Println(header("Removal mode"))
	modes := []ops.RemoveMode{ops.RemoveSimple, ops.RemoveFull, ops.RemovePurge}
	for i, mode := range modes {
		fmt.Printf("  %d. %s\n", i+1, mode.Description())
	}
	fmt.Println("  0. Cancel")

	choice := sh.readNumber("Enter choice")
	if choice < 1 || choice > len(modes) {
		return
	}
	_ = session.Remove(ctx, strings.TrimSpace(pkg), modes[choice-1]) //nolint:errcheck
}

func (sh *Shell) updateScreen(ctx context.Context, session *ops.Session) {
	fmt.Println(header("Update mode"))
	modes := []ops.UpdateMode{ops.UpdateStandard, ops.UpdateFull, ops.UpdateRefresh, ops.UpdateForce}
	for i, mode := range modes {
		fmt.Printf("  %d. %s\n", i+1, mode.Description())
	}
	fmt.Println("  0. Cancel")

	choice := sh.readNumber("Enter choice")
	if choice < 1 || choice > len(modes) {
		return
	}
	_ = session.Update(ctx, modes[choice-1]) //nolint:errcheck
}

func (sh *Shell) searchScreen(ctx context.Context, session *ops.Session) {
	query, err := sh.Prompt.Input("Search for")
	if err != nil || strings.TrimSpace(query) == "" {
		return
	}

	packages := session.Search(ctx, strings.TrimSpace(query))
	if len(packages) == 0 {
		ui.WarningMsg("No packages found.")
		return
	}
	ui.PrintPackages(packages)
}

// historyScreen shows the most recent recorded operations.
func (sh *Shell) historyScreen() {
	store, err := history.Open()
	if err != nil {
		ui.WarningMsg("Operation history is unavailable: %v", err)
		return
	}
	defer store.Close()

	entries, err := store.List(10)
	if err != nil || len(entries) == 0 {
		ui.InfoMsg("No operations recorded yet.")
		return
	}

	fmt.Println(header("Recent operations"))
	for _, entry := range entries {
		fmt.Println("  " + entry.Summary())
	}
}

// settingsScreen lets the user flip or set each configuration value. Every
// change is saved immediately.
func (sh *Shell) settingsScreen() {
	for {
		cfg := sh.Config
		fmt.Println()
		fmt.Println(header("Settings"))
		fmt.Printf("  1. Default manager: %s\n", cfg.DefaultManager)
		fmt.Printf("  2. Auto confirm: %t\n", cfg.AutoConfirm)
		fmt.Printf("  3. Show progress: %t\n", cfg.ShowProgress)
		fmt.Printf("  4. Backup before operations: %t\n", cfg.BackupBeforeOperations)
		fmt.Printf("  5. Max search results: %d\n", cfg.MaxSearchResults)
		fmt.Printf("  6. Search cutoff: %.2f\n", cfg.SearchCutoff)
		fmt.Printf("  7. Colors enabled: %t\n", cfg.ColorsEnabled)
		fmt.Println("  0. Back")

		switch sh.readNumber("Setting to change") {
		case 0:
			return
		case 1:
			answer, _ := sh.Prompt.Input("Default manager (pacman, yay, paru)") //nolint:errcheck
			if _, ok := manager.Get(strings.TrimSpace(answer)); ok {
				cfg.DefaultManager = strings.TrimSpace(answer)
			} else {
				ui.ErrorMsg("Unknown manager.")
				continue
			}
		case 2:
			cfg.AutoConfirm = !cfg.AutoConfirm
		case 3:
			cfg.ShowProgress = !cfg.ShowProgress
		case 4:
			cfg.BackupBeforeOperations = !cfg.BackupBeforeOperations
		case 5:
			n := sh.readNumber("Max search results")
			if n < 1 {
				ui.ErrorMsg("Must be a positive number.")
				continue
			}
			cfg.MaxSearchResults = n
		case 6:
			answer, _ := sh.Prompt.Input("Search cutoff (0-1)") //nolint:errcheck
			v, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
			if err != nil || v <= 0 || v > 1 {
				ui.ErrorMsg("Must be a number between 0 and 1.")
				continue
			}
			cfg.SearchCutoff = v
		case 7:
			cfg.ColorsEnabled = !cfg.ColorsEnabled
			ui.Init(cfg.ShouldUseColor())
		default:
			ui.ErrorMsg("Invalid selection.")
			continue
		}

		if err := cfg.Save(); err != nil {
			ui.ErrorMsg("Failed to save configuration: %v", err)
			sh.Log.Error("failed to save configuration: %v", err)
		} else {
			ui.SuccessMsg("Configuration saved.")
		}
	}
}

// systemInfoScreen shows manager availability, the installed package count
// and the last few log lines.
func (sh *Shell) systemInfoScreen(ctx context.Context, session *ops.Session) {
	fmt.Println()
	fmt.Println(header("System information"))

	for _, mgr := range manager.All() {
		status := ui.Yellow("not installed")
		if mgr.Installed() {
			status = "installed"
		}
		fmt.Printf("  %-8s %s\n", mgr.DisplayName, status)
	}

	installed := session.InstalledPackages(ctx)
	fmt.Printf("  Installed packages: %d\n", len(installed))

	orphans := session.ListOrphans(ctx)
	fmt.Printf("  Orphaned packages:  %d\n", len(orphans))

	fmt.Printf("  Configuration:      %s\n", config.Path())
	fmt.Printf("  Log file:           %s\n", sh.Log.Path())

	if lines := sh.Log.Tail(5); len(lines) > 0 {
		fmt.Println(header("Recent log entries"))
		for _, line := range lines {
			fmt.Println("  " + hint(line))
		}
	}
}
