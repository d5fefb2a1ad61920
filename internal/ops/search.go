package ops

import (
	"context"
	"strconv"

	"aurum/internal/ui"
	"aurum/pkg/fuzzy"
	"aurum/pkg/manager"
)

// Search runs a repository search and returns the parsed records. A failed
// search (pacman exits nonzero when nothing matches) yields an empty list.
func (s *Session) Search(ctx context.Context, query string) []manager.Package {
	res := s.Runner.Capture(ctx, s.Manager.ID, "-Ss", query)
	if !res.Success {
		return nil
	}
	return manager.ParseSearchOutput(res.Output)
}

// PackageExists reports whether the exact package name appears in the
// repositories the active manager searches.
func (s *Session) PackageExists(ctx context.Context, pkg string) bool {
	res := s.Runner.Capture(ctx, s.Manager.ID, "-Ss", "^"+pkg+"$")
	if !res.Success {
		return false
	}

	for _, record := range manager.ParseSearchOutput(res.Output) {
		if record.Name == pkg {
			return true
		}
	}
	return false
}

// SearchInteractive searches for the query, ranks the unique result names
// by similarity and lets the user pick one. It returns the empty string
// when nothing was found or the user cancelled.
func (s *Session) SearchInteractive(ctx context.Context, query string) (string, error) {
	ui.InfoMsg("Searching for packages matching '%s'...", query)

	var packages []manager.Package
	_ = ui.WithSpinner("Searching", s.Config.ShowProgress, func() error { //nolint:errcheck
		packages = s.Search(ctx, query)
		return nil
	})
	if len(packages) == 0 {
		ui.WarningMsg("No packages found.")
		return "", nil
	}

	similar := fuzzy.CloseMatches(query, manager.Names(packages),
		s.Config.MaxSearchResults, s.Config.SearchCutoff)
	if len(similar) == 0 {
		ui.WarningMsg("No similar packages found.")
		return "", nil
	}

	lookup := manager.ByName(packages)

	// Auto-confirm policy picks the best match without asking.
	if s.Config.AutoConfirm {
		best := similar[0]
		ui.InfoMsg("Auto-selected closest match: %s", best)
		return best, nil
	}

	ui.SuccessMsg("Similar packages found:")
	ui.PrintNumberedMatches(similar, lookup)

	answer, err := s.Prompt.Input("Enter package number (0 to cancel)")
	if err != nil {
		return "", nil
	}
	if answer == "0" || answer == "cancel" || answer == "" {
		ui.InfoMsg("Search cancelled.")
		return "", nil
	}

	choice, err := strconv.Atoi(answer)
	if err != nil || choice < 1 || choice > len(similar) {
		ui.ErrorMsg("Invalid selection.")
		return "", nil
	}

	selected := similar[choice-1]
	pkg := lookup[selected]
	ui.InfoMsg("Selected: %s (%s) %s", selected, pkg.Repository, pkg.Description)
	return selected, nil
}
