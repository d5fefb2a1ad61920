package ui

import (
	"fmt"
	"os"
	"text/tabwriter"

	"aurum/pkg/manager"
)

// PrintNumberedMatches prints fuzzy-match candidates as a numbered table
// so the user can pick one by index.
func PrintNumberedMatches(names []string, lookup map[string]manager.Package) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, Bold("NO.")+"\t"+Bold("NAME")+"\t"+Bold("REPO")+"\t"+Bold("DESCRIPTION"))
	for i, name := range names {
		pkg := lookup[name]
		repo := pkg.Repository
		if repo == "" {
			repo = "unknown"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			i+1, PackageName.Sprint(name), PackageRepo.Sprint(repo), truncate(pkg.Description, 48))
	}
	w.Flush()
}

// PrintPackages prints a search result set.
func PrintPackages(packages []manager.Package) {
	if len(packages) == 0 {
		MutedMsg("No packages found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, Bold("REPO")+"\t"+Bold("NAME")+"\t"+Bold("VERSION")+"\t"+Bold("DESCRIPTION"))
	for _, pkg := range packages {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			PackageRepo.Sprint(pkg.Repository),
			PackageName.Sprint(pkg.Name),
			PackageVersion.Sprint(pkg.Version),
			truncate(pkg.Description, 60))
	}
	w.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
