package manager

import "strings"

// Package is one package record parsed from search output.
type Package struct {
	Name        string
	Repository  string
	Version     string
	Description string
}

// ParseSearchOutput parses `pacman -Ss` style output into package records.
// The format is:
//
//	repo/name version [group] [flags]
//	    description text, indented by whitespace
//
// Parsing is best-effort: malformed header lines are skipped and never fail
// the scan. The function is defined for every input, including empty input
// and input with no header lines at all.
func ParseSearchOutput(raw string) []Package {
	var packages []Package
	lines := strings.Split(raw, "\n")

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// Header line: contains a '/' and no leading whitespace.
		if !strings.Contains(line, "/") || startsWithSpace(line) {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		// First token must be exactly repo/name.
		if strings.Count(parts[0], "/") != 1 {
			continue
		}
		repoPkg := strings.SplitN(parts[0], "/", 2)
		if repoPkg[0] == "" || repoPkg[1] == "" {
			continue
		}

		version := "unknown"
		if len(parts) > 1 {
			version = parts[1]
		}

		// The description, if any, is the next line indented by whitespace.
		var description string
		if i+1 < len(lines) && startsWithSpace(lines[i+1]) && strings.TrimSpace(lines[i+1]) != "" {
			description = strings.TrimSpace(lines[i+1])
			i++
		}

		packages = append(packages, Package{
			Name:        repoPkg[1],
			Repository:  repoPkg[0],
			Version:     version,
			Description: description,
		})
	}

	return packages
}

// ByName builds a name lookup table from a result set. Later occurrences of
// the same name overwrite earlier ones.
func ByName(packages []Package) map[string]Package {
	table := make(map[string]Package, len(packages))
	for _, pkg := range packages {
		table[pkg.Name] = pkg
	}
	return table
}

// Names returns the package names in result order, de-duplicated preserving
// first-seen order.
func Names(packages []Package) []string {
	seen := make(map[string]bool, len(packages))
	names := make([]string, 0, len(packages))
	for _, pkg := range packages {
		if seen[pkg.Name] {
			continue
		}
		seen[pkg.Name] = true
		names = append(names, pkg.Name)
	}
	return names
}

// ParseInstalled parses `pacman -Qq` output, one package name per line.
func ParseInstalled(raw string) []string {
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		name := strings.TrimSpace(line)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func startsWithSpace(s string) bool {
	return strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\t")
}
