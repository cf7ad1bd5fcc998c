package manager

import "strings"

// Package is one entry of a manager listing
type Package struct {
	Name    string
	Version string // Installed version
	Latest  string // Only set by outdated listings
}

// ParseListOutput parses a whitespace-delimited manager listing.
// The first headerLines lines are skipped; every remaining non-blank line
// yields one Package: first token name, second version, third latest.
func ParseListOutput(output string, headerLines int) []Package {
	var packages []Package

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if headerLines >= len(lines) {
		return packages
	}

	for _, line := range lines[headerLines:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		pkg := Package{Name: fields[0]}
		if len(fields) > 1 {
			pkg.Version = fields[1]
		}
		if len(fields) > 2 {
			pkg.Latest = fields[2]
		}
		packages = append(packages, pkg)
	}

	return packages
}

// Names returns the package names in order
func Names(packages []Package) []string {
	names := make([]string, 0, len(packages))
	for _, p := range packages {
		names = append(names, p.Name)
	}
	return names
}

// IsSelfOutdated reports whether the manager's own package is in the
// outdated listing. Names are compared whole and case-insensitively so a
// package such as "pipdeptree" does not count as pip itself.
func IsSelfOutdated(outdated []Package, selfName string) bool {
	return Find(outdated, selfName) != nil
}

// Find returns the package with the given name, or nil
func Find(packages []Package, name string) *Package {
	for i := range packages {
		if strings.EqualFold(packages[i].Name, name) {
			return &packages[i]
		}
	}
	return nil
}
