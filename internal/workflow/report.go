package workflow

import (
	"fmt"
	"io"

	"github.com/obentoo/pkgup/internal/common/output"
	"github.com/obentoo/pkgup/internal/manager"
)

// WriteInstalled prints the numbered installed listing followed by its count
func WriteInstalled(out io.Writer, installed []manager.Package) {
	if len(installed) == 0 {
		fmt.Fprintln(out, "There are no packages installed!")
		return
	}

	fmt.Fprintln(out, output.Sprint(output.Header, "Installed packages:"))
	for i, pkg := range installed {
		fmt.Fprintf(out, "%s - %s\n", output.FormatIndex(i+1), output.FormatPackage(pkg.Name, pkg.Version))
	}
	fmt.Fprintf(out, "\n%s\n\n", countMessage(len(installed), "installed"))
}

// WriteOutdated prints the numbered outdated listing followed by its count
func WriteOutdated(out io.Writer, outdated []manager.Package) {
	if len(outdated) == 0 {
		fmt.Fprintln(out, output.Sprint(output.Success, "All packages are up to date!"))
		fmt.Fprintln(out)
		return
	}

	for i, pkg := range outdated {
		fmt.Fprintf(out, "%s - %s\n", output.FormatIndex(i+1), output.FormatUpgrade(pkg.Name, pkg.Version, pkg.Latest))
	}
	fmt.Fprintf(out, "\n%s\n", countMessage(len(outdated), "outdated"))
}

// countMessage renders "There are N packages <state>." with is/are grammar
func countMessage(n int, state string) string {
	if n == 1 {
		return fmt.Sprintf("There is 1 package %s.", state)
	}
	return fmt.Sprintf("There are %d packages %s.", n, state)
}
