// Package version holds build metadata injected with -ldflags -X.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Program is the command name shown in version output
const Program = "pkgup"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns the multi-line version report printed by "pkgup version"
func Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s version %s\n", Program, Version)
	fmt.Fprintf(&b, "  commit: %s\n", Commit)
	fmt.Fprintf(&b, "  built: %s\n", BuildDate)
	fmt.Fprintf(&b, "  go: %s (%s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return b.String()
}

// Short returns the bare version, used for --version
func Short() string {
	return Version
}
