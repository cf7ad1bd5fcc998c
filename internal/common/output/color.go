package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// Package state colors
	Outdated = color.New(color.FgYellow)
	Upgraded = color.New(color.FgGreen)
	Failed   = color.New(color.FgRed)
	Skipped  = color.New(color.Faint)

	// Message colors
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
	Error   = color.New(color.FgRed)
	Dim     = color.New(color.Faint)

	// Structural colors
	Header  = color.New(color.FgWhite, color.Bold)
	Package = color.New(color.FgBlue, color.Bold)
	Prompt  = color.New(color.FgMagenta)
)

// NoColor disables color output
func NoColor() {
	color.NoColor = true
}

// ForceColor enables color output even when not a TTY
func ForceColor() {
	color.NoColor = false
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// StateColor returns the color used for a package state label
func StateColor(state string) *color.Color {
	switch state {
	case "outdated":
		return Outdated
	case "upgraded":
		return Upgraded
	case "failed":
		return Failed
	case "skipped":
		return Skipped
	default:
		return color.New(color.Reset)
	}
}

// Sprintf returns a colored string without printing
func Sprintf(c *color.Color, format string, args ...interface{}) string {
	return c.Sprintf(format, args...)
}

// Sprint returns a colored string without printing
func Sprint(c *color.Color, a ...interface{}) string {
	return c.Sprint(a...)
}

// FormatState formats a state label with appropriate color
func FormatState(state string) string {
	return StateColor(state).Sprintf("[%s]", state)
}

// FormatPackage formats a package name, with its version when known
func FormatPackage(name, version string) string {
	if version != "" {
		return Package.Sprint(name) + Dim.Sprintf(" (%s)", version)
	}
	return Package.Sprint(name)
}

// FormatUpgrade formats "name  current -> latest"
func FormatUpgrade(name, current, latest string) string {
	if current == "" || latest == "" {
		return Package.Sprint(name)
	}
	return fmt.Sprintf("%s  %s -> %s", Package.Sprint(name), Dim.Sprint(current), Success.Sprint(latest))
}

// FormatIndex right-aligns a 1-based list index to width 3
func FormatIndex(i int) string {
	return fmt.Sprintf("%3d", i)
}
