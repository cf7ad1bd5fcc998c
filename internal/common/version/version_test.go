package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	Version, Commit = "1.2.3", "abc123"
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	info := Info()
	lines := strings.Split(info, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), info)
	}
	if lines[0] != "pkgup version 1.2.3" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "abc123") {
		t.Errorf("commit missing from %q", lines[1])
	}
	if !strings.Contains(lines[3], runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("platform missing from %q", lines[3])
	}
	if Short() != "1.2.3" {
		t.Errorf("Short() = %q", Short())
	}
}
