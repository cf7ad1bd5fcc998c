package manager

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseListOutput(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		headerLines int
		expected    []Package
	}{
		{
			name:        "empty output",
			input:       "",
			headerLines: 2,
			expected:    nil,
		},
		{
			name:        "headers only",
			input:       "Package Version\n------- -------\n",
			headerLines: 2,
			expected:    nil,
		},
		{
			name:        "installed listing",
			input:       "Package  Version\n-------  -------\nfoo  1.0.0\nbar  2.3.1",
			headerLines: 2,
			expected: []Package{
				{Name: "foo", Version: "1.0.0"},
				{Name: "bar", Version: "2.3.1"},
			},
		},
		{
			name: "outdated listing",
			input: `Package    Version Latest Type
---------- ------- ------ -----
requests   2.28.0  2.31.0 wheel
setuptools 65.5.0  69.0.3 wheel
`,
			headerLines: 2,
			expected: []Package{
				{Name: "requests", Version: "2.28.0", Latest: "2.31.0"},
				{Name: "setuptools", Version: "65.5.0", Latest: "69.0.3"},
			},
		},
		{
			name:        "blank lines are skipped",
			input:       "Package Version\n------- -------\nfoo 1.0\n\n   \nbar 2.0\n",
			headerLines: 2,
			expected: []Package{
				{Name: "foo", Version: "1.0"},
				{Name: "bar", Version: "2.0"},
			},
		},
		{
			name:        "name without version",
			input:       "Package Version\n------- -------\nlonely\n",
			headerLines: 2,
			expected:    []Package{{Name: "lonely"}},
		},
		{
			name:        "no header lines",
			input:       "foo==1.0\nbar==2.0\n",
			headerLines: 0,
			expected:    []Package{{Name: "foo==1.0"}, {Name: "bar==2.0"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseListOutput(tt.input, tt.headerLines)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ParseListOutput() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

// genPackageName generates pip-style package names
func genPackageName() gopter.Gen {
	return gen.RegexMatch(`^[a-zA-Z][a-zA-Z0-9_.-]{0,15}$`)
}

// genVersion generates dotted version strings
func genVersion() gopter.Gen {
	return gen.RegexMatch(`^[0-9]{1,3}\.[0-9]{1,3}(\.[0-9]{1,3})?$`)
}

func TestParseListOutputPreservesEntries(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("N data lines after two headers yield N packages in order", prop.ForAll(
		func(names, versions []string) bool {
			n := len(names)
			if len(versions) < n {
				n = len(versions)
			}

			var sb strings.Builder
			sb.WriteString("Package  Version\n")
			sb.WriteString("-------  -------\n")
			for i := 0; i < n; i++ {
				fmt.Fprintf(&sb, "%s  %s\n", names[i], versions[i])
			}

			result := ParseListOutput(sb.String(), 2)
			if len(result) != n {
				t.Logf("expected %d packages, got %d", n, len(result))
				return false
			}
			for i, pkg := range result {
				if pkg.Name != names[i] || pkg.Version != versions[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genPackageName()),
		gen.SliceOf(genVersion()),
	))

	properties.TestingRun(t)
}

func TestIsSelfOutdated(t *testing.T) {
	tests := []struct {
		name     string
		outdated []Package
		expected bool
	}{
		{"empty", nil, false},
		{"pip listed", []Package{{Name: "requests"}, {Name: "pip"}}, true},
		{"case insensitive", []Package{{Name: "Pip"}}, true},
		{"prefix is not a match", []Package{{Name: "pipdeptree"}, {Name: "pip-tools"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSelfOutdated(tt.outdated, "pip"); got != tt.expected {
				t.Errorf("IsSelfOutdated() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNamesAndFind(t *testing.T) {
	pkgs := []Package{{Name: "foo", Version: "1.0"}, {Name: "Bar", Version: "2.0"}}

	if got := Names(pkgs); !reflect.DeepEqual(got, []string{"foo", "Bar"}) {
		t.Errorf("Names() = %v", got)
	}
	if got := Names(nil); len(got) != 0 {
		t.Errorf("Names(nil) = %v", got)
	}

	if p := Find(pkgs, "bar"); p == nil || p.Version != "2.0" {
		t.Errorf("Find(bar) = %+v", p)
	}
	if p := Find(pkgs, "baz"); p != nil {
		t.Errorf("Find(baz) = %+v, want nil", p)
	}
}
