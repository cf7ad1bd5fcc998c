package workflow

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/obentoo/pkgup/internal/common/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	output.NoColor()

	t.Run("trims answer and echoes prompt", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader("  requests  \n"), &out)

		answer, err := p.Ask(context.Background(), "name: ")
		require.NoError(t, err)
		assert.Equal(t, "requests", answer)
		assert.Equal(t, "name: ", out.String())
	})

	t.Run("final line without newline", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("q"), io.Discard)

		answer, err := p.Ask(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "q", answer)

		_, err = p.Ask(context.Background(), "")
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("cancelled context", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewPrompter(pr, io.Discard).Ask(ctx, "")
		assert.ErrorIs(t, err, ErrInterrupted)
	})
}

func TestConfirm(t *testing.T) {
	output.NoColor()

	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{" YES \n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"yep\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			ok, err := p.Confirm(context.Background(), "Continue?")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.True(t, strings.HasPrefix(out.String(), "Continue? (y/n): "))
		})
	}
}

func TestIsYesRejectsEverythingElse(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("answers other than y/yes never confirm", prop.ForAll(
		func(answer string) bool {
			return !IsYes(answer)
		},
		gen.AnyString().SuchThat(func(s string) bool {
			v := strings.ToLower(strings.TrimSpace(s))
			return v != "y" && v != "yes"
		}),
	))

	properties.TestingRun(t)
}

func TestIsQuit(t *testing.T) {
	for _, answer := range []string{"q", "Q", "quit", "QUIT", " Quit "} {
		assert.True(t, IsQuit(answer), answer)
	}
	for _, answer := range []string{"", "x", "exit", "qq", "no"} {
		assert.False(t, IsQuit(answer), answer)
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single", "requests", []string{"requests"}},
		{"spaces around names", " requests ,  urllib3 ", []string{"requests", "urllib3"}},
		{"blank entries dropped", "a,,b, ,", []string{"a", "b"}},
		{"empty", "", nil},
		{"only commas", " , , ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSelection(tt.input))
		})
	}
}
