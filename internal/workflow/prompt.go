package workflow

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/obentoo/pkgup/internal/common/output"
)

// ErrInterrupted is returned when the operator cancels while pkgup waits
// on input or on the package manager.
var ErrInterrupted = errors.New("interrupted by operator")

// Prompter reads operator answers line by line
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

type readResult struct {
	line string
	err  error
}

// Ask prints prompt and returns the trimmed answer.
// io.EOF is returned once input is exhausted; a final line without a
// trailing newline is still returned as an answer.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, output.Sprint(output.Prompt, prompt))

	// The read runs aside so an interrupt is noticed while it blocks.
	ch := make(chan readResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ErrInterrupted
	case r := <-ch:
		answer := strings.TrimSpace(r.line)
		if r.err != nil {
			if errors.Is(r.err, io.EOF) && answer != "" {
				return answer, nil
			}
			return answer, r.err
		}
		return answer, nil
	}
}

// Confirm asks a y/n question. Only y or yes (any case) confirms; every
// other answer, including end of input, declines without re-prompting.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.Ask(ctx, question+" (y/n): ")
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// IsYes reports whether answer is y or yes, case-insensitively
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// IsQuit reports whether answer is q or quit, case-insensitively
func IsQuit(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "q", "quit":
		return true
	}
	return false
}

// ParseSelection splits a comma separated package list, dropping blanks
func ParseSelection(input string) []string {
	var names []string
	for _, part := range strings.Split(input, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
