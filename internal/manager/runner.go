package manager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/obentoo/pkgup/internal/common/config"
	"github.com/obentoo/pkgup/internal/common/logger"
)

var (
	ErrManagerUnavailable = errors.New("package manager is unavailable")
	ErrUpgradeFailed      = errors.New("upgrade failed")
)

// Runner executes package manager commands described by a manager profile
type Runner struct {
	profile config.ManagerConfig
	stdout  io.Writer
	stderr  io.Writer
}

// RunnerOption is a functional option for configuring Runner
type RunnerOption func(*Runner)

// WithOutput sets where upgrade output is streamed
func WithOutput(stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewRunner creates a new Runner for the given manager profile
func NewRunner(profile config.ManagerConfig, opts ...RunnerOption) *Runner {
	r := &Runner{
		profile: profile,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SelfName returns the name the manager uses for itself in listings
func (r *Runner) SelfName() string {
	return r.profile.SelfName
}

// ListInstalled returns every installed package in listing order
func (r *Runner) ListInstalled(ctx context.Context) ([]Package, error) {
	return r.list(ctx, r.profile.ListArgs)
}

// ListOutdated returns the packages the manager reports as outdated
func (r *Runner) ListOutdated(ctx context.Context) ([]Package, error) {
	return r.list(ctx, r.profile.OutdatedArgs)
}

// Upgrade upgrades a single package, streaming the manager's output
func (r *Runner) Upgrade(ctx context.Context, name string) error {
	argv := append(r.argv(r.profile.UpgradeArgs...), name)
	return r.stream(ctx, argv)
}

// UpgradeSelf upgrades the manager itself, streaming the manager's output
func (r *Runner) UpgradeSelf(ctx context.Context) error {
	argv := r.profile.SelfUpgradeCommand
	if len(argv) == 0 {
		argv = append(r.argv(r.profile.UpgradeArgs...), r.profile.SelfName)
	}
	return r.stream(ctx, argv)
}

func (r *Runner) list(ctx context.Context, args []string) ([]Package, error) {
	stdout, err := r.capture(ctx, r.argv(args...))
	if err != nil {
		return nil, errors.Join(ErrManagerUnavailable, err)
	}
	return ParseListOutput(stdout, r.profile.HeaderLines), nil
}

// argv returns the manager command followed by args
func (r *Runner) argv(args ...string) []string {
	argv := make([]string, 0, len(r.profile.Command)+len(args))
	argv = append(argv, r.profile.Command...)
	return append(argv, args...)
}

// capture executes a command and returns its stdout
func (r *Runner) capture(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", config.ErrManagerCommandNotSet
	}
	logger.Debug("running %s", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	if err != nil {
		// Wrap the error with stderr for context
		if stderr := strings.TrimSpace(stderrBuf.String()); stderr != "" {
			err = errors.Join(err, errors.New(stderr))
		}
		return "", err
	}

	return stdoutBuf.String(), nil
}

// stream executes a command with its output attached to the runner writers
func (r *Runner) stream(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return config.ErrManagerCommandNotSet
	}
	logger.Debug("running %s", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUpgradeFailed, argv[len(argv)-1], err)
	}
	return nil
}

// Ensure Runner implements Executor interface
var _ Executor = (*Runner)(nil)
