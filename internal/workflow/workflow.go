// Package workflow drives a package manager through the pkgup update
// session: manager self-check, outdated discovery, upgrades and reporting.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/obentoo/pkgup/internal/common/logger"
	"github.com/obentoo/pkgup/internal/common/output"
	"github.com/obentoo/pkgup/internal/manager"
)

// Workflow runs one update session against a package manager
type Workflow struct {
	executor manager.Executor
	prompter *Prompter
	out      io.Writer
	auto     bool
	session  *Session
}

// Option is a functional option for configuring Workflow
type Option func(*Workflow)

// WithAuto selects non-interactive mode: upgrades run without prompting
// and the display steps are skipped.
func WithAuto(auto bool) Option {
	return func(w *Workflow) {
		w.auto = auto
	}
}

// New creates a Workflow. Reports go to out; operator answers are read
// through prompter.
func New(executor manager.Executor, prompter *Prompter, out io.Writer, opts ...Option) *Workflow {
	w := &Workflow{
		executor: executor,
		prompter: prompter,
		out:      out,
		session:  &Session{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Session returns the update log collected so far
func (w *Workflow) Session() *Session {
	return w.session
}

// Run executes the whole session and returns its update log.
// Errors wrapping manager.ErrManagerUnavailable are fatal; ErrInterrupted
// means the operator cancelled.
func (w *Workflow) Run(ctx context.Context) (*Session, error) {
	fmt.Fprintln(w.out, output.Sprint(output.Header, "Welcome to the Python Package Updater!"))

	if err := w.CheckManager(ctx); err != nil {
		return w.session, err
	}

	outdated, err := w.CheckOutdated(ctx)
	if err != nil {
		return w.session, err
	}

	if len(outdated) > 0 {
		if err := w.offerUpdates(ctx, outdated); err != nil {
			return w.session, err
		}
	}

	if !w.auto {
		if err := w.ShowInstalled(ctx); err != nil {
			return w.session, err
		}
		if err := w.ShowUpdated(ctx); err != nil {
			return w.session, err
		}
	}

	return w.session, w.WaitForQuit(ctx)
}

// CheckManager upgrades the manager itself when it reports itself outdated,
// asking first unless running in auto mode.
func (w *Workflow) CheckManager(ctx context.Context) error {
	self := w.executor.SelfName()
	fmt.Fprintf(w.out, "\nChecking if %s is outdated...\n", self)

	outdated, err := w.executor.ListOutdated(ctx)
	if err != nil {
		return interrupted(ctx, err)
	}

	if !manager.IsSelfOutdated(outdated, self) {
		fmt.Fprintf(w.out, "-> %s package is up to date\n", self)
		return nil
	}

	fmt.Fprintf(w.out, "-> The %s package is %s.\n", self, output.Sprint(output.Outdated, "outdated"))

	if !w.auto {
		ok, err := w.prompter.Confirm(ctx, "Would you like to update it?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(w.out, "-> %s update %s\n", self, output.Sprint(output.Skipped, "skipped."))
			return nil
		}
	} else {
		fmt.Fprintln(w.out, "-> Auto updating")
	}

	if err := w.executor.UpgradeSelf(ctx); err != nil {
		if ctx.Err() != nil {
			return ErrInterrupted
		}
		w.session.recordFailed(self)
		logger.Error("%s update failed: %v", self, err)
		return nil
	}

	w.session.recordUpdated(self)
	logger.Debug("upgraded %s", self)
	return nil
}

// ListInstalled returns the installed packages with their versions
func (w *Workflow) ListInstalled(ctx context.Context) ([]manager.Package, error) {
	installed, err := w.executor.ListInstalled(ctx)
	if err != nil {
		return nil, interrupted(ctx, err)
	}
	return installed, nil
}

// CheckOutdated reports the outdated packages and returns them in listing order
func (w *Workflow) CheckOutdated(ctx context.Context) ([]manager.Package, error) {
	fmt.Fprintln(w.out, "\nChecking for outdated packages...")

	outdated, err := w.executor.ListOutdated(ctx)
	if err != nil {
		return nil, interrupted(ctx, err)
	}

	WriteOutdated(w.out, outdated)
	if len(outdated) == 0 {
		return nil, nil
	}
	return outdated, nil
}

// offerUpdates walks the ConfirmAll / ConfirmSubset branch. Upgrade
// failures are reported and the session continues.
func (w *Workflow) offerUpdates(ctx context.Context, outdated []manager.Package) error {
	var err error

	switch {
	case w.auto:
		fmt.Fprintln(w.out, "-> Auto updating")
		err = w.UpdateAll(ctx, outdated)

	default:
		all, cerr := w.prompter.Confirm(ctx, "Would you like to update all of them?")
		if cerr != nil {
			return cerr
		}
		if all {
			err = w.UpdateAll(ctx, outdated)
			break
		}

		some, cerr := w.prompter.Confirm(ctx, "Would you like to update any package?")
		if cerr != nil {
			return cerr
		}
		if !some {
			fmt.Fprintln(w.out, "-> "+output.Sprint(output.Skipped, "Skipped."))
			fmt.Fprintln(w.out)
			return nil
		}

		answer, aerr := w.prompter.Ask(ctx, "Enter the packages you want to update (separated by commas): ")
		if aerr != nil && !errors.Is(aerr, io.EOF) {
			return aerr
		}
		names := ParseSelection(answer)
		if len(names) == 0 {
			fmt.Fprintln(w.out, "-> "+output.Sprint(output.Skipped, "Skipped."))
			fmt.Fprintln(w.out)
			return nil
		}
		err = w.UpdateSubset(ctx, names, outdated)
	}

	if errors.Is(err, ErrInterrupted) {
		return err
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		fmt.Fprintln(w.out, output.Sprintf(output.Error, "Error: failed to update %d package(s).", len(merr.Errors)))
		logger.Debug("%v", merr)
	}
	return nil
}

// UpdateAll upgrades every package of the outdated set in listing order.
// The returned error aggregates per-package failures.
func (w *Workflow) UpdateAll(ctx context.Context, outdated []manager.Package) error {
	fmt.Fprintln(w.out, "\nUpdating all outdated packages...")
	fmt.Fprintln(w.out)

	err := w.upgradeEach(ctx, manager.Names(outdated))
	if errors.Is(err, ErrInterrupted) {
		return err
	}

	fmt.Fprintln(w.out, "\nUpdating packages complete!")
	fmt.Fprintln(w.out)
	return err
}

// UpdateSubset upgrades the operator-chosen packages in the order given.
// Names missing from the outdated set are still passed to the manager.
func (w *Workflow) UpdateSubset(ctx context.Context, names []string, outdated []manager.Package) error {
	for _, name := range names {
		if manager.Find(outdated, name) == nil {
			fmt.Fprintln(w.out, output.Sprintf(output.Warning, "-> %s is not in the outdated list", name))
		}
	}
	fmt.Fprintln(w.out)

	err := w.upgradeEach(ctx, names)
	if errors.Is(err, ErrInterrupted) {
		return err
	}

	for _, pkg := range outdated {
		if !slices.ContainsFunc(names, func(n string) bool { return strings.EqualFold(n, pkg.Name) }) {
			fmt.Fprintf(w.out, "%s %s\n", output.FormatState("skipped"), pkg.Name)
		}
	}

	fmt.Fprintln(w.out, "\nUpdating packages complete!")
	fmt.Fprintln(w.out)
	return err
}

// upgradeEach upgrades names one at a time, recording each outcome in the
// session. Only successful upgrades enter the update log.
func (w *Workflow) upgradeEach(ctx context.Context, names []string) error {
	var result *multierror.Error
	total := len(names)

	for i, name := range names {
		fmt.Fprintf(w.out, "Package %d/%d: %s\n", i+1, total, output.FormatPackage(name, ""))

		if err := w.executor.Upgrade(ctx, name); err != nil {
			if ctx.Err() != nil {
				return ErrInterrupted
			}
			w.session.recordFailed(name)
			result = multierror.Append(result, err)
			fmt.Fprintf(w.out, "%s %s\n\n", output.FormatState("failed"), name)
			logger.Error("failed to update %s: %v", name, err)
			continue
		}

		w.session.recordUpdated(name)
		logger.Debug("upgraded %s", name)
		fmt.Fprintf(w.out, "%s %s\n\n", output.FormatState("upgraded"), name)
	}

	return result.ErrorOrNil()
}

// ShowInstalled offers to print the installed packages
func (w *Workflow) ShowInstalled(ctx context.Context) error {
	ok, err := w.prompter.Confirm(ctx, "Show installed packages?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w.out, "-> "+output.Sprint(output.Skipped, "Skipped."))
		fmt.Fprintln(w.out)
		return nil
	}

	fmt.Fprintln(w.out, "\nShowing installed packages...")
	fmt.Fprintln(w.out)

	installed, err := w.ListInstalled(ctx)
	if err != nil {
		return err
	}

	WriteInstalled(w.out, installed)
	return nil
}

// ShowUpdated offers to print the session update log, followed by any
// packages whose upgrade failed
func (w *Workflow) ShowUpdated(ctx context.Context) error {
	if !w.session.HasUpdates() {
		fmt.Fprintln(w.out, "-> No packages have been updated.")
	} else {
		ok, err := w.prompter.Confirm(ctx, "Show updated packages?")
		if err != nil {
			return err
		}
		if ok {
			total := len(w.session.Updated)
			for i, name := range w.session.Updated {
				fmt.Fprintf(w.out, "%s/%d: %s\n", output.FormatIndex(i+1), total, output.FormatPackage(name, ""))
			}
		}
	}

	for _, name := range w.session.Failed {
		fmt.Fprintf(w.out, "%s %s\n", output.FormatState("failed"), name)
	}
	return nil
}

// WaitForQuit prompts until the operator enters q or quit, or input ends
func (w *Workflow) WaitForQuit(ctx context.Context) error {
	for {
		answer, err := w.prompter.Ask(ctx, "\nEnter 'q' to quit program: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w.out)
			break
		}
		if err != nil {
			return err
		}
		if IsQuit(answer) {
			break
		}
	}

	fmt.Fprintln(w.out, "Program Terminated.")
	fmt.Fprintln(w.out)
	return nil
}

// interrupted maps manager errors caused by cancellation to ErrInterrupted
func interrupted(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ErrInterrupted
	}
	return err
}
