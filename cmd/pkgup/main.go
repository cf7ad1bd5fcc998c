package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/obentoo/pkgup/internal/common/config"
	"github.com/obentoo/pkgup/internal/common/logger"
	"github.com/obentoo/pkgup/internal/common/output"
	"github.com/obentoo/pkgup/internal/common/version"
	"github.com/obentoo/pkgup/internal/manager"
	"github.com/obentoo/pkgup/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	quiet      bool
	noColor    bool
	forceColor bool
	configPath string
	managerCmd string
	autoFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "pkgup [auto]",
	Short: "Keep pip packages up to date",
	Long: `Check pip and the installed Python packages for updates and upgrade
all of them or a chosen subset.

Run "pkgup auto" (or pass --auto) to upgrade everything without prompting.`,
	Version: version.Short(),
	Args:    cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
		}
		switch {
		case noColor:
			output.NoColor()
		case forceColor:
			output.ForceColor()
		case !output.IsTerminal():
			output.NoColor()
		}
	},
	Run: runUpdate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&forceColor, "color", false, "Force colored output when stdout is not a terminal")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&managerCmd, "manager", "", "Package manager command, e.g. \"pip3\" or \"python3 -m pip\"")

	rootCmd.Flags().BoolVar(&autoFlag, "auto", false, "Upgrade everything without prompting")
}

func runUpdate(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}
	defer logger.Default().Close()

	auto := isAuto(autoFlag || cfg.Auto, args)

	ctx, stop := signalContext()
	defer stop()

	w := workflow.New(
		manager.NewRunner(cfg.Manager),
		workflow.NewPrompter(os.Stdin, os.Stdout),
		os.Stdout,
		workflow.WithAuto(auto),
	)

	session, err := w.Run(ctx)
	switch {
	case errors.Is(err, workflow.ErrInterrupted):
		fmt.Println("Program Terminated.")
		return
	case err != nil:
		logger.Error("%v", err)
		os.Exit(1)
	}

	logger.Debug("session finished: %d updated, %d failed", len(session.Updated), len(session.Failed))
}

// isAuto reports whether the run is non-interactive. The first positional
// token selects auto mode when it equals "auto" in any case.
func isAuto(flag bool, args []string) bool {
	if flag {
		return true
	}
	return len(args) > 0 && strings.EqualFold(args[0], "auto")
}

// loadConfig reads the config file, applies command-line overrides and
// enables the log file when configured
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	cfg.SetManagerCommand(managerCmd)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.LogFile {
		if err := logger.Default().EnableFileLogging(); err != nil {
			logger.Warn("log file disabled: %v", err)
		}
	}
	return cfg, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
