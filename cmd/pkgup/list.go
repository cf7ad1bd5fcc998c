package main

import (
	"os"

	"github.com/obentoo/pkgup/internal/common/logger"
	"github.com/obentoo/pkgup/internal/manager"
	"github.com/obentoo/pkgup/internal/workflow"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages",
	Long:  `Print every installed package with its version, in the order the package manager reports them.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}
	defer logger.Default().Close()

	ctx, stop := signalContext()
	defer stop()

	installed, err := manager.NewRunner(cfg.Manager).ListInstalled(ctx)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	workflow.WriteInstalled(os.Stdout, installed)
}
