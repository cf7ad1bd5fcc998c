package main

import (
	"os"

	"github.com/obentoo/pkgup/internal/common/logger"
	"github.com/obentoo/pkgup/internal/manager"
	"github.com/obentoo/pkgup/internal/workflow"
	"github.com/spf13/cobra"
)

var outdatedCmd = &cobra.Command{
	Use:   "outdated",
	Short: "List outdated packages",
	Long:  `Print the packages with a newer release available, showing installed and latest versions. Nothing is upgraded.`,
	Args:  cobra.NoArgs,
	Run:   runOutdated,
}

func init() {
	rootCmd.AddCommand(outdatedCmd)
}

func runOutdated(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}
	defer logger.Default().Close()

	ctx, stop := signalContext()
	defer stop()

	outdated, err := manager.NewRunner(cfg.Manager).ListOutdated(ctx)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	workflow.WriteOutdated(os.Stdout, outdated)
}
