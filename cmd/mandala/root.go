package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mandala/internal/logkit"
)

var (
	logFile string
	verbose bool

	// logger is rebuilt in PersistentPreRun so every subcommand sees
	// the resolved flags.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "mandala",
	Short:         "Deterministic paint-by-numbers puzzle generator",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logkit.New(verbose, logFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this rotating file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
