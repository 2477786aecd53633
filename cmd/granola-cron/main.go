package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/obentoo/granola-cron/internal/common/config"
	"github.com/obentoo/granola-cron/internal/common/logger"
	"github.com/obentoo/granola-cron/internal/common/output"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	quiet      bool
	noColor    bool
	forceColor bool
	configPath string
	projectDir string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "granola-cron",
	Short: "Schedule the Granola meeting analyzer",
	Long: `Install or remove the daily cron job that runs the Granola meeting analyzer.

install checks that the dependency manager is on PATH and that the project's
.env file exists, syncs dependencies, then registers a single crontab entry.
uninstall removes that entry and leaves project files, logs and feedback alone.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
		}
		if forceColor {
			output.ForceColor()
		}
		if noColor {
			output.NoColor()
		}
		if cmd.Flags().Changed("log-file") {
			if err := logger.EnableFileLogging(strings.TrimSpace(logFile)); err != nil {
				logger.Warn("file logging disabled: %v", err)
			}
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&forceColor, "color", false, "Force colored output when stdout is not a terminal")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "Analyzer project directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append a log to this file (default location when given without a value)")
	rootCmd.PersistentFlags().Lookup("log-file").NoOptDefVal = " "
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if configPath != "" {
		if _, statErr := os.Stat(configPath); statErr != nil {
			return nil, statErr
		}
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if projectDir != "" {
		cfg.Project.Dir = projectDir
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
