package main

import (
	"os"

	"github.com/obentoo/granola-cron/internal/common/logger"
	"github.com/obentoo/granola-cron/internal/common/output"
	"github.com/obentoo/granola-cron/internal/crontab"
	"github.com/obentoo/granola-cron/internal/registrar"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the analyzer cron job is installed",
	Args:  cobra.NoArgs,
	Run:   runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}

	result, err := registrar.Status(cfg)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	if !result.Installed {
		output.Box(crontab.DisplayName,
			"State: "+output.FormatState("Absent"),
			"Install with: granola-cron install",
		)
		return
	}

	lines := []string{
		"State:    " + output.FormatState("Installed"),
		"Entry:    " + result.Entry,
		"Schedule: " + result.Schedule,
	}
	if !result.NextRun.IsZero() {
		lines = append(lines, "Next run: "+result.NextRun.Format("Mon 2006-01-02 15:04 MST"))
	}
	output.Box(crontab.DisplayName, lines...)
}
