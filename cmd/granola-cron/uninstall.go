package main

import (
	"fmt"
	"os"

	"github.com/obentoo/granola-cron/internal/common/logger"
	"github.com/obentoo/granola-cron/internal/common/output"
	"github.com/obentoo/granola-cron/internal/registrar"
	"github.com/spf13/cobra"
)

var uninstallDryRun bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the analyzer cron job",
	Long: `Remove the analyzer entry and its comment from your crontab.

Project files, logs and feedback history are left in place. Running uninstall
when nothing is installed does nothing.`,
	Args: cobra.NoArgs,
	Run:  runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVar(&uninstallDryRun, "dry-run", false, "Show the resulting crontab without changing anything")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}

	result, err := registrar.Uninstall(cfg, registrar.Options{DryRun: uninstallDryRun})
	if err != nil {
		exitWithError(err)
	}

	if result.Removed == 0 {
		output.PrintWarning("No cron job found %s", output.FormatState("Absent"))
		return
	}

	if result.DryRun {
		output.PrintWarning("Dry run: would remove %d line(s). Crontab would read:", result.Removed)
		fmt.Println(output.FormatTable(result.Table, nil))
		return
	}

	output.PrintSuccess("Removed cron job (%d line(s))", result.Removed)
	output.PrintInfo("Project files, logs and feedback history were kept")
}
