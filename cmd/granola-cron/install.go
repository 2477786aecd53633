package main

import (
	"fmt"
	"os"

	"github.com/obentoo/granola-cron/internal/common/logger"
	"github.com/obentoo/granola-cron/internal/common/output"
	"github.com/obentoo/granola-cron/internal/crontab"
	"github.com/obentoo/granola-cron/internal/registrar"
	"github.com/spf13/cobra"
)

var (
	installDryRun   bool
	installSkipSync bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register the daily analyzer cron job",
	Long: `Check prerequisites, sync dependencies and register the analyzer in your crontab.

Running install again replaces the existing entry instead of adding a second one.`,
	Args: cobra.NoArgs,
	Run:  runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "Show the resulting crontab without changing anything")
	installCmd.Flags().BoolVar(&installSkipSync, "skip-sync", false, "Do not sync dependencies before registering")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}

	result, err := registrar.Install(cfg, registrar.Options{
		DryRun:   installDryRun,
		SkipSync: installSkipSync,
	})
	if err != nil {
		exitWithError(err)
	}

	output.PrintSuccess("Found dependency manager: %s", result.DependencyManager)
	output.PrintSuccess("Configuration file: %s", result.EnvFile)
	if result.Synced {
		output.PrintSuccess("Dependencies synced")
	}

	if result.DryRun {
		m := registrar.Matcher(cfg)
		output.PrintWarning("Dry run: crontab not modified. It would read:")
		fmt.Println(output.FormatTable(result.Table, m.Matches))
		return
	}

	if result.Replaced {
		output.PrintSuccess("Updated existing cron job %s", output.FormatState("Replaced"))
	} else {
		output.PrintSuccess("Installed cron job %s", output.FormatState("Installed"))
	}

	output.Box(crontab.DisplayName,
		result.Entry,
		"",
		"Logs: "+result.LogFile,
		"Remove with: granola-cron uninstall",
	)
}

// exitWithError prints err with its remediation hint and exits non-zero
func exitWithError(err error) {
	output.PrintError("%v", err)
	if hint := registrar.Hint(err); hint != "" {
		output.PrintInfo("%s", hint)
	}
	os.Exit(1)
}
