package main

import (
	"fmt"
	"os"

	"github.com/obentoo/granola-cron/internal/common/config"
	"github.com/obentoo/granola-cron/internal/common/logger"
	"github.com/obentoo/granola-cron/internal/common/output"
	"github.com/spf13/cobra"
)

var (
	configFormat string
	configForce  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the installer configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run:   runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration to ~/.config/granola-cron/config.yaml
(or the path given with --config) so it can be edited.`,
	Args: cobra.NoArgs,
	Run:  runConfigInit,
}

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "yaml", "Output format: yaml or toml")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}

	data, err := cfg.Encode(configFormat)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		output.PrintWarning("Config already exists at: %s (use --force to overwrite)", path)
		return
	}

	cfg := config.Default()
	if projectDir != "" {
		cfg.Project.Dir = projectDir
	}
	if err := cfg.SaveTo(path); err != nil {
		output.PrintError("Failed to save config: %v", err)
		os.Exit(1)
	}
	output.PrintSuccess("Configuration saved to: %s", path)
}
