// Package registrar installs and removes the daily analyzer entry in the
// user's cron table.
//
// Install checks its preconditions before touching anything: the dependency
// manager must be on PATH and the project's configuration file must exist.
// Either failure leaves the table untouched. Both operations are idempotent.
package registrar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/obentoo/granola-cron/internal/common/config"
	"github.com/obentoo/granola-cron/internal/common/logger"
	"github.com/obentoo/granola-cron/internal/common/shell"
	"github.com/obentoo/granola-cron/internal/crontab"
)

// InstallResult contains the outcome of an Install operation
type InstallResult struct {
	Entry             string        // Registered command line
	DependencyManager string        // Absolute path of the dependency manager
	EnvFile           string        // Configuration file that satisfied the precondition
	LogFile           string        // Redirection target of the entry
	Replaced          bool          // True if an earlier entry was replaced
	Synced            bool          // True if the dependency sync step ran
	DryRun            bool          // True if nothing was written
	Table             crontab.Table // Table as written (or as it would be)
}

// UninstallResult contains the outcome of an Uninstall operation
type UninstallResult struct {
	Removed int           // Number of lines stripped from the table
	DryRun  bool          // True if nothing was written
	Table   crontab.Table // Table after removal
}

// StatusResult describes the current registration
type StatusResult struct {
	Installed bool
	Entry     string    // Registered command line, empty when absent
	Schedule  string    // Schedule part of Entry
	NextRun   time.Time // Zero when absent or the schedule cannot be parsed
	Lines     int       // Total lines in the table
}

// Install registers the analyzer entry described by cfg using the host's
// crontab and dependency manager
func Install(cfg *config.Config, opts Options) (*InstallResult, error) {
	settings, err := SettingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	runner := shell.NewRunner()
	return InstallWith(runner, crontab.NewCommandStore(runner), settings, opts)
}

// InstallWith performs Install using the provided Executor and Store.
// This allows for testing with mock implementations.
func InstallWith(runner shell.Executor, store crontab.Store, s *Settings, opts Options) (*InstallResult, error) {
	if err := crontab.ValidateSchedule(s.Schedule); err != nil {
		return nil, err
	}

	logger.Info("Checking for %s...", s.DependencyManager)
	dmPath, err := runner.LookPath(s.DependencyManager)
	if err != nil {
		logger.Debug("lookup %s: %v", s.DependencyManager, err)
		return nil, &PreconditionError{
			Err:    ErrMissingDependencyManager,
			Detail: fmt.Sprintf("%s is not on PATH", s.DependencyManager),
			Hint:   fmt.Sprintf("Install %s and make sure it is on your PATH, then run install again.", s.DependencyManager),
		}
	}
	logger.Debug("found %s at %s", s.DependencyManager, dmPath)

	envPath := s.EnvPath()
	if err := checkConfiguration(envPath, s.TemplatePath()); err != nil {
		return nil, err
	}

	result := &InstallResult{
		DependencyManager: dmPath,
		EnvFile:           envPath,
		LogFile:           s.LogFile,
		DryRun:            opts.DryRun,
	}

	if !opts.DryRun && !opts.SkipSync {
		logger.Info("Syncing dependencies (%s)...", shell.Describe(s.DependencyManager, s.SyncArgs...))
		if _, _, err := runner.Run(s.ProjectDir, dmPath, s.SyncArgs...); err != nil {
			return nil, fmt.Errorf("syncing dependencies: %w", err)
		}
		result.Synced = true
	}

	if !opts.DryRun {
		if err := os.MkdirAll(filepath.Dir(s.LogFile), 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	table, err := store.Read()
	if err != nil {
		return nil, fmt.Errorf("reading crontab: %w", err)
	}
	logger.Debug("read %d crontab line(s)", len(table))

	entry := s.Entry(dmPath)
	result.Entry = entry.Line()
	result.Table, result.Replaced = crontab.Register(table, entry)

	if opts.DryRun {
		return result, nil
	}

	if err := store.Write(result.Table); err != nil {
		return nil, fmt.Errorf("writing crontab: %w", err)
	}
	logger.Debug("wrote %d crontab line(s)", len(result.Table))

	return result, nil
}

// checkConfiguration requires the configuration file to exist
func checkConfiguration(envPath, templatePath string) error {
	_, err := os.Stat(envPath)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	hint := fmt.Sprintf("Create %s with your API keys and settings.", envPath)
	if _, statErr := os.Stat(templatePath); statErr == nil {
		hint = fmt.Sprintf("Create it from the template: cp %s %s", templatePath, envPath)
	}

	return &PreconditionError{
		Err:    ErrMissingConfiguration,
		Detail: envPath,
		Hint:   hint,
	}
}

// Uninstall removes every analyzer line from the host's crontab
func Uninstall(cfg *config.Config, opts Options) (*UninstallResult, error) {
	runner := shell.NewRunner()
	m := Matcher(cfg)
	return UninstallWith(crontab.NewCommandStore(runner), m, opts)
}

// UninstallWith performs Uninstall using the provided Store.
// When nothing matches, the table is not written.
func UninstallWith(store crontab.Store, m crontab.Matcher, opts Options) (*UninstallResult, error) {
	table, err := store.Read()
	if err != nil {
		return nil, fmt.Errorf("reading crontab: %w", err)
	}

	filtered, removed := crontab.Remove(table, m)
	result := &UninstallResult{
		Removed: len(table) - len(filtered),
		DryRun:  opts.DryRun,
		Table:   filtered,
	}

	if !removed || opts.DryRun {
		return result, nil
	}

	if err := store.Write(filtered); err != nil {
		return nil, fmt.Errorf("writing crontab: %w", err)
	}
	logger.Debug("removed %d crontab line(s)", result.Removed)

	return result, nil
}

// Status reports whether the analyzer entry is present in the host's crontab
func Status(cfg *config.Config) (*StatusResult, error) {
	runner := shell.NewRunner()
	m := Matcher(cfg)
	return StatusWith(crontab.NewCommandStore(runner), m, time.Now())
}

// StatusWith performs Status using the provided Store, computing the next
// run relative to now
func StatusWith(store crontab.Store, m crontab.Matcher, now time.Time) (*StatusResult, error) {
	table, err := store.Read()
	if err != nil {
		return nil, fmt.Errorf("reading crontab: %w", err)
	}

	result := &StatusResult{Lines: len(table)}

	line, ok := table.FindEntry(m)
	if !ok {
		return result, nil
	}

	result.Installed = true
	result.Entry = line

	if schedule, _, ok := crontab.SplitLine(line); ok {
		result.Schedule = schedule
		if next, err := crontab.NextRun(schedule, now); err == nil {
			result.NextRun = next
		} else {
			logger.Debug("cannot compute next run: %v", err)
		}
	}

	return result, nil
}
