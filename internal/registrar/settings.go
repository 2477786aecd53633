package registrar

import (
	"path/filepath"

	"github.com/obentoo/granola-cron/internal/common/config"
	"github.com/obentoo/granola-cron/internal/crontab"
)

// Settings is the resolved input of the registrar operations
type Settings struct {
	ProjectDir        string   // absolute
	EnvFile           string   // relative to ProjectDir unless absolute
	EnvTemplate       string   // relative to ProjectDir unless absolute
	DependencyManager string   // executable name looked up on PATH
	SyncArgs          []string // arguments of the dependency sync step
	Script            string
	Schedule          string
	LogFile           string // absolute
}

// Options alter how Install and Uninstall apply their result
type Options struct {
	DryRun   bool // compute the new table without syncing or writing
	SkipSync bool // do not run the dependency sync step
}

// SettingsFromConfig resolves paths in cfg against the project directory
func SettingsFromConfig(cfg *config.Config) (*Settings, error) {
	projectDir, err := cfg.ProjectPath()
	if err != nil {
		return nil, err
	}

	return &Settings{
		ProjectDir:        projectDir,
		EnvFile:           cfg.Project.EnvFile,
		EnvTemplate:       cfg.Project.EnvTemplate,
		DependencyManager: cfg.DependencyManager.Name,
		SyncArgs:          cfg.DependencyManager.SyncArgs,
		Script:            cfg.Project.Script,
		Schedule:          cfg.Schedule,
		LogFile:           cfg.LogPath(projectDir),
	}, nil
}

// EnvPath returns the absolute path of the configuration file
func (s *Settings) EnvPath() string {
	return s.resolve(s.EnvFile)
}

// TemplatePath returns the absolute path of the configuration template
func (s *Settings) TemplatePath() string {
	return s.resolve(s.EnvTemplate)
}

func (s *Settings) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.ProjectDir, name)
}

// Matcher recognizes table lines written for the script configured in cfg.
// It does not need the project directory, so uninstall works after the
// project has been removed.
func Matcher(cfg *config.Config) crontab.Matcher {
	return crontab.NewMatcher(cfg.Project.Script, crontab.DefaultScript)
}

// Entry builds the table entry invoking the analyzer through dmPath
func (s *Settings) Entry(dmPath string) crontab.Entry {
	return crontab.Entry{
		Schedule:          s.Schedule,
		ProjectDir:        s.ProjectDir,
		DependencyManager: dmPath,
		Script:            s.Script,
		LogFile:           s.LogFile,
	}
}
