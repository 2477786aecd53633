package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrProjectDirNotFound = errors.New("project directory does not exist")
	ErrUnsupportedFormat  = errors.New("unsupported config format: use .yaml, .yml or .toml")
)

// Config represents the installer configuration
type Config struct {
	Project           ProjectConfig           `yaml:"project" toml:"project"`
	DependencyManager DependencyManagerConfig `yaml:"dependency_manager" toml:"dependency_manager"`
	Schedule          string                  `yaml:"schedule" toml:"schedule"`
	LogFile           string                  `yaml:"log_file" toml:"log_file"` // Relative paths resolve against the project directory
}

// ProjectConfig locates the analyzer project
type ProjectConfig struct {
	Dir         string `yaml:"dir" toml:"dir"`                   // Empty means the working directory
	EnvFile     string `yaml:"env_file" toml:"env_file"`         // Must exist before install
	EnvTemplate string `yaml:"env_template" toml:"env_template"` // Suggested when EnvFile is missing
	Script      string `yaml:"script" toml:"script"`
}

// DependencyManagerConfig names the tool that syncs and runs the project
type DependencyManagerConfig struct {
	Name     string   `yaml:"name" toml:"name"`
	SyncArgs []string `yaml:"sync_args" toml:"sync_args"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			EnvFile:     ".env",
			EnvTemplate: ".env.example",
			Script:      "analyze_meetings.py",
		},
		DependencyManager: DependencyManagerConfig{
			Name:     "uv",
			SyncArgs: []string{"sync"},
		},
		Schedule: "0 17 * * *",
		LogFile:  filepath.Join("logs", "cron.log"),
	}
}

// applyDefaults fills fields left empty by a config file
func (c *Config) applyDefaults() {
	d := Default()
	if c.Project.EnvFile == "" {
		c.Project.EnvFile = d.Project.EnvFile
	}
	if c.Project.EnvTemplate == "" {
		c.Project.EnvTemplate = d.Project.EnvTemplate
	}
	if c.Project.Script == "" {
		c.Project.Script = d.Project.Script
	}
	if c.DependencyManager.Name == "" {
		c.DependencyManager.Name = d.DependencyManager.Name
	}
	if len(c.DependencyManager.SyncArgs) == 0 {
		c.DependencyManager.SyncArgs = d.DependencyManager.SyncArgs
	}
	if c.Schedule == "" {
		c.Schedule = d.Schedule
	}
	if c.LogFile == "" {
		c.LogFile = d.LogFile
	}
}

// ConfigPaths returns all possible config file paths in priority order
// 1. ~/.config/granola-cron/config.yaml (XDG standard - priority)
// 2. ~/.config/granola-cron/config.toml
// 3. ~/.granola-cron/config.yaml (legacy fallback)
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "granola-cron", "config.yaml"),
		filepath.Join(xdgConfig, "granola-cron", "config.toml"),
		filepath.Join(home, ".granola-cron", "config.yaml"),
	}, nil
}

// DefaultConfigPath returns the default config file path (XDG standard)
func DefaultConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// FindConfigPath returns the first existing config file path.
// Returns the default path if no config file exists yet.
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return paths[0], nil
}

// Load reads configuration from the first available config file
func Load() (*Config, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path.
// A missing file yields Default without creating it.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	switch formatOf(path) {
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// SaveTo writes configuration to a specific file path in the format its
// extension names
func (c *Config) SaveTo(path string) error {
	data, err := c.Encode(formatOf(path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode renders the configuration as "yaml" or "toml"
func (c *Config) Encode(format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(c)
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}

// ProjectPath returns the absolute, existing project directory
func (c *Config) ProjectPath() (string, error) {
	path := c.Project.Dir
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = wd
	}

	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrProjectDirNotFound, path)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrProjectDirNotFound, path)
	}

	return path, nil
}

// LogPath returns the cron log file for the given project directory
func (c *Config) LogPath(projectDir string) string {
	if filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(projectDir, c.LogFile)
}
