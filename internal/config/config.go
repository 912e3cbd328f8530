package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LogLevel represents the log level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// NotificationsConfig controls desktop notifications for update events.
type NotificationsConfig struct {
	Enabled         *bool `yaml:"enabled,omitempty"`
	UpdateAvailable *bool `yaml:"update_available,omitempty"`
	InstallFinished *bool `yaml:"install_finished,omitempty"`
}

// Config represents the launcher's own settings, persisted as launcher.yaml
// next to the executable. Game profiles live in their own JSON store
// (internal/profile); this file only carries launcher behavior.
type Config struct {
	LogLevel         LogLevel            `yaml:"log_level"`
	LogDir           string              `yaml:"log_dir"`
	LogRetentionDays int                 `yaml:"log_retention_days"`
	LogStdout        *bool               `yaml:"log_stdout,omitempty"`
	Language         string              `yaml:"language,omitempty"`
	Notifications    NotificationsConfig `yaml:"notifications"`

	baseDir string
}

const settingsFileName = "launcher.yaml"

// Default returns the default launcher configuration rooted at baseDir.
func Default(baseDir string) *Config {
	return &Config{
		LogLevel:         LogLevelInfo,
		LogDir:           filepath.Join(baseDir, "logs"),
		LogRetentionDays: 7,
		baseDir:          baseDir,
	}
}

// Load loads launcher.yaml from baseDir. A missing file yields defaults;
// a malformed file is an error so typos do not silently reset settings.
func Load(baseDir string) (*Config, error) {
	cfg := Default(baseDir)

	path := filepath.Join(baseDir, settingsFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read launcher settings: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse launcher settings: %w", err)
	}

	// Apply defaults if not set
	if cfg.LogLevel == "" {
		cfg.LogLevel = LogLevelInfo
	}
	if strings.TrimSpace(cfg.LogDir) == "" {
		cfg.LogDir = filepath.Join(baseDir, "logs")
	}
	if cfg.LogRetentionDays <= 0 {
		cfg.LogRetentionDays = 7
	}
	cfg.baseDir = baseDir

	return cfg, nil
}

// Save writes launcher.yaml atomically (tmp + rename).
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	path := filepath.Join(c.baseDir, settingsFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		// valid
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if c.LogRetentionDays < 1 {
		return fmt.Errorf("invalid log_retention_days: %d", c.LogRetentionDays)
	}
	return nil
}

// BaseDir returns the directory this configuration is rooted at.
func (c *Config) BaseDir() string {
	return c.baseDir
}

// NotificationsEnabled reports whether desktop notifications are on (default true).
func (c *Config) NotificationsEnabled() bool {
	if c.Notifications.Enabled == nil {
		return true
	}
	return *c.Notifications.Enabled
}

// NotifyUpdateAvailable reports whether update-available notifications are on.
func (c *Config) NotifyUpdateAvailable() bool {
	if !c.NotificationsEnabled() {
		return false
	}
	if c.Notifications.UpdateAvailable == nil {
		return true
	}
	return *c.Notifications.UpdateAvailable
}

// NotifyInstallFinished reports whether install-finished notifications are on.
func (c *Config) NotifyInstallFinished() bool {
	if !c.NotificationsEnabled() {
		return false
	}
	if c.Notifications.InstallFinished == nil {
		return true
	}
	return *c.Notifications.InstallFinished
}
