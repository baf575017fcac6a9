// Package core contains configuration handling for tasklite.
package core

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the settings read from .tasklite.yaml.
type Config struct {
	// DataDir is where the key-value backend stores its entries,
	// relative to the base path unless absolute.
	DataDir string

	// TasksKey and FilterKey name the persisted entries. Overriding them
	// lets several task lists share one data directory.
	TasksKey  string
	FilterKey string

	EventLogEnabled bool
	EventLogPath    string

	NoColor bool
}

// ConfigurationManager loads tasklite configuration from disk.
type ConfigurationManager interface {
	Load() (*Config, error)
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// .tasklite.yaml from basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns a Config populated with defaults for the given
// base path.
func DefaultConfig(basePath string) *Config {
	return &Config{
		DataDir:         filepath.Join(basePath, "data"),
		TasksKey:        "tasks",
		FilterKey:       "filter",
		EventLogEnabled: true,
		EventLogPath:    filepath.Join(basePath, ".tasklite_events.jsonl"),
		NoColor:         false,
	}
}

// Load reads .tasklite.yaml from the base path. If the file does not
// exist, defaults are returned.
func (cm *viperConfigManager) Load() (*Config, error) {
	cfg := DefaultConfig(cm.basePath)

	v := viper.New()
	v.SetConfigName(".tasklite")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("keys.tasks", cfg.TasksKey)
	v.SetDefault("keys.filter", cfg.FilterKey)
	v.SetDefault("event_log.enabled", cfg.EventLogEnabled)
	v.SetDefault("event_log.path", cfg.EventLogPath)
	v.SetDefault("no_color", cfg.NoColor)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .tasklite.yaml: %w", err)
	}

	cfg.DataDir = v.GetString("data_dir")
	cfg.TasksKey = v.GetString("keys.tasks")
	cfg.FilterKey = v.GetString("keys.filter")
	cfg.EventLogEnabled = v.GetBool("event_log.enabled")
	cfg.EventLogPath = v.GetString("event_log.path")
	cfg.NoColor = v.GetBool("no_color")

	// Relative paths are anchored at the base path.
	if !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(cm.basePath, cfg.DataDir)
	}
	if cfg.EventLogPath != "" && !filepath.IsAbs(cfg.EventLogPath) {
		cfg.EventLogPath = filepath.Join(cm.basePath, cfg.EventLogPath)
	}

	return cfg, nil
}
