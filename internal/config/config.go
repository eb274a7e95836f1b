// Package config provides configuration types, defaults, and persistence
// for namesmith.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fenwick/namesmith/internal/log"
	"github.com/fenwick/namesmith/internal/tracing"
)

// Config holds all configuration options for namesmith.
type Config struct {
	// ProjectPath is the project JSON document to open. Empty means the
	// default location under the config directory.
	ProjectPath string `mapstructure:"project_path"`

	// ActiveNameSet is the last active set, restored on startup.
	ActiveNameSet string `mapstructure:"active_name_set"`

	AutoReload         bool          `mapstructure:"auto_reload"`
	AutoReloadDebounce int           `mapstructure:"auto_reload_debounce"` // milliseconds
	Export             ExportConfig  `mapstructure:"export"`
	UI                 UIConfig      `mapstructure:"ui"`
	Theme              ThemeConfig   `mapstructure:"theme"`
	History            HistoryConfig `mapstructure:"history"`
	Tracing            tracing.Config `mapstructure:"tracing"`
}

// ExportConfig holds export behavior options.
type ExportConfig struct {
	// MaxRows refuses exports whose cross-product exceeds this many rows.
	// 0 disables the bound.
	MaxRows int64 `mapstructure:"max_rows"`

	// IncludeHeader writes the element-name header row in CSV exports.
	IncludeHeader bool `mapstructure:"include_header"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig overrides individual UI colors. Empty values keep defaults.
type ThemeConfig struct {
	Muted   string `mapstructure:"muted"`
	Error   string `mapstructure:"error"`
	Success string `mapstructure:"success"`
}

// HistoryConfig holds export history database options.
type HistoryConfig struct {
	// Enabled records completed exports in the history database.
	Enabled bool `mapstructure:"enabled"`

	// Path overrides the database location. Empty means
	// <config dir>/history.db.
	Path string `mapstructure:"path"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoReload:         true,
		AutoReloadDebounce: 500,
		Export: ExportConfig{
			MaxRows:       100000,
			IncludeHeader: true,
		},
		UI: UIConfig{
			ShowStatusBar: true,
			MarkdownStyle: "dark",
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// Dir returns the namesmith config directory (~/.config/namesmith).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".namesmith"
	}
	return filepath.Join(home, ".config", "namesmith")
}

// DefaultProjectPath returns the project document location used when none
// is configured.
func DefaultProjectPath() string {
	return filepath.Join(Dir(), "project.json")
}

// DefaultHistoryPath returns the export history database location used when
// none is configured.
func DefaultHistoryPath() string {
	return filepath.Join(Dir(), "history.db")
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# namesmith configuration
#
# project_path: path to the project JSON document.
# Defaults to ~/.config/namesmith/project.json
# project_path: ""

# Reload the project automatically when the file changes on disk.
auto_reload: true
auto_reload_debounce: 500

export:
  # Refuse exports larger than this many rows (0 = unbounded).
  max_rows: 100000
  # Write the element-name header row in CSV exports.
  include_header: true

ui:
  show_status_bar: true
  # markdown_style: "dark" or "light"
  markdown_style: dark

# Override individual UI colors (hex). Empty keeps the default.
# theme:
#   muted: "#888888"
#   error: "#FF5F87"
#   success: "#73F59F"

history:
  # Record completed exports in a local database.
  enabled: true
`
}

// WriteDefaultConfig writes the default config template to configPath.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
