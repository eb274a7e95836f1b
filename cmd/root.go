package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fenwick/namesmith/internal/app"
	"github.com/fenwick/namesmith/internal/clipboard"
	"github.com/fenwick/namesmith/internal/config"
	"github.com/fenwick/namesmith/internal/history"
	"github.com/fenwick/namesmith/internal/infrastructure/sqlite"
	"github.com/fenwick/namesmith/internal/log"
	"github.com/fenwick/namesmith/internal/naming"
	"github.com/fenwick/namesmith/internal/projectstore"
	"github.com/fenwick/namesmith/internal/tracing"
	"github.com/fenwick/namesmith/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version     = "dev"
	cfgFile     string
	projectFile string
	logFile     string
	cfg         config.Config
)

var rootCmd = &cobra.Command{
	Use:     "namesmith",
	Short:   "A terminal ui for building structured asset names",
	Long:    `A terminal user interface for composing naming templates from reusable elements and generating every combination of their terms.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/namesmith/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&projectFile, "project", "p", "",
		"project JSON document (default: ~/.config/namesmith/project.json)")
	rootCmd.Flags().StringVar(&logFile, "log", "",
		"write debug logs to this file")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable automatic project reload when the document changes on disk")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("auto_reload_debounce", defaults.AutoReloadDebounce)
	viper.SetDefault("export.max_rows", defaults.Export.MaxRows)
	viper.SetDefault("export.include_header", defaults.Export.IncludeHeader)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("history.enabled", defaults.History.Enabled)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .namesmith/config.yaml (current directory)
		// 2. ~/.config/namesmith/config.yaml (user config)
		if _, err := os.Stat(".namesmith/config.yaml"); err == nil {
			viper.SetConfigFile(".namesmith/config.yaml")
		} else {
			viper.AddConfigPath(config.Dir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the commented default
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := filepath.Join(config.Dir(), "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// resolvedProjectPath applies the flag > config > default precedence.
func resolvedProjectPath() string {
	if projectFile != "" {
		return projectFile
	}
	if cfg.ProjectPath != "" {
		return cfg.ProjectPath
	}
	return config.DefaultProjectPath()
}

// configFilePath returns the config file actually in use.
func configFilePath() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	return filepath.Join(config.Dir(), "config.yaml")
}

// loadProject builds the store for the resolved path and loads the document,
// migrating legacy schemas in the process.
func loadProject(ctx context.Context, provider *tracing.Provider) (*projectstore.Store, *naming.Project, error) {
	store := projectstore.New(resolvedProjectPath(), provider.Tracer())
	project, err := store.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	return store, project, nil
}

// openHistory opens the export history repository, or returns nil when
// history is disabled.
func openHistory() (history.Repository, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}
	path := cfg.History.Path
	if path == "" {
		path = config.DefaultHistoryPath()
	}
	db, err := sqlite.NewDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	return db.ExportRepository(), nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if logFile != "" {
		cleanup, err := log.Init(logFile)
		if err != nil {
			return fmt.Errorf("initializing log file: %w", err)
		}
		defer cleanup()
	}

	if noAutoReload, _ := cmd.Flags().GetBool("no-auto-reload"); noAutoReload {
		cfg.AutoReload = false
	}

	styles.ApplyTheme(cfg.Theme.Muted, cfg.Theme.Error, cfg.Theme.Success)

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	ctx := context.Background()
	defer func() { _ = provider.Shutdown(ctx) }()

	store, project, err := loadProject(ctx, provider)
	if err != nil {
		return err
	}

	repo, err := openHistory()
	if err != nil {
		// The app works fine without export history.
		log.Warn(log.CatDB, "Export history unavailable", "error", err)
		repo = nil
	}

	model := app.New(app.Deps{
		Store:      store,
		Project:    project,
		Config:     cfg,
		ConfigPath: configFilePath(),
		Clipboard:  clipboard.SystemClipboard{},
		History:    repo,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
