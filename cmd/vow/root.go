// Package main provides the CLI entrypoint for vow.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vow/internal/config"
	"github.com/jmylchreest/vow/internal/pledge"
	"github.com/jmylchreest/vow/internal/prefs"
	"github.com/jmylchreest/vow/internal/storage"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose     bool
		storagePath string
		configPath  string
	}
	logger *slog.Logger

	// store is the global storage backend shared by all commands
	store     storage.Storage
	book      *pledge.Book
	userPrefs *prefs.Prefs
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vow",
	Short: "Personal pledge keeper for the terminal",
	Long: `vow is a personal pledge keeper for the terminal.

Record commitments with a category and a reminder frequency, browse
them in an interactive TUI, and let vow nudge you with desktop
notifications when a reminder falls due.

Running vow without a subcommand launches the interactive TUI.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := config.EnsureDataDir(); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		// Use custom storage path if specified, otherwise the configured one
		storagePath := globalOpts.storagePath
		if storagePath == "" {
			storagePath = cfg.StoragePath()
		}

		store, err = storage.New(storagePath)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		book = pledge.Open(store)
		userPrefs = prefs.New(store)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
	// Default to TUI when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.storagePath, "storage", "",
		"Path to pledge storage (default: ~/.local/share/vow/store; a .db path selects SQLite)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/vow/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// getConfig returns the global config instance.
func getConfig() *config.Config {
	return cfg
}

// getBook returns the global pledge book.
func getBook() *pledge.Book {
	return book
}

// getPrefs returns the global preference store.
func getPrefs() *prefs.Prefs {
	return userPrefs
}
