package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/servo/spectool/internal/config"
	"github.com/servo/spectool/internal/version"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "spectool",
	Short: "Extract machine-readable artifacts from the WHATWG HTML spec",
	Long: `spectool regenerates machine-readable artifacts from specification prose:
the tokenizer state enum and transition graph extracted from the spec's
Tokenization section, plus the local-names and predefined-counter-styles
datasets scraped from the CSSWG drafts.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("spectool %s\n", version.String()))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides SPECTOOL_LOG_LEVEL")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration: hard defaults, then environment, then
// any flags the commands layered on top.
func loadConfig() (config.Config, error) {
	cfg := config.Load()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to stderr so stdout stays
// clean for artifact and filter output.
func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
