package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	// Extraction
	SpecFile      string
	Section       string
	HeadingTag    string
	MarkerTag     string
	ExcludedTitle string

	// Artifacts
	StatesOut     string
	GraphOut      string
	StatesPackage string

	// Remote sources
	AnchorsURL       string
	AnchorsDir       string
	CounterStylesURL string
	CounterStylesOut string

	// HTTP
	HTTPTimeout time.Duration

	// Logging
	LogLevel string
}

func Load() Config {
	cfg := Config{
		SpecFile:      envOr("SPECTOOL_SPEC_FILE", "webapps.html"),
		Section:       envOr("SPECTOOL_SECTION", "Tokenization"),
		HeadingTag:    envOr("SPECTOOL_HEADING_TAG", "h5"),
		MarkerTag:     envOr("SPECTOOL_MARKER_TAG", "dfn"),
		ExcludedTitle: envOr("SPECTOOL_EXCLUDED_TITLE", "Tokenizing character references"),

		StatesOut:     os.Getenv("SPECTOOL_STATES_OUT"),
		GraphOut:      envOr("SPECTOOL_GRAPH_OUT", "build/states.dot"),
		StatesPackage: envOr("SPECTOOL_STATES_PKG", "tokenizer"),

		AnchorsURL:       envOr("SPECTOOL_ANCHORS_URL", "https://test.csswg.org/shepherd/api/spec/?anchors&drafts"),
		AnchorsDir:       envOr("SPECTOOL_ANCHORS_DIR", "."),
		CounterStylesURL: envOr("SPECTOOL_COUNTER_STYLES_URL", "https://drafts.csswg.org/css-counter-styles"),
		CounterStylesOut: envOr("SPECTOOL_COUNTER_STYLES_OUT", "predefined_counter_styles.txt"),

		HTTPTimeout: envDuration("SPECTOOL_HTTP_TIMEOUT", 30*time.Second),

		LogLevel: envOr("SPECTOOL_LOG_LEVEL", "info"),
	}

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Section == "" {
		return fmt.Errorf("SPECTOOL_SECTION must not be empty")
	}
	if c.HeadingTag == "" {
		return fmt.Errorf("SPECTOOL_HEADING_TAG must not be empty")
	}
	if c.MarkerTag == "" {
		return fmt.Errorf("SPECTOOL_MARKER_TAG must not be empty")
	}
	if c.StatesPackage == "" {
		return fmt.Errorf("SPECTOOL_STATES_PKG must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
