// Package logger provides configurable logging for quill.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel specifies the minimum level to log ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path to the output log file. Use empty or "-" for stderr.
	LogFilePath string `toml:"log_file"`

	// EnabledTags only logs tagged debug messages with these tags (if non-empty).
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags prevents logging messages with these tags. Overrides EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// --- Internal processed fields ---
	level           slog.Level
	enabledTagsSet  map[string]struct{}
	disabledTagsSet map[string]struct{}
}

// NewConfig creates a new Config with default values.
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// Level returns the processed slog level.
func (c *Config) Level() slog.Level {
	return c.level
}

// process parses string levels and filter lists into internal formats.
func (c *Config) process() {
	c.level = slog.LevelInfo
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		c.level = slog.LevelDebug
	case "info":
		c.level = slog.LevelInfo
	case "warn", "warning":
		c.level = slog.LevelWarn
	case "error", "err":
		c.level = slog.LevelError
	}

	c.enabledTagsSet = sliceToSet(c.EnabledTags)
	c.disabledTagsSet = sliceToSet(c.DisabledTags)
}

// OpenLogFile opens the configured log file, falling back to stderr for "-".
// The caller owns the returned writer and should close it when it is a file.
func (c *Config) OpenLogFile() (*os.File, error) {
	if c.LogFilePath == "" || c.LogFilePath == "-" {
		return os.Stderr, nil
	}
	f, err := os.OpenFile(c.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("opening log file '%s': %w", c.LogFilePath, err)
	}
	return f, nil
}

// sliceToSet converts a filter list to a lowercase lookup set; nil when empty.
func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
