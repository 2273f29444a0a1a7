// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags.
// Pointers distinguish unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	HistoryLimit    *int
	ReadingWPM      *int
	EnableTags      *string
	DisableTags     *string
	SystemClipboard *bool
}

// DefineFlags sets up the command-line flags.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.HistoryLimit = flag.Int("history-limit", -1, "Maximum undo snapshots, 0 for unbounded - Overrides config file")
	f.ReadingWPM = flag.Int("reading-wpm", 0, "Words per minute for the reading-time metric - Overrides config file")
	f.EnableTags = flag.String("log-tags", "", "Comma-separated list of debug tags to enable - Overrides config file")
	f.DisableTags = flag.String("log-disable-tags", "", "Comma-separated list of debug tags to disable - Overrides config file")
	f.SystemClipboard = flag.Bool("system-clipboard", false, "Use system clipboard instead of internal register")
}

// ParseFlags parses the defined flags and returns the remaining non-flag
// arguments (e.g. the file path).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil { // Empty string is valid ("-")
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "history-limit":
			if f.HistoryLimit != nil && *f.HistoryLimit >= 0 {
				cfg.Editor.HistoryLimit = *f.HistoryLimit
			}
		case "reading-wpm":
			if f.ReadingWPM != nil && *f.ReadingWPM > 0 {
				cfg.Editor.ReadingWPM = *f.ReadingWPM
			}
		case "system-clipboard":
			if f.SystemClipboard != nil {
				cfg.Editor.SystemClipboard = *f.SystemClipboard
			}
		case "log-tags":
			if f.EnableTags != nil && *f.EnableTags != "" {
				cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
			}
		case "log-disable-tags":
			if f.DisableTags != nil && *f.DisableTags != "" {
				cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
			}
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
