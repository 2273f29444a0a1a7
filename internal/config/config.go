// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/quill/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Logger settings under [logger]
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	// HistoryLimit caps the undo stack; 0 disables the cap.
	HistoryLimit int `toml:"history_limit"`
	// ReadingWPM is the words-per-minute rate for the reading-time metric.
	ReadingWPM int `toml:"reading_wpm"`
	// SystemClipboard routes yank/paste through the OS clipboard.
	SystemClipboard bool `toml:"system_clipboard"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			HistoryLimit:    DefaultHistoryLimit,
			ReadingWPM:      DefaultReadingWPM,
			SystemClipboard: DefaultSystemClipboard,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file.
// A missing file is not an error; it yields a nil config.
func loadFromFile(filePath string) (*Config, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.HistoryLimit < 0 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}
	if c.Editor.ReadingWPM <= 0 {
		c.Editor.ReadingWPM = defaults.Editor.ReadingWPM
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. Called once, from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" {
					cfg.Logger = fileCfg.Logger
				}
				if fileCfg.Editor.HistoryLimit > 0 {
					cfg.Editor.HistoryLimit = fileCfg.Editor.HistoryLimit
				}
				if fileCfg.Editor.ReadingWPM > 0 {
					cfg.Editor.ReadingWPM = fileCfg.Editor.ReadingWPM
				}
				cfg.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()

		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig
// wasn't called — that is a programming error in main.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
