// cmd/quill/main.go
package main

import (
	"fmt"
	stlog "log" // For fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/quill/internal/app"
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/logger"
)

var version = "dev" // Overridden at build time via -ldflags

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	// --- Configuration ---
	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Printf("Warning: problem loading configuration: %v", err)
	}
	if cfg == nil {
		stlog.Fatalf("Failed to load configuration")
	}

	// --- Logger Initialization ---
	logFile, err := cfg.Logger.OpenLogFile()
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	if logFile != os.Stderr {
		defer logFile.Close()
	}
	logger.Init(cfg.Logger, logFile)

	logger.Infof("Starting %s %s...", config.AppName, version)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Create and Run App ---
	quillApp, err := app.NewApp(filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		stlog.Fatalf("Error initializing application: %v", err)
	}

	if err := quillApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
