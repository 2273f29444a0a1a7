package config

import "time"

// Base application details
const AppName = "quill"
const ConfigDirName = "quill"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "quill.log"

// UI Layout
const StatusBarHeight = 1
const ToolbarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editing defaults. These could move to NewDefaultConfig(), keeping here for now.
const DefaultHistoryLimit = 100
const DefaultReadingWPM = 200
const DefaultSystemClipboard = true
