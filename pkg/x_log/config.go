package x_log

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//
// ---------- Config ----------

// Config describes where and how log lines are written.
type Config struct {
	Level       string // debug, info, warn, error
	LogFile     string // rotated file path
	ToConsole   bool   // write to stderr
	ToFile      bool   // write to LogFile
	ColoredFile bool   // styled lines in LogFile
	Style       string // console theme: dark, light
	MaxSize     int    // MB before rotation
	MaxBackups  int    // rotated files kept
	MaxAge      int    // days a rotated file is kept
	Compress    bool   // gzip rotated files
}

//
// ---------- Defaults ----------

const (
	defaultConfigPath = "./xlog.json"
	EnvConfigPath     = "XLOG_CONFIG"
)

var defaultConfig = Config{
	Level:       "info",
	LogFile:     "logs/rtree.log",
	ToConsole:   true,
	ToFile:      false,
	ColoredFile: false,
	Style:       "dark",
	MaxSize:     10, // MB
	MaxBackups:  5,  // rotated files
	MaxAge:      7,  // days
	Compress:    true,
}

// DefaultConfig returns a copy of the built-in configuration.
func DefaultConfig() Config {
	return defaultConfig
}

//
// ---------- LoadConfig ----------

// LoadConfig reads JSON config from file.
// If path is empty, uses XLOG_CONFIG or ./xlog.json.
func LoadConfig(path string) (*Config, error) {
	// Resolve path
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			path = defaultConfigPath
		}
	}

	// Read file
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Return default config if file not found
			cfg := defaultConfig
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	// Parse JSON over the defaults so absent keys keep their default
	cfg := defaultConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

//
// ---------- Defaults Fill ----------

// ApplyDefaults fills missing config values from the defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Level == "" {
		cfg.Level = defaultConfig.Level
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultConfig.LogFile
	}
	if cfg.Style == "" {
		cfg.Style = defaultConfig.Style
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultConfig.MaxSize
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultConfig.MaxBackups
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultConfig.MaxAge
	}
}
