// Package config handles loading tt.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/tt/internal/paths"
)

// ProjectFileName is the config file looked up in the working directory.
const ProjectFileName = "tt.toml"

// Default values applied when no config file sets a key.
const (
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
	DefaultTimeFormat = "2006-01-02 15:04"
)

// Config represents the tt.toml configuration file.
type Config struct {
	Store   Store   `toml:"store"`
	Log     Log     `toml:"log"`
	Display Display `toml:"display"`
}

// Store contains task file configuration.
type Store struct {
	// Path is the task file location. Empty means the default state dir.
	Path string `toml:"path"`

	// AutoCleanup removes deletable tasks before every command.
	AutoCleanup bool `toml:"auto-cleanup"`
}

// Log contains logging configuration.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// Format is one of text, json, logfmt.
	Format string `toml:"format"`
}

// Display contains output formatting configuration.
type Display struct {
	// TimeFormat is a Go time layout used to print and parse timestamps.
	TimeFormat string `toml:"time-format"`
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		Store:   Store{AutoCleanup: true},
		Log:     Log{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Display: Display{TimeFormat: DefaultTimeFormat},
	}
}

// Load loads configuration from the working directory and the global config
// file. Returns the defaults if no config files exist.
func Load(workDir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(workDir, ProjectFileName))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

// mergeConfigs layers project values over global values over defaults. A
// key counts as set only when the file defines it.
func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Default()
	merged.Store.Path = mergeString(merged.Store.Path,
		globalMeta.IsDefined("store", "path"), globalCfg.Store.Path,
		projectMeta.IsDefined("store", "path"), projectCfg.Store.Path)
	merged.Log.Level = mergeString(merged.Log.Level,
		globalMeta.IsDefined("log", "level"), globalCfg.Log.Level,
		projectMeta.IsDefined("log", "level"), projectCfg.Log.Level)
	merged.Log.Format = mergeString(merged.Log.Format,
		globalMeta.IsDefined("log", "format"), globalCfg.Log.Format,
		projectMeta.IsDefined("log", "format"), projectCfg.Log.Format)
	merged.Display.TimeFormat = mergeString(merged.Display.TimeFormat,
		globalMeta.IsDefined("display", "time-format"), globalCfg.Display.TimeFormat,
		projectMeta.IsDefined("display", "time-format"), projectCfg.Display.TimeFormat)

	if projectMeta.IsDefined("store", "auto-cleanup") {
		merged.Store.AutoCleanup = projectCfg.Store.AutoCleanup
	} else if globalMeta.IsDefined("store", "auto-cleanup") {
		merged.Store.AutoCleanup = globalCfg.Store.AutoCleanup
	}

	return merged
}

func mergeString(value string, globalDefined bool, globalValue string, projectDefined bool, projectValue string) string {
	if globalDefined {
		value = globalValue
	}
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
