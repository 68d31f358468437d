package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dshills/costclip/internal/logging"
	"github.com/dshills/costclip/internal/rewrite"
)

// Config represents the costclip configuration.
type Config struct {
	Call    string        `json:"call"`
	Strip   string        `json:"strip"`
	Macro   string        `json:"macro"`
	Format  string        `json:"format"`
	Logging LoggingConfig `json:"logging"`
}

// LoggingConfig controls console verbosity and the optional log file.
type LoggingConfig struct {
	Level string `json:"level"`
	File  string `json:"file,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Call:   rewrite.DefaultCall,
		Strip:  rewrite.DefaultStrip,
		Macro:  rewrite.DefaultMacro,
		Format: "text",
		Logging: LoggingConfig{
			Level: logging.LevelInfo,
		},
	}
}

// Rewrite returns the transform options described by cfg.
func (c Config) Rewrite() rewrite.Options {
	return rewrite.Options{Call: c.Call, Strip: c.Strip, Macro: c.Macro}
}

// Validate checks values that would otherwise only fail at run time.
func (c Config) Validate() error {
	if c.Call == "" {
		return fmt.Errorf("call must not be empty")
	}
	if c.Macro == "" {
		return fmt.Errorf("macro must not be empty")
	}
	switch c.Format {
	case "text", "explain", "json":
	default:
		return fmt.Errorf("unsupported format %q (want text, explain or json)", c.Format)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("unknown log level %q (want none, error, info or debug)", c.Logging.Level)
	}
	return nil
}

// ConfigDir returns the platform-appropriate config directory for costclip.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "costclip"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "costclip"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "costclip"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "costclip"), nil
	default:
		return filepath.Join(home, ".config", "costclip"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	mergeOverrides(&cfg, overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Call != "" {
		dst.Call = src.Call
	}
	if src.Strip != "" {
		dst.Strip = src.Strip
	}
	if src.Macro != "" {
		dst.Macro = src.Macro
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.File != "" {
		dst.Logging.File = src.Logging.File
	}
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("COSTCLIP_CALL"); v != "" {
		cfg.Call = v
	}
	if v := os.Getenv("COSTCLIP_STRIP"); v != "" {
		cfg.Strip = v
	}
	if v := os.Getenv("COSTCLIP_MACRO"); v != "" {
		cfg.Macro = v
	}
	if v := os.Getenv("COSTCLIP_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("COSTCLIP_LOG_LEVEL"); v != "" {
		if !logging.ValidLevel(v) {
			return fmt.Errorf("COSTCLIP_LOG_LEVEL: unknown level %q", v)
		}
		cfg.Logging.Level = v
	}
	if v := os.Getenv("COSTCLIP_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["call"]; ok && v != "" {
		cfg.Call = v
	}
	if v, ok := overrides["strip"]; ok && v != "" {
		cfg.Strip = v
	}
	if v, ok := overrides["macro"]; ok && v != "" {
		cfg.Macro = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := overrides["logFile"]; ok && v != "" {
		cfg.Logging.File = v
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "call":
		cfg.Call = value
	case "strip":
		cfg.Strip = value
	case "macro":
		cfg.Macro = value
	case "format":
		cfg.Format = value
	case "logLevel":
		if !logging.ValidLevel(value) {
			return fmt.Errorf("logLevel must be one of none, error, info, debug")
		}
		cfg.Logging.Level = value
	case "logFile":
		cfg.Logging.File = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
