// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Default values.
const (
	DefaultTheme     = "classic"
	DefaultColor     = "auto"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultDotEnv    = ".env"

	projectConfigFile = "todo.toml"
	envPrefix         = "TODO_"
)

// Config holds the full configuration for the todo binary.
type Config struct {
	// Output
	Theme string `toml:"theme"` // classic | neon | mono
	Color string `toml:"color"` // auto | always | never
	Group bool   `toml:"group"` // list grouped by pending/completed

	// Logging
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	LogFile   string `toml:"log_file"` // empty means stderr

	// ConfigFile is the TOML file that was applied, if any.
	ConfigFile string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// Load builds a Config from, in increasing priority:
// 1. Defaults
// 2. TOML file (-config flag, $TODO_CONFIG, ./todo.toml, or the user config dir)
// 3. Environment variables, after .env in the working directory is applied
// 4. CLI flags
//
// It returns the positional arguments left after flag parsing.
func Load(fs *flag.FlagSet, args []string) (*Config, []string, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if err := loadDotEnv(DefaultDotEnv); err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", DefaultDotEnv, err)
	}

	if path := findConfigFile(args); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
	}

	loadFromEnv(cfg)

	rest, err := parseFlags(cfg, fs, args)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}

	normalize(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}

// Validate rejects values no component knows how to honour.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		allow []string
	}{
		{"theme", c.Theme, []string{"classic", "neon", "mono"}},
		{"color", c.Color, []string{"auto", "always", "never"}},
		{"log_level", c.LogLevel, []string{"debug", "info", "warn", "error"}},
		{"log_format", c.LogFormat, []string{"text", "json", "logfmt"}},
	}
	var errs []error
	for _, ch := range checks {
		if !contains(ch.allow, ch.value) {
			errs = append(errs, fmt.Errorf("invalid %s %q (want one of %s)", ch.field, ch.value, strings.Join(ch.allow, ", ")))
		}
	}
	return errors.Join(errs...)
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// findConfigFile resolves the TOML file to apply. An explicit path that does
// not exist is still returned so the load reports it.
func findConfigFile(args []string) string {
	if p := configFlagValue(args); p != "" {
		return p
	}
	if p := os.Getenv(envPrefix + "CONFIG"); p != "" {
		return p
	}
	if fileExists(projectConfigFile) {
		return projectConfigFile
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "todo", "config.toml")
		if fileExists(p) {
			return p
		}
	}
	return ""
}

// configFlagValue pre-scans args for -config before the flag set parses them,
// since the file has to be applied below flags.
func configFlagValue(args []string) string {
	for i, a := range args {
		if a == "--" {
			return ""
		}
		if !strings.HasPrefix(a, "-") {
			continue
		}
		name := strings.TrimLeft(a, "-")
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv(envPrefix + "THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(envPrefix + "COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv(envPrefix + "GROUP"); v != "" {
		cfg.Group = boolFromString(v)
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envPrefix + "LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(envPrefix + "LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) ([]string, error) {
	if fs == nil {
		fs = flag.NewFlagSet("todo", flag.ContinueOnError)
	}
	var configPath string
	fs.StringVar(&configPath, "config", cfg.ConfigFile, "Path to TOML config file")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Theme: classic, neon or mono")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "Colour output: auto, always or never")
	fs.BoolVar(&cfg.Group, "group", cfg.Group, "Group listings by pending/completed")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json or logfmt")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

func normalize(cfg *Config) {
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.LogFile = strings.TrimSpace(cfg.LogFile)
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
