package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var envVars = []string{
	"TODO_CONFIG", "TODO_THEME", "TODO_COLOR", "TODO_GROUP",
	"TODO_LOG_LEVEL", "TODO_LOG_FORMAT", "TODO_LOG_FILE",
}

// isolate runs the test in an empty working directory with no TODO_* env
// and no user config dir.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, rest, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.Color != DefaultColor {
		t.Errorf("Color: got %q, want %q", cfg.Color, DefaultColor)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
	if cfg.ConfigFile != "" {
		t.Errorf("ConfigFile: got %q, want empty", cfg.ConfigFile)
	}
	if len(rest) != 0 {
		t.Errorf("rest: got %v", rest)
	}
}

func TestProjectConfigFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "todo.toml"), `
theme = "neon"
group = true
log_level = "debug"
`)

	cfg, _, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "neon" || !cfg.Group || cfg.LogLevel != "debug" {
		t.Errorf("got %+v", cfg)
	}
	if cfg.ConfigFile != "todo.toml" {
		t.Errorf("ConfigFile: got %q", cfg.ConfigFile)
	}
}

func TestUserConfigFile(t *testing.T) {
	isolate(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeFile(t, filepath.Join(xdg, "todo", "config.toml"), `theme = "mono"`)

	cfg, _, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme: got %q, want mono", cfg.Theme)
	}
}

func TestExplicitConfigFlag(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "todo.toml"), `theme = "neon"`)
	other := filepath.Join(dir, "other.toml")
	writeFile(t, other, `theme = "mono"`)

	cfg, rest, err := Load(newFlagSet(), []string{"-config", other, "menu"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme: got %q, want mono", cfg.Theme)
	}
	if cfg.ConfigFile != other {
		t.Errorf("ConfigFile: got %q", cfg.ConfigFile)
	}
	if len(rest) != 1 || rest[0] != "menu" {
		t.Errorf("rest: got %v", rest)
	}
}

func TestMissingExplicitConfig(t *testing.T) {
	isolate(t)

	_, _, err := Load(newFlagSet(), []string{"--config=nope.toml"})
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "nope.toml") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestPriority(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "todo.toml"), `
theme = "neon"
color = "never"
log_format = "json"
`)
	t.Setenv("TODO_THEME", "mono")
	t.Setenv("TODO_COLOR", "always")

	cfg, _, err := Load(newFlagSet(), []string{"-color", "auto"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("env should override file: Theme=%q", cfg.Theme)
	}
	if cfg.Color != "auto" {
		t.Errorf("flag should override env: Color=%q", cfg.Color)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("file value lost: LogFormat=%q", cfg.LogFormat)
	}
}

func TestDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "TODO_LOG_LEVEL=info\nTODO_GROUP=yes\n")

	cfg, _, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if !cfg.Group {
		t.Error("Group: want true from .env")
	}
}

func TestNormalize(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_LOG_LEVEL", " WARNING ")

	cfg, _, err := Load(newFlagSet(), []string{"-theme", "Neon"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "neon" || cfg.LogLevel != "warn" {
		t.Errorf("got theme=%q level=%q", cfg.Theme, cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad theme", func(c *Config) { c.Theme = "disco" }, "invalid theme"},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, "invalid color"},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "invalid log_level"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "invalid log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg)
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsInvalidFlag(t *testing.T) {
	isolate(t)

	if _, _, err := Load(newFlagSet(), []string{"-theme", "disco"}); err == nil {
		t.Fatal("expected validation error")
	}
	if _, _, err := Load(newFlagSet(), []string{"-nope"}); err == nil {
		t.Fatal("expected flag error")
	}
}
