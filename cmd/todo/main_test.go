package main

import (
	"os"
	"testing"
)

func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TODO_CONFIG", "TODO_THEME", "TODO_COLOR", "TODO_LOG_LEVEL", "TODO_LOG_FORMAT", "TODO_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help subcommand", []string{"help"}, 0},
		{"help flag", []string{"-h"}, 0},
		{"unknown flag", []string{"-bogus"}, 2},
		{"invalid theme", []string{"-theme", "disco"}, 2},
		{"unknown subcommand", []string{"frobnicate"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%v): got %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
