package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/idilsaglam/memtodo/internal/store"
	"github.com/idilsaglam/memtodo/internal/tui"
	"github.com/idilsaglam/memtodo/internal/ui"
)

func runCLI(t *testing.T, args []string, opt Options) (int, string, string) {
	t.Helper()
	ui.SetColorMode("never")
	t.Cleanup(func() { ui.SetColorMode("auto") })

	var out, errOut bytes.Buffer
	opt.Out, opt.Err = &out, &errOut
	if opt.In == nil {
		opt.In = strings.NewReader("")
	}
	if opt.Store == nil {
		opt.Store = newTestStore()
	}
	code := Run(args, opt)
	return code, out.String(), errOut.String()
}

func TestRunHelp(t *testing.T) {
	for _, arg := range []string{"help", "-h", "--help"} {
		code, out, _ := runCLI(t, []string{arg}, Options{})
		if code != 0 {
			t.Errorf("%s: exit code %d", arg, code)
		}
		if !strings.Contains(out, "Usage:") {
			t.Errorf("%s: no usage in output", arg)
		}
	}
}

func TestRunDefaultsToMenu(t *testing.T) {
	for _, args := range [][]string{nil, {"menu"}} {
		code, out, _ := runCLI(t, args, Options{In: strings.NewReader("1\nBuy milk\n\n7\n")})
		if code != 0 {
			t.Fatalf("%v: exit code %d", args, code)
		}
		if !strings.Contains(out, "Todo created successfully") {
			t.Errorf("%v: menu did not run:\n%s", args, out)
		}
	}
}

func TestRunUnknownSubcommand(t *testing.T) {
	code, _, errOut := runCLI(t, []string{"frobnicate"}, Options{})
	if code != 2 {
		t.Errorf("exit code: got %d, want 2", code)
	}
	if !strings.Contains(errOut, "unknown subcommand: frobnicate") {
		t.Errorf("stderr: %s", errOut)
	}
}

func TestRunExtraArgs(t *testing.T) {
	code, _, errOut := runCLI(t, []string{"menu", "now"}, Options{})
	if code != 2 {
		t.Errorf("exit code: got %d, want 2", code)
	}
	if !strings.Contains(errOut, "unexpected arguments") {
		t.Errorf("stderr: %s", errOut)
	}
}

func TestRunTUI(t *testing.T) {
	var gotGroup bool
	var called bool
	fake := func(st store.TodoStore, o tui.Options) error {
		called = true
		gotGroup = o.Group
		return nil
	}

	code, _, _ := runCLI(t, []string{"tui"}, Options{TUI: fake, Group: true})
	if code != 0 || !called || !gotGroup {
		t.Errorf("code=%d called=%v group=%v", code, called, gotGroup)
	}

	failing := func(store.TodoStore, tui.Options) error { return errors.New("no tty") }
	code, _, errOut := runCLI(t, []string{"tui"}, Options{TUI: failing})
	if code != 1 || !strings.Contains(errOut, "tui: no tty") {
		t.Errorf("code=%d stderr=%s", code, errOut)
	}
}

func TestRunWithoutStore(t *testing.T) {
	var errOut bytes.Buffer
	if code := Run(nil, Options{Err: &errOut}); code != 1 {
		t.Errorf("exit code: got %d, want 1", code)
	}
}
