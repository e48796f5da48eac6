package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/memtodo/internal/store"
	"github.com/idilsaglam/memtodo/internal/tui"
	"github.com/idilsaglam/memtodo/internal/ui"
)

// Options carry the composed store plus streams and output flags.
type Options struct {
	Store  store.TodoStore
	Logger *log.Logger
	Group  bool // list grouped by pending/completed

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// TUI replaces the interactive program; nil means tui.Run.
	TUI func(store.TodoStore, tui.Options) error
}

func (o *Options) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.TUI == nil {
		o.TUI = tui.Run
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if opt.Store == nil {
		ui.Fail(opt.Err, "no store configured")
		return 1
	}

	cmd := "menu"
	if len(args) > 0 {
		cmd = args[0]
	}
	if len(args) > 1 {
		ui.Fail(opt.Err, fmt.Sprintf("%s: unexpected arguments %v", cmd, args[1:]))
		return 2
	}
	opt.Logger.Debug("starting front end", "cmd", cmd)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "menu":
		return NewMenu(opt.Store, opt.In, opt.Out, opt.Group).Run()

	case "tui":
		if err := opt.TUI(opt.Store, tui.Options{Group: opt.Group}); err != nil {
			opt.Logger.Error("tui exited", "err", err)
			ui.Fail(opt.Err, "tui: "+err.Error())
			return 1
		}
		return 0
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - an in-memory todo list

Usage:
  todo [flags] [menu|tui|help]

Subcommands:
  menu               Numbered console menu (default)
  tui                Interactive list (a add, e edit, c complete, d delete, q quit)
  help               Show this help

Flags:
  -config <file>     TOML config file (default ./todo.toml or user config dir)
  -theme <name>      classic, neon or mono
  -color <mode>      auto, always or never
  -group             Group listings by pending/completed
  -log-level <lvl>   debug, info, warn or error
  -log-format <fmt>  text, json or logfmt
  -log-file <path>   Write logs to a file instead of stderr

Todos live in memory and are gone when the program exits.
`)
}
