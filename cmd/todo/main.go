package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/memtodo/internal/cli"
	"github.com/idilsaglam/memtodo/internal/config"
	"github.com/idilsaglam/memtodo/internal/logging"
	"github.com/idilsaglam/memtodo/internal/store/memstore"
	"github.com/idilsaglam/memtodo/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = func() { cli.PrintHelp(os.Stderr) }

	cfg, rest, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, "todo:", err)
		return 2
	}

	ui.SetColorMode(cfg.Color)
	ui.SetTheme(cfg.Theme)

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Prefix: "todo",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "todo:", err)
		return 1
	}
	defer closeLog()

	if cfg.ConfigFile != "" {
		logger.Debug("loaded config", "file", cfg.ConfigFile)
	}

	st := memstore.New(memstore.WithLogger(logger))
	return cli.Run(rest, cli.Options{
		Store:  st,
		Logger: logger,
		Group:  cfg.Group,
	})
}
