// Package cli parses the command line, picks the run mode and dispatches
// commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/events"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
	"todo/internal/tui"
)

const shellPrompt = "todo> "

// App is one process run: common flags, then a mode or a single command.
type App struct {
	Registry *commands.Registry

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// IsTerminal reports whether stdin and stdout are both terminals.
	IsTerminal func() bool

	// RunTUI runs the full-screen UI. Defaults to tui.Run.
	RunTUI func(ctx context.Context, opts tui.Options) error
}

// Run executes the process arguments (without the program name) and returns
// the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configDir string
	var quiet, debug bool
	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	if err := fs.Parse(args); err != nil {
		return reportFlagError(a.ErrOut, err)
	}
	rest := fs.Args()

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(a.ErrOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	mode := "command"
	switch {
	case len(rest) == 0 && a.terminal():
		mode = "tui"
	case len(rest) == 0:
		mode = "shell"
	case rest[0] == "tui" || rest[0] == "shell":
		mode = rest[0]
		if len(rest) > 1 {
			fmt.Fprintf(a.ErrOut, "error: unexpected argument: %s\n", rest[1])
			return exitcode.UserError
		}
	}

	logger, closer, err := logging.Open(cfg, mode == "tui", a.ErrOut)
	if err != nil {
		fmt.Fprintf(a.ErrOut, "error: open log: %v\n", err)
		return exitcode.ConfigError
	}
	defer closer.Close()

	bus := events.New()
	svc := service.NewLocal(service.WithBus(bus), service.WithLogger(logger))
	logger.Debug("starting", "mode", mode, "config_dir", cfg.Dir, "undo_timeout", cfg.Settings.UndoTimeout)

	dispatcher := NewDispatcher(a.Registry)
	switch mode {
	case "tui":
		return a.runTUI(ctx, cfg, svc, bus, logger)
	case "shell":
		shell := &Shell{
			Dispatcher: dispatcher,
			Config:     cfg,
			Service:    svc,
			Logger:     logger,
		}
		if a.terminal() {
			shell.Prompt = shellPrompt
		}
		return shell.Run(ctx, a.In, a.Out, a.ErrOut)
	default:
		return dispatcher.Run(ctx, cfg, svc, rest, a.Out, a.ErrOut)
	}
}

func (a *App) runTUI(ctx context.Context, cfg *config.Config, svc service.Service, bus *events.Bus, logger *slog.Logger) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watcher := config.NewWatcher(cfg, logger)
	var reloads <-chan config.ReloadEvent
	if err := watcher.Start(ctx); err != nil {
		logger.Warn("config watcher disabled", "dir", cfg.Dir, "error", err)
	} else {
		reloads = watcher.Events()
	}

	run := a.RunTUI
	if run == nil {
		run = tui.Run
	}
	err := run(ctx, tui.Options{
		Service:  svc,
		Settings: cfg.Settings,
		Bus:      bus,
		Reloads:  reloads,
		Logger:   logger,
	})
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(a.ErrOut, "error: %v\n", err)
		return exitcode.InternalError
	}
	return exitcode.Success
}

func (a *App) terminal() bool {
	return a.IsTerminal != nil && a.IsTerminal()
}
