// Package main is the entry point for the todo task list.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/tui"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	app := &cli.App{
		Registry:   commands.DefaultRegistry,
		In:         os.Stdin,
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
		IsTerminal: isInteractive,
		RunTUI:     tui.Run,
	}

	code := app.Run(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}

func isInteractive() bool {
	if os.Getenv("TODO_NO_TUI") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
