package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/task"
	"todo/internal/undo"
)

// reportError prints err and maps it to an exit code.
// Core errors are the user's to fix; anything else is internal.
func reportError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	switch {
	case errors.Is(err, task.ErrInvalidName),
		errors.Is(err, task.ErrNotFound),
		errors.Is(err, task.ErrDuplicate),
		errors.Is(err, undo.ErrNothingToUndo):
		return exitcode.UserError
	default:
		return exitcode.InternalError
	}
}

// reportRefError prints a task reference parse or resolve failure.
func reportRefError(errOut io.Writer, err error) int {
	if errors.Is(err, task.ErrNotFound) {
		return reportError(errOut, err)
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}

// printView re-renders the sorted view after a mutation.
func printView(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	if cfg.Quiet {
		return exitcode.Success
	}
	view, err := svc.SortedView(ctx)
	if err != nil {
		return reportError(errOut, err)
	}
	output.FormatView(out, view)
	return exitcode.Success
}

// resolveArgs parses and resolves a single task reference.
func resolveArgs(ctx context.Context, svc service.Service, args []string, errOut io.Writer) (task.Task, int, bool) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return task.Task{}, reportRefError(errOut, err), false
	}
	t, err := ResolveTaskRef(ctx, svc, ref)
	if err != nil {
		return task.Task{}, reportRefError(errOut, err), false
	}
	return t, exitcode.Success, true
}
