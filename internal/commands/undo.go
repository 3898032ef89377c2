package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&UndoCmd{})
	Register(&DismissCmd{})
}

// UndoCmd implements the undo command.
type UndoCmd struct{}

func (c *UndoCmd) Name() string       { return "undo" }
func (c *UndoCmd) Aliases() []string  { return nil }
func (c *UndoCmd) Synopsis() string   { return "Restore the last deleted task" }
func (c *UndoCmd) Usage() string      { return "undo" }
func (c *UndoCmd) NeedsService() bool { return true }

func (c *UndoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	t, err := svc.ConfirmUndo(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	if code := printView(ctx, cfg, svc, out, errOut); code != exitcode.Success {
		return code
	}
	if !cfg.Quiet {
		output.FormatRestored(out, t.Name)
	}
	return exitcode.Success
}

// DismissCmd implements the dismiss command: it closes the undo window so
// the last delete becomes permanent. Dismissing with no open window is a
// no-op.
type DismissCmd struct{}

func (c *DismissCmd) Name() string       { return "dismiss" }
func (c *DismissCmd) Aliases() []string  { return nil }
func (c *DismissCmd) Synopsis() string   { return "Make the last delete permanent" }
func (c *DismissCmd) Usage() string      { return "dismiss" }
func (c *DismissCmd) NeedsService() bool { return true }

func (c *DismissCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DismissCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	u, ok, err := svc.DismissUndo(ctx)
	if err != nil {
		return reportError(errOut, err)
	}
	if ok && !cfg.Quiet {
		output.FormatUndoExpired(out, u.Name)
	}
	return exitcode.Success
}
