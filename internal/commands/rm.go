package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command. The task can be restored with undo
// until the undo window closes.
type RmCmd struct{}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "rm <ref>" }
func (c *RmCmd) NeedsService() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	t, code, ok := resolveArgs(ctx, svc, args, errOut)
	if !ok {
		return code
	}

	u, err := svc.DeleteTask(ctx, t.ID)
	if err != nil {
		return reportError(errOut, err)
	}

	if code := printView(ctx, cfg, svc, out, errOut); code != exitcode.Success {
		return code
	}
	if !cfg.Quiet {
		output.FormatUndoOffer(out, u.Name)
	}
	return exitcode.Success
}
