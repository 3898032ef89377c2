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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Prints the sorted view, plus the open undo window if there is one.
type ListCmd struct{}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks" }
func (c *ListCmd) Usage() string      { return "list" }
func (c *ListCmd) NeedsService() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	view, err := svc.SortedView(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	// Quiet mode still lists tasks, but not the empty-list notice
	if len(view) == 0 && cfg.Quiet {
		return exitcode.Success
	}
	output.FormatView(out, view)

	u, ok, err := svc.PendingUndo(ctx)
	if err != nil {
		return reportError(errOut, err)
	}
	if ok && !cfg.Quiet {
		output.FormatUndoOffer(out, u.Name)
	}
	return exitcode.Success
}
