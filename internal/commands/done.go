package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. Running it on a completed task
// reopens it.
type DoneCmd struct{}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string   { return "Toggle a task completed" }
func (c *DoneCmd) Usage() string      { return "done <ref>" }
func (c *DoneCmd) NeedsService() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	t, code, ok := resolveArgs(ctx, svc, args, errOut)
	if !ok {
		return code
	}

	if _, err := svc.ToggleComplete(ctx, t.ID); err != nil {
		return reportError(errOut, err)
	}

	return printView(ctx, cfg, svc, out, errOut)
}
