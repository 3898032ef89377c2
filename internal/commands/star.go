package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

func init() {
	Register(&StarCmd{})
}

// StarCmd implements the star command. Starring a starred task unstars it.
type StarCmd struct{}

func (c *StarCmd) Name() string       { return "star" }
func (c *StarCmd) Aliases() []string  { return []string{"unstar"} }
func (c *StarCmd) Synopsis() string   { return "Toggle a task starred" }
func (c *StarCmd) Usage() string      { return "star <ref>" }
func (c *StarCmd) NeedsService() bool { return true }

func (c *StarCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StarCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	t, code, ok := resolveArgs(ctx, svc, args, errOut)
	if !ok {
		return code
	}

	if _, err := svc.ToggleStar(ctx, t.ID); err != nil {
		return reportError(errOut, err)
	}

	return printView(ctx, cfg, svc, out, errOut)
}
