package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	star bool
}

// SetStar sets whether the new task is starred (for testing).
func (c *AddCmd) SetStar(star bool) {
	c.star = star
}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "add [--star] <name...>" }
func (c *AddCmd) NeedsService() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.star, "star", false, "")
	fs.BoolVar(&c.star, "s", false, "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// Join args to form the name
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(errOut, "error: task name required")
		return exitcode.UserError
	}

	t, err := svc.AddTask(ctx, name)
	if err != nil {
		return reportError(errOut, err)
	}

	if c.star {
		if _, err := svc.ToggleStar(ctx, t.ID); err != nil {
			return reportError(errOut, err)
		}
	}

	return printView(ctx, cfg, svc, out, errOut)
}
