package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo [common flags]              Start the task list (TUI on a terminal, shell otherwise)
  todo [common flags] tui          Start the full-screen task list
  todo [common flags] shell        Read commands from stdin, one per line
  todo help
  todo version

Shell commands:
  add [--star] <name...>   Create a task (alias: create)
  done <ref>               Toggle a task completed (alias: toggle)
  star <ref>               Toggle a task starred (alias: unstar)
  rm <ref>                 Delete a task, undo stays available for a while (alias: delete)
  undo                     Restore the last deleted task
  dismiss                  Make the last delete permanent
  list                     List tasks (alias: ls)
  help                     Print usage
  quit                     Leave the shell (alias: exit)

  <ref> is a position in the list (3) or a task id (#3).

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs
`
