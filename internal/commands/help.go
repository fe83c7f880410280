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

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                         List all tasks
  todo list [common flags] [--filter <mode>] [--search <query>] [--json]
  todo ls ...                                  Alias for list
  todo search [common flags] [--filter <mode>] [--json] <query...>
  todo add [common flags] <text...>
  todo create [common flags] <text...>
  todo edit [common flags] <ref> <text...>
  todo toggle [common flags] <ref>
  todo done [common flags] <ref>               Alias for toggle
  todo rm [common flags] <ref>
  todo delete [common flags] <ref>             Alias for rm
  todo path [common flags]
  todo help
  todo version

Filter modes:
  all, active, completed

Task references:
  <n>     Position as printed by todo list
  #<id>   Task id as printed by todo list --json

Common flags:
  --config <dir>     Override config directory
  --backend <name>   Storage backend: file, sqlite or redis (env TODO_BACKEND)
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr
`
