package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/slot"
)

func init() {
	Register(&PathCmd{})
}

// PathCmd prints where the task snapshot is stored.
type PathCmd struct{}

func (c *PathCmd) Name() string      { return "path" }
func (c *PathCmd) Aliases() []string { return nil }
func (c *PathCmd) Synopsis() string  { return "Print the storage location" }
func (c *PathCmd) Usage() string     { return "todo path" }
func (c *PathCmd) NeedsStore() bool  { return false }

func (c *PathCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PathCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, slot.Location(cfg))
	return exitcode.Success
}
