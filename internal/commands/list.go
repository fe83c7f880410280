package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/task"
)

func init() {
	Register(&ListCmd{})
	Register(&SearchCmd{})
}

// viewFlags are the filter and search controls shared by list and search.
type viewFlags struct {
	filter string
	search string
	json   bool
}

func (v *viewFlags) register(fs *flag.FlagSet, withSearch bool) {
	fs.StringVar(&v.filter, "filter", "", "")
	fs.StringVar(&v.filter, "f", "", "")
	fs.BoolVar(&v.json, "json", false, "")
	if withSearch {
		fs.StringVar(&v.search, "search", "", "")
		fs.StringVar(&v.search, "s", "", "")
	}
}

// ListCmd implements the list command.
// Handles both `todo` (no args) and `todo list [query...]`.
type ListCmd struct {
	view viewFlags
}

// SetFilter sets the filter mode name (for testing).
func (c *ListCmd) SetFilter(filter string) {
	c.view.filter = filter
}

// SetSearch sets the search query (for testing).
func (c *ListCmd) SetSearch(query string) {
	c.view.search = query
}

// SetJSON enables JSON output (for testing).
func (c *ListCmd) SetJSON(enabled bool) {
	c.view.json = enabled
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "todo list [--filter <all|active|completed>] [--search <query>] [--json]"
}
func (c *ListCmd) NeedsStore() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	c.view.register(fs, true)
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	query := c.view.search
	if len(args) > 0 {
		if query != "" {
			fmt.Fprintln(errOut, "error: cannot use both --search and a query argument")
			return exitcode.UserError
		}
		query = strings.Join(args, " ")
	}
	return runView(ctx, cfg, svc, c.view, query, out, errOut)
}

// SearchCmd implements the search command.
type SearchCmd struct {
	view viewFlags
}

// SetFilter sets the filter mode name (for testing).
func (c *SearchCmd) SetFilter(filter string) {
	c.view.filter = filter
}

func (c *SearchCmd) Name() string      { return "search" }
func (c *SearchCmd) Aliases() []string { return []string{"find"} }
func (c *SearchCmd) Synopsis() string  { return "Search tasks by text" }
func (c *SearchCmd) Usage() string {
	return "todo search [--filter <all|active|completed>] [--json] <query...>"
}
func (c *SearchCmd) NeedsStore() bool { return true }

func (c *SearchCmd) RegisterFlags(fs *flag.FlagSet) {
	c.view.register(fs, false)
}

func (c *SearchCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: query required")
		return exitcode.UserError
	}
	return runView(ctx, cfg, svc, c.view, strings.Join(args, " "), out, errOut)
}

// runView is the shared implementation for list and search.
func runView(ctx context.Context, cfg *config.Config, svc service.Service, view viewFlags, query string, out, errOut io.Writer) int {
	mode, err := task.ParseFilterMode(view.filter)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	tasks := svc.View(ctx, mode, query)

	if view.json {
		if err := output.WriteJSON(out, tasks); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return exitcode.Success
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, output.NoTasks)
		}
		return exitcode.Success
	}

	output.FormatTasks(out, tasks, output.Positions(svc.Tasks(ctx)))
	return exitcode.Success
}
