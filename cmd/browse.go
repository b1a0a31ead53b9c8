package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marketshare/renderer"
	"github.com/google/subcommands"
)

type browseCmd struct {
	sel selectionFlags
}

func (*browseCmd) Name() string     { return "browse" }
func (*browseCmd) Synopsis() string { return "display the selected observations" }
func (*browseCmd) Usage() string {
	return `msr browse [-m <marketplaces>] [-y <years>] [-c <categories>]

  Displays the observations of the feed, restricted to the selection.
`
}

func (c *browseCmd) SetFlags(f *flag.FlagSet) { c.sel.SetFlags(f) }

func (c *browseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := openView(ctx, &c.sel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading feed: %v\n", err)
		return subcommands.ExitFailure
	}
	obs := v.d.Observations()
	if global.JSON {
		return printJSON(obs)
	}
	printMarkdown(renderer.ObservationsMarkdown("Observations", obs, v.f))
	return subcommands.ExitSuccess
}
