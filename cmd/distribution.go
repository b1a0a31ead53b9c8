package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marketshare"
	"github.com/etnz/marketshare/renderer"
	"github.com/google/subcommands"
)

type distributionCmd struct {
	sel  selectionFlags
	sort sortFlag
}

func (*distributionCmd) Name() string     { return "distribution" }
func (*distributionCmd) Synopsis() string { return "display the share of each marketplace" }
func (*distributionCmd) Usage() string {
	return `msr distribution [-sort <order>] [selection]

  Sums the share of each marketplace and displays its portion of the total of
  all marketplaces.
`
}

func (c *distributionCmd) SetFlags(f *flag.FlagSet) {
	c.sel.SetFlags(f)
	c.sort.SetFlags(f)
}

func (c *distributionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := openView(ctx, &c.sel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading feed: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err := v.distribution(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing distribution: %v\n", err)
		return subcommands.ExitFailure
	}
	if global.JSON {
		rows := make([]marketshare.DistributionRow, 0, len(d))
		for _, r := range d {
			rows = append(rows, r.Row)
		}
		return printJSON(rows)
	}
	printMarkdown(renderer.DistributionMarkdown("Distribution", d))
	return subcommands.ExitSuccess
}
