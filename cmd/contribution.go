package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marketshare/renderer"
	"github.com/google/subcommands"
)

type contributionCmd struct {
	sel  selectionFlags
	sort sortFlag
}

func (*contributionCmd) Name() string { return "contribution" }
func (*contributionCmd) Synopsis() string {
	return "display the revenue of each category per marketplace"
}
func (*contributionCmd) Usage() string {
	return `msr contribution [-sort <order>] [selection]

  Displays the revenue of each category on each marketplace, as a grid. With
  -sort, displays the ranked list of category and marketplace pairs instead.
`
}

func (c *contributionCmd) SetFlags(f *flag.FlagSet) {
	c.sel.SetFlags(f)
	c.sort.SetFlags(f)
}

func (c *contributionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := openView(ctx, &c.sel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading feed: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err := v.contribution(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing contribution: %v\n", err)
		return subcommands.ExitFailure
	}
	if global.JSON {
		return printJSON(rowsOf(d))
	}
	if c.sort.order != "" {
		printMarkdown(renderer.GroupedMarkdown("Contribution", d))
	} else {
		printMarkdown(renderer.ContributionMarkdown("Contribution", d))
	}
	return subcommands.ExitSuccess
}
