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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	sel  selectionFlags
	sort sortFlag
	by   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the metrics of grouped observations" }
func (*summaryCmd) Usage() string {
	return `msr summary [-by <dimensions>] [-sort <order>] [selection]

  Groups the selected observations by the dimensions of -by and displays the
  mean share, the total revenue and the total units of each group.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.sel.SetFlags(f)
	c.sort.SetFlags(f)
	f.StringVar(&c.by, "by", "category,year", "comma separated grouping dimensions among category, year and marketplace")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := marketshare.ParseGroupKey(c.by)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -by: %v\n", err)
		return subcommands.ExitUsageError
	}
	v, err := openView(ctx, &c.sel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading feed: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err := v.summary(key, c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing summary: %v\n", err)
		return subcommands.ExitFailure
	}
	if global.JSON {
		return printJSON(rowsOf(d))
	}
	printMarkdown(renderer.GroupedMarkdown("Summary by "+key.String(), d))
	return subcommands.ExitSuccess
}
