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

type trendCmd struct {
	sel    selectionFlags
	metric string
	detail bool
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display a metric per category and year" }
func (*trendCmd) Usage() string {
	return `msr trend [-metric share|revenue|units] [-detail] [selection]

  Displays a metric of each category with one column per year. With -detail,
  displays the metrics of each category, marketplace and year instead.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	c.sel.SetFlags(f)
	f.StringVar(&c.metric, "metric", "share", "metric to display: share, revenue or units")
	f.BoolVar(&c.detail, "detail", false, "detail the trend per marketplace")
}

func (c *trendCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := marketshare.ParseMetric(c.metric)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -metric: %v\n", err)
		return subcommands.ExitUsageError
	}
	v, err := openView(ctx, &c.sel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading feed: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.detail {
		rows := marketshare.Trend(v.d)
		if global.JSON {
			return printJSON(rows)
		}
		key := marketshare.GroupKey{marketshare.Category, marketshare.Marketplace, marketshare.Year}
		printMarkdown(renderer.GroupedMarkdown("Trend", v.f.Grouped(key, rows)))
		return subcommands.ExitSuccess
	}

	w, err := v.wide(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing trend: %v\n", err)
		return subcommands.ExitFailure
	}
	if global.JSON {
		return printJSON(w)
	}
	printMarkdown(renderer.WideMarkdown("Trend", v.f.Wide(w)))
	return subcommands.ExitSuccess
}
