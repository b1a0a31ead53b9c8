package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/marketshare"
	"github.com/etnz/marketshare/renderer"
	"github.com/google/subcommands"
)

type gapCmd struct {
	sel    selectionFlags
	sort   sortFlag
	a, b   int
	metric string
	yoy    bool
}

func (*gapCmd) Name() string     { return "gap" }
func (*gapCmd) Synopsis() string { return "compare a metric of each category between two years" }
func (*gapCmd) Usage() string {
	return `msr gap [-a <year>] [-b <year>] [-metric share|revenue|units] [-sort <order>] [-yoy] [selection]

  Compares a metric of each category between years a and b: the value in both
  years, the gap b-a and the growth in percent. a and b default to the two most
  recent years. With -yoy, compares every pair of consecutive years.

  See 'topic comparison'.
`
}

func (c *gapCmd) SetFlags(f *flag.FlagSet) {
	c.sel.SetFlags(f)
	c.sort.SetFlags(f)
	f.IntVar(&c.a, "a", 0, "reference year, the year before b by default")
	f.IntVar(&c.b, "b", 0, "compared year, the most recent year by default")
	f.StringVar(&c.metric, "metric", "share", "metric to compare: share, revenue or units")
	f.BoolVar(&c.yoy, "yoy", false, "compare every pair of consecutive years")
}

func (c *gapCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var tables []*marketshare.ComparativeTable
	if c.yoy {
		tables, err = v.yearOverYear(m, c.sort)
	} else {
		var t *marketshare.ComparativeTable
		t, err = v.gap(c.a, c.b, m, c.sort)
		tables = append(tables, t)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing gap: %v\n", err)
		return subcommands.ExitFailure
	}

	if global.JSON {
		return printJSON(tables)
	}
	var b strings.Builder
	for _, t := range tables {
		b.WriteString(renderer.ComparativeMarkdown(gapTitle(t), v.f.Comparative(t)))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
