package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/marketshare"
	"github.com/etnz/marketshare/renderer"
	"github.com/google/subcommands"
)

type publishCmd struct {
	sel    selectionFlags
	output string
	title  string
	metric string
	html   bool
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "generate a report with every view" }
func (*publishCmd) Usage() string {
	return `msr publish [-o <file>] [-title <title>] [-metric share|revenue|units] [-html] [selection]

  Generates a markdown report with the domain, the summary, the trend, the gap
  between the two most recent years, the contribution and the distribution of
  the selected observations. With -html, the report is converted to html.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	c.sel.SetFlags(f)
	f.StringVar(&c.output, "o", "report.md", "path of the report")
	f.StringVar(&c.title, "title", "Market Share Report", "title of the report")
	f.StringVar(&c.metric, "metric", "share", "metric of the trend and gap sections")
	f.BoolVar(&c.html, "html", false, "convert the report to html")
}

func (c *publishCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	sections, err := v.sections(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing views: %v\n", err)
		return subcommands.ExitFailure
	}
	doc, err := renderer.RenderReport(&renderer.Report{
		Title:     c.title,
		Source:    global.Source,
		Selection: c.sel.String(),
		Sections:  sections,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.html {
		if doc, err = renderer.HTML(doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error converting report to html: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := os.WriteFile(c.output, []byte(doc), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write file %s: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	log.Printf("Generated %s", c.output)
	return subcommands.ExitSuccess
}

// sections renders every view as a markdown section. The gap section is
// omitted when the data covers less than two years.
func (v view) sections(m marketshare.Metric) ([]string, error) {
	sections := []string{renderer.DomainMarkdown(v.d.Domain())}

	summary, err := v.summary(byCategoryYear, sortFlag{})
	if err != nil {
		return nil, err
	}
	sections = append(sections, renderer.GroupedMarkdown("Summary", summary))

	w, err := v.wide(m)
	if err != nil {
		return nil, err
	}
	sections = append(sections, renderer.WideMarkdown(m.Label()+" trend", v.f.Wide(w)))

	if len(w.Years) >= 2 {
		t := w.Compare(w.Years[len(w.Years)-2], w.Years[len(w.Years)-1])
		sections = append(sections, renderer.ComparativeMarkdown(gapTitle(t), v.f.Comparative(t)))
	}

	contribution, err := v.contribution(sortFlag{})
	if err != nil {
		return nil, err
	}
	sections = append(sections, renderer.ContributionMarkdown("Contribution", contribution))

	distribution, err := v.distribution(sortFlag{})
	if err != nil {
		return nil, err
	}
	return append(sections, renderer.DistributionMarkdown("Distribution", distribution)), nil
}
