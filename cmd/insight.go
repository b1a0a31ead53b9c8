package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/marketshare"
	"github.com/etnz/marketshare/agent"
	"github.com/etnz/marketshare/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type insightCmd struct {
	once bool
}

func (*insightCmd) Name() string     { return "insight" }
func (*insightCmd) Synopsis() string { return "discuss the reports with a Gemini analyst" }
func (*insightCmd) Usage() string {
	return `msr insight [-once] [<question>]

  Starts a session with a Gemini analyst that reads the reports of the feed to
  answer questions. Without a question, the analyst first comments the gap
  between the two most recent years. Type 'bye' to quit.

  Requires GEMINI_API_KEY or GOOGLE_API_KEY in the environment.
`
}

func (c *insightCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.once, "once", false, "answer the question and quit")
}

const defaultQuestion = "Comment the share gap of each category between the two most recent years."

func (c *insightCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := strings.TrimSpace(strings.Join(f.Args(), " "))
	if question == "" {
		question = defaultQuestion
	}

	v, err := openView(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading feed: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(global.Model, v.reports()...))
	a.Print = func(w io.Writer, md string) { printMarkdown(md) }

	if c.once {
		if err = a.Expert.Start(ctx, client); err == nil {
			err = a.Ask(ctx, question)
		}
	} else {
		err = a.Run(ctx, client, question)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

var selectionParameters = map[string]string{
	"marketplaces": "Comma separated marketplaces to include, all by default.",
	"years":        "Comma separated years to include, all by default.",
	"categories":   "Comma separated categories to include, all by default.",
}

func withSelection(params map[string]string) map[string]string {
	for k, v := range selectionParameters {
		params[k] = v
	}
	return params
}

// selected applies the selection arguments of a report.
func (v view) selected(args map[string]string) (view, error) {
	sel := selectionFlags{marketplaces: args["marketplaces"], years: args["years"], categories: args["categories"]}
	d, err := sel.Filter(v.d)
	if err != nil {
		return v, err
	}
	return view{d: d, f: v.f}, nil
}

func metricArg(args map[string]string) (marketshare.Metric, error) {
	if s := args["metric"]; s != "" {
		return marketshare.ParseMetric(s)
	}
	return marketshare.Share, nil
}

func yearArg(args map[string]string, name string) (int, error) {
	s := args[name]
	if s == "" {
		return 0, nil
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return y, nil
}

// reports are the functions the analyst can call, one per view.
func (v view) reports() []*agent.Report {
	return []*agent.Report{
		{
			Name:        "domain",
			Description: "Lists the marketplaces, years and categories of the data.",
			Render: func(map[string]string) (string, error) {
				return renderer.DomainMarkdown(v.d.Domain()), nil
			},
		},
		{
			Name:        "summary",
			Description: "Mean share, total revenue and total units of the observations grouped by some dimensions.",
			Parameters: withSelection(map[string]string{
				"by":   "Comma separated grouping dimensions among category, year and marketplace. Defaults to category,year.",
				"sort": "Ranking order like 'revenue:desc:top:5'. Keys are year, count, share_pct, revenue and units.",
			}),
			Render: func(args map[string]string) (string, error) {
				key := byCategoryYear
				if by := args["by"]; by != "" {
					var err error
					if key, err = marketshare.ParseGroupKey(by); err != nil {
						return "", err
					}
				}
				s, err := v.selected(args)
				if err != nil {
					return "", err
				}
				d, err := s.summary(key, sortFlag{order: args["sort"]})
				if err != nil {
					return "", err
				}
				return renderer.GroupedMarkdown("Summary by "+key.String(), d), nil
			},
		},
		{
			Name:        "trend",
			Description: "A metric of each category for every year.",
			Parameters: withSelection(map[string]string{
				"metric": "One of share, revenue or units. Defaults to share.",
			}),
			Render: func(args map[string]string) (string, error) {
				m, err := metricArg(args)
				if err != nil {
					return "", err
				}
				s, err := v.selected(args)
				if err != nil {
					return "", err
				}
				w, err := s.wide(m)
				if err != nil {
					return "", err
				}
				return renderer.WideMarkdown(m.Label()+" trend", s.f.Wide(w)), nil
			},
		},
		{
			Name:        "gap",
			Description: "Compares a metric of each category between two years: value in both years, absolute gap and relative growth.",
			Parameters: withSelection(map[string]string{
				"a":      "Reference year. Defaults to the year before b.",
				"b":      "Compared year. Defaults to the most recent year.",
				"metric": "One of share, revenue or units. Defaults to share.",
				"sort":   "Ranking order like 'gap:desc:top:3'. Keys are period_a, period_b, gap and growth_pct.",
			}),
			Render: func(args map[string]string) (string, error) {
				m, err := metricArg(args)
				if err != nil {
					return "", err
				}
				a, err := yearArg(args, "a")
				if err != nil {
					return "", err
				}
				b, err := yearArg(args, "b")
				if err != nil {
					return "", err
				}
				s, err := v.selected(args)
				if err != nil {
					return "", err
				}
				t, err := s.gap(a, b, m, sortFlag{order: args["sort"]})
				if err != nil {
					return "", err
				}
				return renderer.ComparativeMarkdown(gapTitle(t), s.f.Comparative(t)), nil
			},
		},
		{
			Name:        "contribution",
			Description: "Revenue of each category on each marketplace.",
			Parameters:  withSelection(map[string]string{}),
			Render: func(args map[string]string) (string, error) {
				s, err := v.selected(args)
				if err != nil {
					return "", err
				}
				d, err := s.contribution(sortFlag{})
				if err != nil {
					return "", err
				}
				return renderer.ContributionMarkdown("Contribution", d), nil
			},
		},
		{
			Name:        "distribution",
			Description: "Total share of each marketplace and its portion of all marketplaces.",
			Parameters:  withSelection(map[string]string{}),
			Render: func(args map[string]string) (string, error) {
				s, err := v.selected(args)
				if err != nil {
					return "", err
				}
				d, err := s.distribution(sortFlag{})
				if err != nil {
					return "", err
				}
				return renderer.DistributionMarkdown("Distribution", d), nil
			},
		},
	}
}
