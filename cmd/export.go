package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/etnz/marketshare"
	"github.com/etnz/marketshare/sheet"
	"github.com/google/subcommands"
)

type exportCmd struct {
	sel    selectionFlags
	output string
	metric string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the views as an xlsx workbook" }
func (*exportCmd) Usage() string {
	return `msr export [-o <file>] [-metric share|revenue|units] [selection]

  Writes the selected observations and their views to an xlsx workbook, one
  worksheet per view. Cells hold raw values, missing values hold N/A.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.sel.SetFlags(f)
	f.StringVar(&c.output, "o", "marketshare.xlsx", "path of the workbook")
	f.StringVar(&c.metric, "metric", "share", "metric of the trend and gap worksheets")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	sheets, err := v.sheets(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing views: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating workbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := sheet.WriteXLSX(out, sheets...); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing workbook: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing workbook: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("Generated %s with %d worksheets", c.output, len(sheets))
	return subcommands.ExitSuccess
}

// cell is the raw value of v, or the marker when it is absent.
func (v view) cell(x marketshare.Value) any {
	if f, ok := x.Float(); ok {
		return f
	}
	return v.f.Format(marketshare.Count, x)
}

// sheets returns the worksheets of every view of m. The gap worksheet is
// omitted when the data covers less than two years.
func (v view) sheets(m marketshare.Metric) ([]sheet.Sheet, error) {
	obs := sheet.Sheet{
		Name:   "observations",
		Header: []string{"Marketplace", "Category", "Year", "Share", "Revenue", "Units"},
	}
	for _, o := range v.d.Observations() {
		obs.Rows = append(obs.Rows, []any{o.Marketplace, o.Category, o.Year, o.SharePct, o.Revenue, o.Units})
	}

	summary, err := marketshare.Aggregate(v.d, byCategoryYear)
	if err != nil {
		return nil, err
	}
	sheets := []sheet.Sheet{obs, groupedSheet("summary", summary)}

	w, err := marketshare.Pivot(summary, m)
	if err != nil {
		return nil, err
	}
	trend := sheet.Sheet{Name: "trend", Header: []string{"Category"}}
	for _, y := range w.Years {
		trend.Header = append(trend.Header, strconv.Itoa(y))
	}
	for _, r := range w.Rows {
		row := []any{r.Category}
		for _, x := range r.Values {
			row = append(row, v.cell(x))
		}
		trend.Rows = append(trend.Rows, row)
	}
	sheets = append(sheets, trend)

	if len(w.Years) >= 2 {
		t := w.Compare(w.Years[len(w.Years)-2], w.Years[len(w.Years)-1])
		gap := sheet.Sheet{
			Name:   "gap",
			Header: []string{"Category", strconv.Itoa(t.PeriodA), strconv.Itoa(t.PeriodB), "Gap", "Growth %"},
		}
		for _, r := range t.Rows {
			gap.Rows = append(gap.Rows, []any{r.Category, v.cell(r.PeriodA), v.cell(r.PeriodB), v.cell(r.Gap), v.cell(r.Growth)})
		}
		sheets = append(sheets, gap)
	}

	sheets = append(sheets, groupedSheet("contribution", marketshare.Contribution(v.d)))

	dist := sheet.Sheet{Name: "distribution", Header: []string{"Marketplace", "Total Share", "Portion %"}}
	for _, r := range marketshare.Distribution(v.d) {
		dist.Rows = append(dist.Rows, []any{r.Marketplace, r.SharePct, v.cell(r.Percent)})
	}
	return append(sheets, dist), nil
}

func groupedSheet(name string, rows []marketshare.GroupedRow) sheet.Sheet {
	s := sheet.Sheet{Name: name}
	var key marketshare.GroupKey
	if len(rows) > 0 {
		key = rows[0].Key
	}
	for _, d := range key {
		s.Header = append(s.Header, d.String())
	}
	s.Header = append(s.Header, "count", "share_pct", "revenue", "units")
	for _, r := range rows {
		row := make([]any, 0, len(s.Header))
		for _, d := range key {
			switch d {
			case marketshare.Category:
				row = append(row, r.Category)
			case marketshare.Marketplace:
				row = append(row, r.Marketplace)
			case marketshare.Year:
				row = append(row, r.Year)
			}
		}
		s.Rows = append(s.Rows, append(row, r.Count, r.SharePctMean, r.RevenueSum, r.UnitsSum))
	}
	return s
}
