package renderer

import (
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/marketshare"
)

// ComparativeMarkdown renders a comparative table: one row per category, the
// metric in both periods, the gap and the growth.
func ComparativeMarkdown(title string, d marketshare.ComparativeDisplay) string {
	var r mdRenderer
	r.Title(title)
	header := []string{"Category", strconv.Itoa(d.PeriodA), strconv.Itoa(d.PeriodB), "Gap", "Growth"}
	rows := make([][]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		rows = append(rows, []string{row.Row.Category, row.PeriodA, row.PeriodB, row.Gap, row.Growth})
	}
	if len(rows) == 0 {
		r.Printf("No data for %d and %d.\n\n", d.PeriodA, d.PeriodB)
		return r.String()
	}
	r.Printf("*%s, %d vs %d*\n\n", d.Metric.Label(), d.PeriodA, d.PeriodB)
	r.Table(1, header, rows)
	return r.String()
}

func dimensionLabel(d marketshare.Dimension) string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func dimensionValue(row marketshare.GroupedRow, d marketshare.Dimension) string {
	switch d {
	case marketshare.Year:
		return strconv.Itoa(row.Year)
	case marketshare.Marketplace:
		return row.Marketplace
	default:
		return row.Category
	}
}

// GroupedMarkdown renders grouped rows: the key dimensions followed by every
// metric.
func GroupedMarkdown(title string, d marketshare.GroupedDisplay) string {
	var r mdRenderer
	r.Title(title)
	var header []string
	for _, dim := range d.Key {
		header = append(header, dimensionLabel(dim))
	}
	header = append(header, "Observations", marketshare.Share.Label(), marketshare.Revenue.Label(), marketshare.Units.Label())

	rows := make([][]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		var cells []string
		for _, dim := range d.Key {
			cells = append(cells, dimensionValue(row.Row, dim))
		}
		rows = append(rows, append(cells, row.Count, row.Share, row.Revenue, row.Units))
	}
	if len(rows) == 0 {
		r.Printf("No data.\n\n")
		return r.String()
	}
	r.Table(len(d.Key), header, rows)
	return r.String()
}

// WideMarkdown renders a metric with one column per year.
func WideMarkdown(title string, d marketshare.WideDisplay) string {
	var r mdRenderer
	r.Title(title)
	if len(d.Categories) == 0 {
		r.Printf("No data.\n\n")
		return r.String()
	}
	header := []string{"Category"}
	for _, y := range d.Years {
		header = append(header, strconv.Itoa(y))
	}
	rows := make([][]string, len(d.Categories))
	for i, c := range d.Categories {
		rows[i] = append([]string{c}, d.Cells[i]...)
	}
	r.Printf("*%s*\n\n", d.Metric.Label())
	r.Table(1, header, rows)
	return r.String()
}

// ContributionMarkdown renders the revenue of rows grouped by category and
// marketplace as a grid: one row per category, one column per marketplace.
// Combinations without observations show the display marker.
func ContributionMarkdown(title string, d marketshare.GroupedDisplay) string {
	var r mdRenderer
	r.Title(title)
	if len(d.Rows) == 0 {
		r.Printf("No data.\n\n")
		return r.String()
	}
	var categories, marketplaces []string
	cells := make(map[[2]string]string)
	for _, row := range d.Rows {
		categories = append(categories, row.Row.Category)
		marketplaces = append(marketplaces, row.Row.Marketplace)
		cells[[2]string{row.Row.Category, row.Row.Marketplace}] = row.Revenue
	}
	slices.Sort(categories)
	slices.Sort(marketplaces)
	categories = slices.Compact(categories)
	marketplaces = slices.Compact(marketplaces)

	header := append([]string{"Category"}, marketplaces...)
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		row := []string{c}
		for _, m := range marketplaces {
			v, ok := cells[[2]string{c, m}]
			if !ok {
				v = d.NotAvailable
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	r.Printf("*%s*\n\n", marketshare.Revenue.Label())
	r.Table(1, header, rows)
	return r.String()
}

// DistributionMarkdown renders the share of each marketplace and its portion
// of the total.
func DistributionMarkdown(title string, d []marketshare.DistributionDisplayRow) string {
	var r mdRenderer
	r.Title(title)
	if len(d) == 0 {
		r.Printf("No data.\n\n")
		return r.String()
	}
	rows := make([][]string, 0, len(d))
	for _, row := range d {
		rows = append(rows, []string{row.Row.Marketplace, row.Share, row.Percent})
	}
	r.Table(1, []string{"Marketplace", "Total Share", "Portion"}, rows)
	return r.String()
}

// ObservationsMarkdown renders raw observations.
func ObservationsMarkdown(title string, obs []marketshare.Observation, f marketshare.Formatter) string {
	var r mdRenderer
	r.Title(title)
	if len(obs) == 0 {
		r.Printf("No data.\n\n")
		return r.String()
	}
	rows := make([][]string, 0, len(obs))
	for _, o := range obs {
		rows = append(rows, []string{
			o.Marketplace,
			o.Category,
			strconv.Itoa(o.Year),
			f.Format(f.KindOf(marketshare.Share), marketshare.V(o.SharePct)),
			f.Format(f.KindOf(marketshare.Revenue), marketshare.V(o.Revenue)),
			f.Format(f.KindOf(marketshare.Units), marketshare.V(o.Units)),
		})
	}
	header := []string{"Marketplace", "Category", "Year", marketshare.Share.Label(), marketshare.Revenue.Label(), marketshare.Units.Label()}
	r.Table(3, header, rows)
	return r.String()
}

// DomainMarkdown renders the distinct values of each dimension.
func DomainMarkdown(d marketshare.Domain) string {
	var r mdRenderer
	years := make([]string, len(d.Years))
	for i, y := range d.Years {
		years[i] = strconv.Itoa(y)
	}
	r.Printf("## Marketplaces\n\n")
	for _, m := range d.Marketplaces {
		r.Printf("- %s\n", m)
	}
	r.Printf("\n## Years\n\n%s\n\n", strings.Join(years, ", "))
	r.Printf("## Categories\n\n")
	for _, c := range d.Categories {
		r.Printf("- %s\n", c)
	}
	r.Printf("\n")
	return r.String()
}
