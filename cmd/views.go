package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/etnz/marketshare"
)

var byCategoryYear = marketshare.GroupKey{marketshare.Category, marketshare.Year}

// view computes the report views of a dataset.
type view struct {
	d *marketshare.Dataset
	f marketshare.Formatter
}

func (v view) wide(m marketshare.Metric) (*marketshare.WideTable, error) {
	rows, err := marketshare.Aggregate(v.d, byCategoryYear)
	if err != nil {
		return nil, err
	}
	return marketshare.Pivot(rows, m)
}

// periods returns a and b, or the two most recent years when they are 0.
func (v view) periods(a, b int) (int, int, error) {
	if a != 0 && b != 0 {
		return a, b, nil
	}
	years := v.d.Domain().Years
	if len(years) < 2 {
		return 0, 0, fmt.Errorf("cannot compare periods: the data covers %d year(s), want 2", len(years))
	}
	if a == 0 {
		a = years[len(years)-2]
	}
	if b == 0 {
		b = years[len(years)-1]
	}
	return a, b, nil
}

// gap compares a metric between years a and b.
func (v view) gap(a, b int, m marketshare.Metric, s sortFlag) (*marketshare.ComparativeTable, error) {
	a, b, err := v.periods(a, b)
	if err != nil {
		return nil, err
	}
	w, err := v.wide(m)
	if err != nil {
		return nil, err
	}
	t := w.Compare(a, b)
	if t.Rows, err = rank(s, t.Rows); err != nil {
		return nil, err
	}
	return t, nil
}

// yearOverYear compares a metric between consecutive years.
func (v view) yearOverYear(m marketshare.Metric, s sortFlag) ([]*marketshare.ComparativeTable, error) {
	w, err := v.wide(m)
	if err != nil {
		return nil, err
	}
	tables := w.YearOverYear()
	for _, t := range tables {
		if t.Rows, err = rank(s, t.Rows); err != nil {
			return nil, err
		}
	}
	return tables, nil
}

func (v view) summary(key marketshare.GroupKey, s sortFlag) (marketshare.GroupedDisplay, error) {
	rows, err := marketshare.Aggregate(v.d, key)
	if err != nil {
		return marketshare.GroupedDisplay{}, err
	}
	if rows, err = rank(s, rows); err != nil {
		return marketshare.GroupedDisplay{}, err
	}
	return v.f.Grouped(key, rows), nil
}

func (v view) contribution(s sortFlag) (marketshare.GroupedDisplay, error) {
	rows, err := rank(s, marketshare.Contribution(v.d))
	if err != nil {
		return marketshare.GroupedDisplay{}, err
	}
	return v.f.Grouped(marketshare.GroupKey{marketshare.Category, marketshare.Marketplace}, rows), nil
}

func (v view) distribution(s sortFlag) ([]marketshare.DistributionDisplayRow, error) {
	rows, err := rank(s, marketshare.Distribution(v.d))
	if err != nil {
		return nil, err
	}
	return v.f.Distribution(rows), nil
}

func gapTitle(t *marketshare.ComparativeTable) string {
	return fmt.Sprintf("%s gap %d-%d", t.Metric.Label(), t.PeriodA, t.PeriodB)
}

// openView loads the feed and applies the selection.
func openView(ctx context.Context, sel *selectionFlags) (view, error) {
	d, err := loadDataset(ctx)
	if err != nil {
		return view{}, err
	}
	if sel != nil {
		if d, err = sel.Filter(d); err != nil {
			return view{}, err
		}
	}
	if d.Len() == 0 {
		log.Println("warning: no data selected")
	}
	return view{d: d, f: formatter()}, nil
}

// rowsOf returns the raw rows of a display.
func rowsOf(d marketshare.GroupedDisplay) []marketshare.GroupedRow {
	rows := make([]marketshare.GroupedRow, 0, len(d.Rows))
	for _, r := range d.Rows {
		rows = append(rows, r.Row)
	}
	return rows
}
