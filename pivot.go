package marketshare

import (
	"fmt"
	"slices"
)

// WideTable is the wide form of a metric: one row per category, one column per
// year. Cells without data are absent.
type WideTable struct {
	Metric Metric
	Years  []int // ascending
	Rows   []WideRow
}

// WideRow holds the values of a category, parallel to WideTable.Years.
type WideRow struct {
	Category string
	Values   []Value
}

// Pivot reshapes rows grouped by category and year into a WideTable.
// Categories and years are sorted ascending.
func Pivot(rows []GroupedRow, m Metric) (*WideTable, error) {
	var categories []string
	var years []int
	for _, r := range rows {
		if !r.Key.Equal(GroupKey{Category, Year}) {
			return nil, fmt.Errorf("cannot pivot rows grouped by %v: want category,year", r.Key)
		}
		categories = append(categories, r.Category)
		years = append(years, r.Year)
	}
	slices.Sort(categories)
	slices.Sort(years)
	categories = slices.Compact(categories)
	years = slices.Compact(years)

	w := &WideTable{Metric: m, Years: years, Rows: make([]WideRow, len(categories))}
	for i, c := range categories {
		w.Rows[i] = WideRow{Category: c, Values: make([]Value, len(years))}
	}
	for _, r := range rows {
		i, _ := slices.BinarySearch(categories, r.Category)
		j, _ := slices.BinarySearch(years, r.Year)
		if w.Rows[i].Values[j].Present() {
			return nil, fmt.Errorf("cannot pivot: duplicated row for %q in %d", r.Category, r.Year)
		}
		w.Rows[i].Values[j] = V(m.Of(r))
	}
	return w, nil
}

// Cell returns the value of a category in a year.
func (w *WideTable) Cell(category string, year int) Value {
	j, ok := slices.BinarySearch(w.Years, year)
	if !ok {
		return Absent()
	}
	for _, r := range w.Rows {
		if r.Category == category {
			return r.Values[j]
		}
	}
	return Absent()
}

func (r WideRow) at(years []int, year int) Value {
	j, ok := slices.BinarySearch(years, year)
	if !ok {
		return Absent()
	}
	return r.Values[j]
}

// Compare derives the comparative table between years a and b.
func (w *WideTable) Compare(a, b int) *ComparativeTable {
	t := &ComparativeTable{Metric: w.Metric, PeriodA: a, PeriodB: b}
	for _, r := range w.Rows {
		va, vb := r.at(w.Years, a), r.at(w.Years, b)
		if !va.Present() && !vb.Present() {
			continue
		}
		t.Rows = append(t.Rows, NewComparativeRow(r.Category, va, vb))
	}
	return t
}

// YearOverYear returns the comparative tables of every pair of consecutive
// years.
func (w *WideTable) YearOverYear() []*ComparativeTable {
	var tables []*ComparativeTable
	for i := 1; i < len(w.Years); i++ {
		tables = append(tables, w.Compare(w.Years[i-1], w.Years[i]))
	}
	return tables
}
