package marketshare

import "slices"

// ComparativeRow compares a metric of one category between two periods.
//
// Gap is PeriodB-PeriodA. Growth is Gap/PeriodA×100. Both are absent when a
// period is absent, Growth is also absent when PeriodA is zero.
type ComparativeRow struct {
	Category string
	PeriodA  Value
	PeriodB  Value
	Gap      Value
	Growth   Value // percent
}

// NewComparativeRow derives Gap and Growth from the two period values.
func NewComparativeRow(category string, a, b Value) ComparativeRow {
	r := ComparativeRow{Category: category, PeriodA: a, PeriodB: b, Gap: b.Sub(a)}
	if av, ok := a.Float(); ok && av != 0 {
		if bv, ok := b.Float(); ok {
			r.Growth = V((bv - av) / av * 100)
		}
	}
	return r
}

var comparativeColumns = []string{"period_a", "period_b", "gap", "growth_pct"}

// Columns returns the numeric columns a ComparativeRow can be ranked by.
func (ComparativeRow) Columns() []string { return slices.Clone(comparativeColumns) }

func (r ComparativeRow) Value(column string) Value {
	switch column {
	case "period_a":
		return r.PeriodA
	case "period_b":
		return r.PeriodB
	case "gap":
		return r.Gap
	case "growth_pct":
		return r.Growth
	default:
		return Absent()
	}
}

func (r ComparativeRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", r.Category)
	w.Append("period_a", r.PeriodA)
	w.Append("period_b", r.PeriodB)
	w.Append("gap", r.Gap)
	w.Append("growth_pct", r.Growth)
	return w.MarshalJSON()
}

// ComparativeTable compares a metric between two reference years.
type ComparativeTable struct {
	Metric  Metric
	PeriodA int
	PeriodB int
	Rows    []ComparativeRow
}

// Compare builds the comparative table of a metric between years a and b from
// rows grouped by category and year.
//
// There is one row per category present in either year, sorted by category.
func Compare(rows []GroupedRow, a, b int, m Metric) (*ComparativeTable, error) {
	w, err := Pivot(rows, m)
	if err != nil {
		return nil, err
	}
	return w.Compare(a, b), nil
}
