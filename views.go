package marketshare

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Trend returns the mean share of every category, marketplace and year: the
// points of a share trend chart.
func Trend(d *Dataset) []GroupedRow {
	return mustAggregate(d, GroupKey{Category, Marketplace, Year})
}

// Contribution returns the revenue of every category in every marketplace.
func Contribution(d *Dataset) []GroupedRow {
	return mustAggregate(d, GroupKey{Category, Marketplace})
}

// mustAggregate is Aggregate for keys known to be valid. It panics otherwise.
func mustAggregate(d *Dataset, key GroupKey) []GroupedRow {
	rows, err := Aggregate(d, key)
	if err != nil {
		panic(err)
	}
	return rows
}

// DistributionRow is the total share of a marketplace and its portion of the
// grand total.
type DistributionRow struct {
	Marketplace string
	SharePct    float64 // sum of the marketplace observations' share
	Percent     Value   // SharePct / total × 100, absent when the total is 0
}

var distributionColumns = []string{"share_pct", "percent"}

func (DistributionRow) Columns() []string { return slices.Clone(distributionColumns) }

func (r DistributionRow) Value(column string) Value {
	switch column {
	case "share_pct":
		return V(r.SharePct)
	case "percent":
		return r.Percent
	default:
		return Absent()
	}
}

func (r DistributionRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("marketplace", r.Marketplace)
	w.Append("share_pct", r.SharePct)
	w.Append("percent", r.Percent)
	return w.MarshalJSON()
}

// Distribution sums the share of each marketplace and computes its portion of
// the total, the data of a share distribution chart. Rows are sorted by
// marketplace.
func Distribution(d *Dataset) []DistributionRow {
	sums := make(map[string]decimal.Decimal)
	var total decimal.Decimal
	for _, o := range d.All() {
		s := decimal.NewFromFloat(o.SharePct)
		sums[o.Marketplace] = sums[o.Marketplace].Add(s)
		total = total.Add(s)
	}

	rows := make([]DistributionRow, 0, len(sums))
	for _, m := range d.Domain().Marketplaces {
		r := DistributionRow{Marketplace: m, SharePct: sums[m].InexactFloat64()}
		if !total.IsZero() {
			r.Percent = V(sums[m].Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64())
		}
		rows = append(rows, r)
	}
	return rows
}
