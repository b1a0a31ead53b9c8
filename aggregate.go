package marketshare

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

// GroupedRow is the reduction of all observations sharing a grouping key.
//
// Dimensions that are not part of Key hold their zero value.
type GroupedRow struct {
	Key         GroupKey
	Category    string
	Year        int
	Marketplace string

	Count        int     // number of reduced observations
	SharePctMean float64 // share is a ratio: averaged
	RevenueSum   float64 // revenue and units are additive: summed
	UnitsSum     float64
}

var groupedColumns = []string{"year", "count", "share_pct", "revenue", "units"}

// Columns returns the numeric columns a GroupedRow can be ranked by.
func (GroupedRow) Columns() []string { return slices.Clone(groupedColumns) }

// Value returns the numeric value of a column, absent for unknown columns or a
// year that is not part of the key.
func (r GroupedRow) Value(column string) Value {
	switch column {
	case "year":
		if !r.Key.Has(Year) {
			return Absent()
		}
		return V(float64(r.Year))
	case "count":
		return V(float64(r.Count))
	case "share_pct":
		return V(r.SharePctMean)
	case "revenue":
		return V(r.RevenueSum)
	case "units":
		return V(r.UnitsSum)
	default:
		return Absent()
	}
}

// Label returns the key values of the row joined by " / ", like "Fashion / 2024".
func (r GroupedRow) Label() string {
	var s string
	for i, d := range r.Key {
		if i > 0 {
			s += " / "
		}
		switch d {
		case Category:
			s += r.Category
		case Year:
			s += strconv.Itoa(r.Year)
		case Marketplace:
			s += r.Marketplace
		}
	}
	return s
}

// MarshalJSON writes the key dimensions followed by the metrics.
func (r GroupedRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, d := range r.Key {
		switch d {
		case Category:
			w.Append("category", r.Category)
		case Year:
			w.Append("year", r.Year)
		case Marketplace:
			w.Append("marketplace", r.Marketplace)
		}
	}
	w.Append("count", r.Count)
	w.Append("share_pct_mean", r.SharePctMean)
	w.Append("revenue_sum", r.RevenueSum)
	w.Append("units_sum", r.UnitsSum)
	return w.MarshalJSON()
}

type groupID struct {
	category    string
	year        int
	marketplace string
}

func (g groupID) compare(h groupID) int {
	return cmp.Or(
		cmp.Compare(g.category, h.category),
		cmp.Compare(g.year, h.year),
		cmp.Compare(g.marketplace, h.marketplace),
	)
}

type accumulator struct {
	count                 int
	share, revenue, units decimal.Decimal
}

// Aggregate groups the observations by key and reduces each group: share is
// averaged, revenue and units are summed.
//
// Sums are exact, so the result does not depend on the order of the
// observations. Rows are sorted by category, year then marketplace. Only
// combinations present in the dataset are returned.
func Aggregate(d *Dataset, key GroupKey) ([]GroupedRow, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	key = slices.Clone(key)

	groups := make(map[groupID]*accumulator)
	for _, o := range d.All() {
		var id groupID
		if key.Has(Category) {
			id.category = o.Category
		}
		if key.Has(Year) {
			id.year = o.Year
		}
		if key.Has(Marketplace) {
			id.marketplace = o.Marketplace
		}
		acc, ok := groups[id]
		if !ok {
			acc = &accumulator{}
			groups[id] = acc
		}
		acc.count++
		acc.share = acc.share.Add(decimal.NewFromFloat(o.SharePct))
		acc.revenue = acc.revenue.Add(decimal.NewFromFloat(o.Revenue))
		acc.units = acc.units.Add(decimal.NewFromFloat(o.Units))
	}

	ids := make([]groupID, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, groupID.compare)

	rows := make([]GroupedRow, 0, len(ids))
	for _, id := range ids {
		acc := groups[id]
		rows = append(rows, GroupedRow{
			Key:          key,
			Category:     id.category,
			Year:         id.year,
			Marketplace:  id.marketplace,
			Count:        acc.count,
			SharePctMean: acc.share.Div(decimal.NewFromInt(int64(acc.count))).InexactFloat64(),
			RevenueSum:   acc.revenue.InexactFloat64(),
			UnitsSum:     acc.units.InexactFloat64(),
		})
	}
	return rows, nil
}
