package marketshare

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatKind selects how a numeric value is displayed.
type FormatKind int

const (
	Percentage FormatKind = iota
	Currency
	Count
)

func (k FormatKind) String() string {
	switch k {
	case Currency:
		return "currency"
	case Count:
		return "count"
	default:
		return "percentage"
	}
}

func ParseFormatKind(s string) (FormatKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percentage", "percent", "%":
		return Percentage, nil
	case "currency", "money":
		return Currency, nil
	case "count", "int":
		return Count, nil
	default:
		return Percentage, fmt.Errorf("unknown format kind %q", s)
	}
}

const (
	// NotAvailable is the default marker of absent values.
	NotAvailable = "N/A"
	// DefaultCurrency is the currency of the reference dataset.
	DefaultCurrency = "IDR"
)

// Formatter turns values into display strings.
//
// The zero Formatter displays amounts in DefaultCurrency and absent values as
// NotAvailable.
type Formatter struct {
	Currency     string // ISO 4217 code
	NotAvailable string
	// Kinds overrides the display kind of metrics, Metric.Kind by default.
	Kinds map[Metric]FormatKind
}

// KindOf returns the display kind of metric m.
func (f Formatter) KindOf(m Metric) FormatKind {
	if k, ok := f.Kinds[m]; ok {
		return k
	}
	return m.Kind()
}

func NewFormatter(currency string) Formatter {
	return Formatter{Currency: currency, NotAvailable: NotAvailable}
}

func (f Formatter) marker() string { return cmp.Or(f.NotAvailable, NotAvailable) }

// grapheme returns the currency symbol, or the code itself for currencies
// unknown to go-money.
func (f Formatter) grapheme() string {
	code := strings.ToUpper(cmp.Or(f.Currency, DefaultCurrency))
	if c := money.GetCurrency(code); c != nil && c.Grapheme != "" {
		return c.Grapheme
	}
	return code
}

func (f Formatter) format(kind FormatKind, v float64) string {
	switch kind {
	case Currency:
		return money.NewFormatter(0, ".", ",", f.grapheme(), "$ 1").Format(rounded(v))
	case Count:
		return money.NewFormatter(0, ".", ",", "", "1").Format(rounded(v))
	default:
		return Percent(v).String()
	}
}

func rounded(v float64) int64 { return decimal.NewFromFloat(v).Round(0).IntPart() }

// isPositive reports whether v is still positive once rounded for display.
func isPositive(kind FormatKind, v float64) bool {
	places := int32(0)
	if kind == Percentage {
		places = 2
	}
	return decimal.NewFromFloat(v).Round(places).IsPositive()
}

// Format displays v, or the NotAvailable marker if v is absent.
//
//	Currency    Rp 1,234,568
//	Count       12,345
//	Percentage  12.50%
func (f Formatter) Format(kind FormatKind, v Value) string {
	x, ok := v.Float()
	if !ok {
		return f.marker()
	}
	return f.format(kind, x)
}

// Signed is like Format with an explicit "+" for positive values, used for
// deltas. Values that round to zero have no sign.
func (f Formatter) Signed(kind FormatKind, v Value) string {
	x, ok := v.Float()
	if !ok {
		return f.marker()
	}
	s := f.format(kind, x)
	if isPositive(kind, x) {
		s = "+" + s
	}
	return s
}

// ComparativeDisplayRow holds the display strings of a ComparativeRow.
type ComparativeDisplayRow struct {
	Row                           ComparativeRow
	PeriodA, PeriodB, Gap, Growth string
}

// ComparativeDisplay is a ComparativeTable ready to be displayed.
type ComparativeDisplay struct {
	Metric  Metric
	PeriodA int
	PeriodB int
	Rows    []ComparativeDisplayRow
}

// Comparative formats a comparative table: period values in the metric kind,
// the gap signed in the metric kind and the growth as a signed percentage.
// Rows keep the table order.
func (f Formatter) Comparative(t *ComparativeTable) ComparativeDisplay {
	d := ComparativeDisplay{Metric: t.Metric, PeriodA: t.PeriodA, PeriodB: t.PeriodB}
	kind := f.KindOf(t.Metric)
	for _, r := range t.Rows {
		d.Rows = append(d.Rows, ComparativeDisplayRow{
			Row:     r,
			PeriodA: f.Format(kind, r.PeriodA),
			PeriodB: f.Format(kind, r.PeriodB),
			Gap:     f.Signed(kind, r.Gap),
			Growth:  f.Signed(Percentage, r.Growth),
		})
	}
	return d
}

// GroupedDisplayRow holds the display strings of a GroupedRow.
type GroupedDisplayRow struct {
	Row                          GroupedRow
	Label                        string
	Count, Share, Revenue, Units string
}

// GroupedDisplay is a sequence of grouped rows ready to be displayed.
type GroupedDisplay struct {
	Key          GroupKey
	NotAvailable string // marker for combinations without rows
	Rows         []GroupedDisplayRow
}

// Grouped formats grouped rows in the kinds of their metrics. Rows keep their order.
func (f Formatter) Grouped(key GroupKey, rows []GroupedRow) GroupedDisplay {
	d := GroupedDisplay{Key: key, NotAvailable: f.marker()}
	for _, r := range rows {
		d.Rows = append(d.Rows, GroupedDisplayRow{
			Row:     r,
			Label:   r.Label(),
			Count:   f.Format(Count, V(float64(r.Count))),
			Share:   f.Format(f.KindOf(Share), V(r.SharePctMean)),
			Revenue: f.Format(f.KindOf(Revenue), V(r.RevenueSum)),
			Units:   f.Format(f.KindOf(Units), V(r.UnitsSum)),
		})
	}
	return d
}

// WideDisplay is a WideTable ready to be displayed: Cells[i][j] is the value
// of Rows[i] in Years[j].
type WideDisplay struct {
	Metric     Metric
	Years      []int
	Categories []string
	Cells      [][]string
}

func (f Formatter) Wide(w *WideTable) WideDisplay {
	d := WideDisplay{Metric: w.Metric, Years: w.Years}
	kind := f.KindOf(w.Metric)
	for _, r := range w.Rows {
		d.Categories = append(d.Categories, r.Category)
		cells := make([]string, len(r.Values))
		for j, v := range r.Values {
			cells[j] = f.Format(kind, v)
		}
		d.Cells = append(d.Cells, cells)
	}
	return d
}

// DistributionDisplayRow holds the display strings of a DistributionRow.
type DistributionDisplayRow struct {
	Row            DistributionRow
	Share, Percent string
}

func (f Formatter) Distribution(rows []DistributionRow) []DistributionDisplayRow {
	d := make([]DistributionDisplayRow, 0, len(rows))
	for _, r := range rows {
		d = append(d, DistributionDisplayRow{
			Row:     r,
			Share:   f.Format(Percentage, V(r.SharePct)),
			Percent: f.Format(Percentage, r.Percent),
		})
	}
	return d
}

// ParseFormatted parses a string produced by Format or Signed back into a
// number. The NotAvailable marker is not a number and is an error.
func ParseFormatted(s string, kind FormatKind) (float64, error) {
	orig := s
	s = strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		s, neg = s[1:], true
	}
	switch kind {
	case Percentage:
		var ok bool
		if s, ok = strings.CutSuffix(s, "%"); !ok {
			return 0, fmt.Errorf("cannot parse %q as a percentage: missing %%", orig)
		}
	case Currency:
		s = strings.TrimLeftFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	}
	s = strings.ReplaceAll(s, ",", "")
	if kind != Percentage {
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			return 0, fmt.Errorf("cannot parse %q as %v: %w", orig, kind, err)
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as %v: %w", orig, kind, err)
	}
	if neg {
		d = d.Neg()
	}
	return d.InexactFloat64(), nil
}
