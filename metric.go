package marketshare

import (
	"fmt"
	"strings"
)

// Metric selects one of the measures of a GroupedRow.
type Metric int

const (
	Share Metric = iota
	Revenue
	Units
)

func (m Metric) String() string {
	switch m {
	case Share:
		return "share"
	case Revenue:
		return "revenue"
	case Units:
		return "units"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Column returns the column name of the metric in a GroupedRow.
func (m Metric) Column() string {
	switch m {
	case Share:
		return "share_pct"
	default:
		return m.String()
	}
}

// Label returns a human readable name, used as a table header.
func (m Metric) Label() string {
	switch m {
	case Share:
		return "Market Share (%)"
	case Revenue:
		return "Revenue"
	case Units:
		return "Volume (units)"
	default:
		return m.String()
	}
}

// Kind returns the format kind used to display the metric.
func (m Metric) Kind() FormatKind {
	switch m {
	case Revenue:
		return Currency
	case Units:
		return Count
	default:
		return Percentage
	}
}

// Of returns the reduced value of the metric in a grouped row.
func (m Metric) Of(r GroupedRow) float64 {
	switch m {
	case Revenue:
		return r.RevenueSum
	case Units:
		return r.UnitsSum
	default:
		return r.SharePctMean
	}
}

func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "share", "share_pct", "market_share":
		return Share, nil
	case "revenue", "penjualan", "sales":
		return Revenue, nil
	case "units", "volume", "qty":
		return Units, nil
	default:
		return Share, fmt.Errorf("unknown metric %q", s)
	}
}

func (m Metric) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Metric) UnmarshalText(text []byte) (err error) {
	*m, err = ParseMetric(string(text))
	return err
}
