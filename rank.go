package marketshare

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Row is a table row with numeric columns.
//
// Columns must not depend on the receiver: Rank calls it on the zero value to
// validate the sort key of empty tables too.
type Row interface {
	Columns() []string
	Value(column string) Value
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

type Truncation int

const (
	None Truncation = iota
	Top
	Bottom
)

func (t Truncation) String() string {
	switch t {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "none"
	}
}

// Order describes how to rank a table.
type Order struct {
	Key       string
	Direction Direction
	Truncate  Truncation
	N         int // rows kept by Top or Bottom
}

func (o Order) String() string {
	s := o.Key + ":" + o.Direction.String()
	if o.Truncate != None {
		s += ":" + o.Truncate.String() + ":" + strconv.Itoa(o.N)
	}
	return s
}

// ParseOrder parses "key[:asc|desc[:top|bottom:N]]", like "growth_pct:desc:top:5".
// The direction defaults to descending.
func ParseOrder(s string) (Order, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	o := Order{Key: parts[0], Direction: Descending}
	if o.Key == "" {
		return o, fmt.Errorf("invalid order %q: empty key", s)
	}
	if len(parts) > 1 {
		switch strings.ToLower(parts[1]) {
		case "asc", "ascending":
			o.Direction = Ascending
		case "desc", "descending":
			o.Direction = Descending
		default:
			return o, fmt.Errorf("invalid order %q: unknown direction %q", s, parts[1])
		}
	}
	switch len(parts) {
	case 1, 2:
		return o, nil
	case 4:
	default:
		return o, fmt.Errorf("invalid order %q: want key[:asc|desc[:top|bottom:N]]", s)
	}
	switch strings.ToLower(parts[2]) {
	case "top":
		o.Truncate = Top
	case "bottom":
		o.Truncate = Bottom
	default:
		return o, fmt.Errorf("invalid order %q: unknown truncation %q", s, parts[2])
	}
	n, err := strconv.Atoi(parts[3])
	if err != nil || n < 0 {
		return o, fmt.Errorf("invalid order %q: invalid count %q", s, parts[3])
	}
	o.N = n
	return o, nil
}

// Rank returns a new slice of the rows sorted by the numeric value of the
// order key, then truncated.
//
// The sort is stable: rows with equal keys keep their relative order. Rows
// whose key is absent come last in both directions. Top keeps the first N rows
// and Bottom the last N rows of the sorted sequence; N larger than the table
// keeps every row.
//
// A key that is not a column of R is an *InvalidSortKeyError.
func Rank[R Row](rows []R, o Order) ([]R, error) {
	var zero R
	if columns := zero.Columns(); !slices.Contains(columns, o.Key) {
		return nil, &InvalidSortKeyError{Key: o.Key, Columns: columns}
	}
	if o.Truncate != None && o.N < 0 {
		return nil, fmt.Errorf("invalid order %v: negative count", o)
	}

	sorted := make([]R, 0, len(rows))
	var absent []R
	for _, r := range rows {
		if r.Value(o.Key).Present() {
			sorted = append(sorted, r)
		} else {
			absent = append(absent, r)
		}
	}
	slices.SortStableFunc(sorted, func(a, b R) int {
		c := cmp.Compare(a.Value(o.Key).Or(0), b.Value(o.Key).Or(0))
		if o.Direction == Descending {
			return -c
		}
		return c
	})
	sorted = append(sorted, absent...)

	n := min(o.N, len(sorted))
	switch o.Truncate {
	case Top:
		sorted = sorted[:n]
	case Bottom:
		sorted = sorted[len(sorted)-n:]
	}
	return sorted, nil
}
