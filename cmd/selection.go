package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/marketshare"
)

// selectionFlags are the flags restricting the observations of a view.
type selectionFlags struct {
	marketplaces string
	years        string
	categories   string
}

func (s *selectionFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.marketplaces, "m", "", "comma separated marketplaces to include, all by default")
	f.StringVar(&s.years, "y", "", "comma separated years to include, all by default")
	f.StringVar(&s.categories, "c", "", "comma separated categories to include, all by default")
}

func splitList(s string) []string {
	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Selection selects the whole domain but for the dimensions restricted by a flag.
func (s *selectionFlags) Selection(dom marketshare.Domain) (marketshare.Selection, error) {
	sel := marketshare.SelectAll(dom)
	if m := splitList(s.marketplaces); len(m) > 0 {
		sel = sel.WithMarketplaces(m...)
	}
	if list := splitList(s.years); len(list) > 0 {
		years := make([]int, 0, len(list))
		for _, v := range list {
			y, err := strconv.Atoi(v)
			if err != nil {
				return sel, fmt.Errorf("invalid year %q: %w", v, err)
			}
			years = append(years, y)
		}
		sel = sel.WithYears(years...)
	}
	if c := splitList(s.categories); len(c) > 0 {
		sel = sel.WithCategories(c...)
	}
	return sel, nil
}

// Filter applies the selection to the dataset.
func (s *selectionFlags) Filter(d *marketshare.Dataset) (*marketshare.Dataset, error) {
	sel, err := s.Selection(d.Domain())
	if err != nil {
		return nil, err
	}
	return d.Filter(sel), nil
}

// String describes the restricted dimensions, empty if everything is selected.
func (s *selectionFlags) String() string {
	var parts []string
	if m := splitList(s.marketplaces); len(m) > 0 {
		parts = append(parts, "marketplaces "+strings.Join(m, ", "))
	}
	if y := splitList(s.years); len(y) > 0 {
		parts = append(parts, "years "+strings.Join(y, ", "))
	}
	if c := splitList(s.categories); len(c) > 0 {
		parts = append(parts, "categories "+strings.Join(c, ", "))
	}
	return strings.Join(parts, "; ")
}

// sortFlag holds an optional ranking order.
type sortFlag struct {
	order string
}

func (s *sortFlag) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.order, "sort", "", "rank rows with key[:asc|desc[:top|bottom:N]], see 'topic sorting'")
}

// rank ranks the rows if an order is set.
func rank[R marketshare.Row](s sortFlag, rows []R) ([]R, error) {
	if s.order == "" {
		return rows, nil
	}
	o, err := marketshare.ParseOrder(s.order)
	if err != nil {
		return nil, err
	}
	return marketshare.Rank(rows, o)
}
