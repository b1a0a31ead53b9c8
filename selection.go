package marketshare

import (
	"maps"
	"slices"
)

// Selection holds the marketplaces, years and categories to include.
//
// A Selection is immutable: the With* methods return a modified copy.
// Selecting everything is done with SelectAll over the dataset Domain, an
// empty set selects nothing.
type Selection struct {
	marketplaces map[string]struct{}
	years        map[int]struct{}
	categories   map[string]struct{}
}

func set[T comparable](values []T) map[T]struct{} {
	s := make(map[T]struct{}, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// NewSelection creates a Selection from explicit inclusion sets.
func NewSelection(marketplaces []string, years []int, categories []string) Selection {
	return Selection{
		marketplaces: set(marketplaces),
		years:        set(years),
		categories:   set(categories),
	}
}

// SelectAll selects the full domain.
func SelectAll(d Domain) Selection {
	return NewSelection(d.Marketplaces, d.Years, d.Categories)
}

func (s Selection) WithMarketplaces(m ...string) Selection { s.marketplaces = set(m); return s }
func (s Selection) WithYears(y ...int) Selection           { s.years = set(y); return s }
func (s Selection) WithCategories(c ...string) Selection   { s.categories = set(c); return s }

func (s Selection) Marketplaces() []string { return slices.Sorted(maps.Keys(s.marketplaces)) }
func (s Selection) Years() []int           { return slices.Sorted(maps.Keys(s.years)) }
func (s Selection) Categories() []string   { return slices.Sorted(maps.Keys(s.categories)) }

// Includes reports whether the observation is selected on all three dimensions.
func (s Selection) Includes(o Observation) bool {
	if _, ok := s.marketplaces[o.Marketplace]; !ok {
		return false
	}
	if _, ok := s.years[o.Year]; !ok {
		return false
	}
	_, ok := s.categories[o.Category]
	return ok
}

// Filter returns a new Dataset with the selected observations, in their
// original relative order.
func (d *Dataset) Filter(s Selection) *Dataset {
	rows := make([]Observation, 0, d.Len())
	for _, o := range d.All() {
		if s.Includes(o) {
			rows = append(rows, o)
		}
	}
	return &Dataset{rows: rows}
}
