package marketshare

import (
	"fmt"
	"iter"
	"slices"
)

// Observation is one raw market-share observation.
//
// Several observations may share the same (Marketplace, Category, Year): they
// are reduced by aggregation, never deduplicated.
type Observation struct {
	Marketplace string
	Category    string
	Year        int
	SharePct    float64 // nominally in [0,100]
	Revenue     float64
	Units       float64
}

// Dataset is an immutable, ordered sequence of observations.
//
// A nil *Dataset is a valid empty dataset.
type Dataset struct {
	rows []Observation
}

// NewDataset creates a Dataset holding a copy of the observations.
func NewDataset(obs ...Observation) *Dataset {
	return &Dataset{rows: slices.Clone(obs)}
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// At returns the i-th observation. It panics if i is not in [0, Len()), which
// is always the case for a nil Dataset.
func (d *Dataset) At(i int) Observation {
	if i < 0 || i >= d.Len() {
		panic(fmt.Sprintf("marketshare: observation index %d out of range [0:%d]", i, d.Len()))
	}
	return d.rows[i]
}

// All iterates over the observations in order.
func (d *Dataset) All() iter.Seq2[int, Observation] {
	return func(yield func(int, Observation) bool) {
		for i := 0; i < d.Len(); i++ {
			if !yield(i, d.rows[i]) {
				return
			}
		}
	}
}

// Observations returns a copy of the observations.
func (d *Dataset) Observations() []Observation {
	if d == nil {
		return nil
	}
	return slices.Clone(d.rows)
}

// Domain holds the distinct values of each dimension, sorted ascending.
type Domain struct {
	Marketplaces []string
	Years        []int
	Categories   []string
}

// Domain returns the distinct marketplaces, years and categories present in
// the dataset, for building selection controls.
func (d *Dataset) Domain() Domain {
	var dom Domain
	for _, o := range d.All() {
		dom.Marketplaces = append(dom.Marketplaces, o.Marketplace)
		dom.Years = append(dom.Years, o.Year)
		dom.Categories = append(dom.Categories, o.Category)
	}
	slices.Sort(dom.Marketplaces)
	slices.Sort(dom.Years)
	slices.Sort(dom.Categories)
	dom.Marketplaces = slices.Compact(dom.Marketplaces)
	dom.Years = slices.Compact(dom.Years)
	dom.Categories = slices.Compact(dom.Categories)
	return dom
}
