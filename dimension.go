package marketshare

import (
	"fmt"
	"slices"
	"strings"
)

// Dimension is one of the grouping dimensions of an Observation.
type Dimension int

const (
	Category Dimension = iota
	Year
	Marketplace
)

func (d Dimension) String() string {
	switch d {
	case Category:
		return "category"
	case Year:
		return "year"
	case Marketplace:
		return "marketplace"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "category", "kategori":
		return Category, nil
	case "year", "tahun":
		return Year, nil
	case "marketplace":
		return Marketplace, nil
	default:
		return Category, fmt.Errorf("unknown dimension %q", s)
	}
}

// GroupKey is the combination of dimensions observations are grouped by.
type GroupKey []Dimension

// ParseGroupKey parses a comma separated list of dimensions like "category,year".
func ParseGroupKey(s string) (GroupKey, error) {
	var key GroupKey
	for _, part := range strings.Split(s, ",") {
		d, err := ParseDimension(part)
		if err != nil {
			return nil, err
		}
		key = append(key, d)
	}
	return key, key.Validate()
}

// Has reports whether the key contains the dimension.
func (k GroupKey) Has(d Dimension) bool { return slices.Contains(k, d) }

// Equal reports whether both keys hold the same dimensions, in any order.
func (k GroupKey) Equal(o GroupKey) bool {
	if len(k) != len(o) {
		return false
	}
	for _, d := range k {
		if !o.Has(d) {
			return false
		}
	}
	return true
}

// Validate checks that the key is a non empty set of known dimensions.
func (k GroupKey) Validate() error {
	if len(k) == 0 {
		return fmt.Errorf("empty grouping key")
	}
	for i, d := range k {
		if d < Category || d > Marketplace {
			return fmt.Errorf("invalid grouping key %v: unknown %v", k, d)
		}
		if slices.Contains(k[:i], d) {
			return fmt.Errorf("invalid grouping key %v: duplicated %v", k, d)
		}
	}
	return nil
}

func (k GroupKey) String() string {
	parts := make([]string, len(k))
	for i, d := range k {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}
