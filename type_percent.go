package marketshare

import "github.com/shopspring/decimal"

// Percent is a percentage, 12.5 stands for 12.5%.
type Percent float64

// Equal compares two percentages to the displayed precision.
func (p Percent) Equal(q Percent) bool {
	return p.round().Equal(q.round())
}

func (p Percent) round() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Round(2)
}

// String returns the percentage with two decimals, like "12.50%".
func (p Percent) String() string {
	return p.round().StringFixed(2) + "%"
}

// SignedString returns the percentage with an explicit sign, like "+5.00%" or
// "-8.33%". Zero has no sign.
func (p Percent) SignedString() string {
	if p.round().IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}
