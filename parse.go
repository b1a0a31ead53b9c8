package marketshare

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotFinite = errors.New("not a finite number")

// parseFinite is strconv.ParseFloat without NaN and infinities.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// ParsePercent parses a percentage like "12.5%" or "12.5" into 12.5.
func ParsePercent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	return parseFinite(s)
}

// ParseAmount parses a currency or volume amount with thousands separators,
// like "1,250,000" or "1,250.50".
func ParseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return parseFinite(s)
}

// ParseYear parses a year written as text.
func ParseYear(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
