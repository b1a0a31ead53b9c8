package marketshare

import (
	"fmt"
	"log"
	"strings"
)

// RawTable is a table of text cells with named columns, as fetched from a feed.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// Field is a semantic field of an Observation.
type Field int

const (
	FieldMarketplace Field = iota
	FieldCategory
	FieldYear
	FieldShare
	FieldRevenue
	FieldUnits
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldMarketplace:
		return "marketplace"
	case FieldCategory:
		return "category"
	case FieldYear:
		return "year"
	case FieldShare:
		return "share_pct"
	case FieldRevenue:
		return "revenue"
	case FieldUnits:
		return "units"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// recognized column names, by priority.
var recognized = [fieldCount][]string{
	FieldMarketplace: {"Marketplace"},
	FieldCategory:    {"Kategori Produk", "Category"},
	FieldYear:        {"Tahun", "Year"},
	FieldShare:       {"Market Share ( % )", "Market Share (%)"},
	FieldRevenue:     {"Penjualan ( IDR )", "Penjualan (IDR)", "Revenue"},
	FieldUnits:       {"Volume Unit", "Qty Sales"},
}

// Aliases returns the column names recognized for the field, by priority.
func (f Field) Aliases() []string {
	if f < 0 || f >= fieldCount {
		return nil
	}
	return append([]string(nil), recognized[f]...)
}

// Columns maps each semantic field to its column index in a RawTable.
type Columns [fieldCount]int

// Index returns the column index of the field.
func (c Columns) Index(f Field) int { return c[f] }

// ResolveColumns finds the column of every semantic field in header.
// Header names are compared after trimming spaces and a UTF-8 BOM.
func ResolveColumns(header []string) (Columns, error) {
	clean := make(map[string]int, len(header))
	for i, h := range header {
		h = cleanHeader(h)
		if _, exists := clean[h]; !exists {
			clean[h] = i
		}
	}

	var cols Columns
	var missing []Field
	for f := Field(0); f < fieldCount; f++ {
		cols[f] = -1
		for _, name := range recognized[f] {
			if i, ok := clean[name]; ok {
				cols[f] = i
				break
			}
		}
		if cols[f] < 0 {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return cols, &MissingColumnError{Fields: missing}
	}
	return cols, nil
}

func cleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

// Normalize converts a raw table into a canonical Dataset.
//
// The load is all or nothing: a missing semantic field returns a
// *MissingColumnError before any row is read, and the first cell that cannot
// be parsed returns a *ParseError identifying its row and column.
func Normalize(t RawTable) (*Dataset, error) {
	cols, err := ResolveColumns(t.Columns)
	if err != nil {
		return nil, err
	}

	rows := make([]Observation, 0, len(t.Rows))
	outOfRange := 0
	for i, raw := range t.Rows {
		o, err := normalizeRow(i+1, t.Columns, cols, raw)
		if err != nil {
			return nil, err
		}
		if o.SharePct < 0 || o.SharePct > 100 || o.Revenue < 0 || o.Units < 0 {
			outOfRange++
		}
		rows = append(rows, o)
	}
	if outOfRange > 0 {
		log.Printf("warning: %d observations have values outside their nominal range", outOfRange)
	}
	return &Dataset{rows: rows}, nil
}

func normalizeRow(row int, header []string, cols Columns, raw []string) (o Observation, err error) {
	if len(raw) != len(header) {
		return o, &ParseError{Row: row, Err: fmt.Errorf("got %d cells, want %d", len(raw), len(header))}
	}
	cell := func(f Field) (name, value string) {
		i := cols[f]
		return cleanHeader(header[i]), raw[i]
	}
	fail := func(f Field, err error) error {
		name, value := cell(f)
		return &ParseError{Row: row, Column: name, Value: value, Err: err}
	}

	_, o.Marketplace = cell(FieldMarketplace)
	o.Marketplace = strings.TrimSpace(o.Marketplace)
	_, o.Category = cell(FieldCategory)
	o.Category = strings.TrimSpace(o.Category)

	_, v := cell(FieldYear)
	if o.Year, err = ParseYear(v); err != nil {
		return o, fail(FieldYear, err)
	}
	_, v = cell(FieldShare)
	if o.SharePct, err = ParsePercent(v); err != nil {
		return o, fail(FieldShare, err)
	}
	_, v = cell(FieldRevenue)
	if o.Revenue, err = ParseAmount(v); err != nil {
		return o, fail(FieldRevenue, err)
	}
	_, v = cell(FieldUnits)
	if o.Units, err = ParseAmount(v); err != nil {
		return o, fail(FieldUnits, err)
	}
	return o, nil
}
