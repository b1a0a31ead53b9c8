package marketshare

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes. Use errors.Is to test an error against them.
var (
	ErrParse          = errors.New("parse error")
	ErrMissingColumn  = errors.New("missing column")
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// ParseError reports a raw value that could not be coerced during normalization.
type ParseError struct {
	Row    int    // 1-based data row, the header is not counted.
	Column string // raw column name as found in the header.
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %q: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error        { return e.Err }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// MissingColumnError reports every semantic field that could not be resolved
// from any of its recognized column names.
type MissingColumnError struct {
	Fields []Field
}

func (e *MissingColumnError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (one of %q)", f, f.Aliases()))
	}
	return "missing required columns: " + strings.Join(parts, ", ")
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingColumn }

// InvalidSortKeyError reports a sort key that is not a column of the sorted table.
type InvalidSortKeyError struct {
	Key     string
	Columns []string
}

func (e *InvalidSortKeyError) Error() string {
	return fmt.Sprintf("cannot sort by %q: available columns are %s", e.Key, strings.Join(e.Columns, ", "))
}

func (e *InvalidSortKeyError) Is(target error) bool { return target == ErrInvalidSortKey }
