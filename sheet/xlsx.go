package sheet

import (
	"fmt"
	"io"

	"github.com/etnz/marketshare"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a worksheet of an xlsx feed whose first row is the header.
// An empty name selects the first worksheet.
func ReadXLSX(r io.Reader, name string) (marketshare.RawTable, error) {
	var t marketshare.RawTable
	f, err := excelize.OpenReader(r)
	if err != nil {
		return t, fmt.Errorf("cannot open xlsx feed: %w", err)
	}
	defer f.Close()

	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return t, fmt.Errorf("cannot read xlsx feed: no worksheet")
		}
		name = sheets[0]
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return t, fmt.Errorf("cannot read worksheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		return t, fmt.Errorf("cannot read worksheet %q: no header", name)
	}

	t.Columns = rows[0]
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		// trailing empty cells are not returned by GetRows.
		for len(row) < len(t.Columns) {
			row = append(row, "")
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Sheet is a worksheet to export.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// WriteXLSX writes the sheets as the worksheets of an xlsx workbook, in order.
func WriteXLSX(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("cannot write an xlsx workbook without worksheets")
	}
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				return fmt.Errorf("cannot create worksheet %q: %w", s.Name, err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("cannot create worksheet %q: %w", s.Name, err)
		}

		header := s.Header
		if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
			return fmt.Errorf("cannot write worksheet %q: %w", s.Name, err)
		}
		for j, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(s.Name, cell, &row); err != nil {
				return fmt.Errorf("cannot write worksheet %q: %w", s.Name, err)
			}
		}
	}
	f.SetActiveSheet(0)
	return f.Write(w)
}
