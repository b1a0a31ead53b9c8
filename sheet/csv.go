package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/marketshare"
)

// ReadCSV reads a CSV feed whose first record is the header.
// Blank records, like the trailing rows of a sheet export, are skipped.
func ReadCSV(r io.Reader) (marketshare.RawTable, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	var t marketshare.RawTable
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return t, fmt.Errorf("cannot read csv feed: %w", err)
		}
		if t.Columns == nil {
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
			t.Columns = record
			continue
		}
		if blank(record) {
			continue
		}
		t.Rows = append(t.Rows, record)
	}
	if t.Columns == nil {
		return t, errors.New("cannot read csv feed: no header")
	}
	return t, nil
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
