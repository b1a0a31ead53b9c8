package sheet

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/marketshare"
)

// DefaultJSONPath selects the elements of a top level array.
const DefaultJSONPath = "$[*]"

// ReadJSON reads a JSON feed. The rows are the objects selected by the JSONPath
// expression path. Columns are the union of the object keys, each object
// contributing its new keys in lexical order.
func ReadJSON(r io.Reader, path string) (marketshare.RawTable, error) {
	if path == "" {
		path = DefaultJSONPath
	}
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return marketshare.RawTable{}, fmt.Errorf("cannot read json feed: %w", err)
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return marketshare.RawTable{}, fmt.Errorf("cannot select rows with %q: %w", path, err)
	}
	items, ok := selected.([]any)
	if !ok {
		items = []any{selected}
	}

	var t marketshare.RawTable
	objects := make([]map[string]any, 0, len(items))
	index := make(map[string]int)
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return t, fmt.Errorf("cannot read json feed: row %d is a %T, want an object", i+1, item)
		}
		for _, k := range slices.Sorted(maps.Keys(obj)) {
			if _, exists := index[k]; !exists {
				index[k] = len(t.Columns)
				t.Columns = append(t.Columns, k)
			}
		}
		objects = append(objects, obj)
	}

	for _, obj := range objects {
		row := make([]string, len(t.Columns))
		for k, v := range obj {
			row[index[k]] = cell(v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}
