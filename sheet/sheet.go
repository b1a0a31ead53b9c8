// Package sheet fetches and decodes the market-share feed, and exports report
// views as spreadsheets.
package sheet

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/etnz/marketshare"
)

// DefaultURL is the CSV export of the published market-share sheet.
const DefaultURL = "https://docs.google.com/spreadsheets/d/1n9uo1ykNZqV_iNzvhg9MgKvQdTxzyaVDN_a49_hiN6g/export?format=csv"

// Format is the encoding of a feed.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
	JSON Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{CSV, XLSX, JSON}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, XLSX, JSON:
		return f, nil
	case "xls", "excel":
		return XLSX, nil
	default:
		return "", fmt.Errorf("unknown feed format %q, want one of %v", s, Formats)
	}
}

// DetectFormat guesses the format of a location from its extension, or from
// its "format" query parameter for URLs like Google Sheets exports. It
// defaults to CSV.
func DetectFormat(location string) Format {
	p := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		if f, err := ParseFormat(u.Query().Get("format")); err == nil {
			return f
		}
		p = u.Path
	}
	if f, err := ParseFormat(strings.TrimPrefix(path.Ext(p), ".")); err == nil {
		return f
	}
	return CSV
}

// Source describes where and how to read the feed.
type Source struct {
	Location string // URL or local file path
	Format   Format // empty to detect it from Location
	JSONPath string // rows of a JSON feed, defaults to "$[*]"
	Sheet    string // worksheet of an xlsx feed, defaults to the first one
}

func (s Source) format() Format {
	if s.Format != "" {
		return s.Format
	}
	return DetectFormat(s.Location)
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Fetch reads and decodes the feed. Locations starting with http:// or
// https:// are downloaded with client, anything else is a local file.
func Fetch(ctx context.Context, client *http.Client, src Source) (marketshare.RawTable, error) {
	if !isURL(src.Location) {
		f, err := os.Open(src.Location)
		if err != nil {
			return marketshare.RawTable{}, fmt.Errorf("cannot open feed: %w", err)
		}
		defer f.Close()
		return Decode(f, src)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Location, nil)
	if err != nil {
		return marketshare.RawTable{}, fmt.Errorf("invalid feed url: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return marketshare.RawTable{}, fmt.Errorf("cannot fetch feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return marketshare.RawTable{}, fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	return Decode(resp.Body, src)
}

// Decode decodes a feed in the source format.
func Decode(r io.Reader, src Source) (marketshare.RawTable, error) {
	switch f := src.format(); f {
	case CSV:
		return ReadCSV(r)
	case XLSX:
		return ReadXLSX(r, src.Sheet)
	case JSON:
		return ReadJSON(r, src.JSONPath)
	default:
		return marketshare.RawTable{}, fmt.Errorf("unknown feed format %q", f)
	}
}

// Load fetches the feed and normalizes it into a Dataset. Any failure aborts
// the load: no partial dataset is ever returned.
func Load(ctx context.Context, client *http.Client, src Source) (*marketshare.Dataset, error) {
	raw, err := Fetch(ctx, client, src)
	if err != nil {
		return nil, err
	}
	d, err := marketshare.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", src.Location, err)
	}
	if d.Len() == 0 {
		log.Printf("warning: %s has no data", src.Location)
	}
	return d, nil
}
