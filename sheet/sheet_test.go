package sheet

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/etnz/marketshare"
	"github.com/google/go-cmp/cmp"
)

const feed = "\ufeffMarketplace,Kategori Produk,Tahun,Market Share ( % ),Penjualan ( IDR ),Volume Unit\n" +
	"Shopee,Fashion,2023,12.5%,\"1,250,000\",\"1,200\"\n" +
	"Tokopedia,Beauty,2024,7,980000,35\n" +
	",,,,,\n"

func TestReadCSV(t *testing.T) {
	got, err := ReadCSV(strings.NewReader(feed))
	if err != nil {
		t.Fatalf("ReadCSV() unexpected error: %v", err)
	}
	want := marketshare.RawTable{
		Columns: []string{"Marketplace", "Kategori Produk", "Tahun", "Market Share ( % )", "Penjualan ( IDR )", "Volume Unit"},
		Rows: [][]string{
			{"Shopee", "Fashion", "2023", "12.5%", "1,250,000", "1,200"},
			{"Tokopedia", "Beauty", "2024", "7", "980000", "35"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadCSV() mismatch (-want +got):\n%s", diff)
	}

	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Errorf("ReadCSV() expected an error on an empty feed")
	}
}

func TestReadJSON(t *testing.T) {
	doc := `{"data": [
		{"Marketplace": "Shopee", "Category": "Fashion", "Year": 2023, "Market Share (%)": 12.5, "Revenue": 1250000, "Volume Unit": 1200},
		{"Marketplace": "Lazada", "Category": "Toys", "Year": 2024, "Market Share (%)": "3%", "Revenue": 10, "Volume Unit": null, "Note": "new"}
	]}`
	got, err := ReadJSON(strings.NewReader(doc), "$.data[*]")
	if err != nil {
		t.Fatalf("ReadJSON() unexpected error: %v", err)
	}
	want := marketshare.RawTable{
		Columns: []string{"Category", "Market Share (%)", "Marketplace", "Revenue", "Volume Unit", "Year", "Note"},
		Rows: [][]string{
			{"Fashion", "12.5", "Shopee", "1250000", "1200", "2023", ""},
			{"Toys", "3%", "Lazada", "10", "", "2024", "new"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadJSON() mismatch (-want +got):\n%s", diff)
	}

	if _, err := ReadJSON(strings.NewReader(`[1, 2]`), ""); err == nil {
		t.Errorf("ReadJSON() expected an error on non object rows")
	}
}

func TestXLSX_RoundTrip(t *testing.T) {
	header := []string{"Marketplace", "Kategori Produk", "Tahun", "Market Share ( % )", "Penjualan ( IDR )", "Volume Unit"}
	var buf bytes.Buffer
	err := WriteXLSX(&buf,
		Sheet{Name: "notes", Header: []string{"note"}, Rows: [][]any{{"first sheet"}}},
		Sheet{Name: "data", Header: header, Rows: [][]any{
			{"Shopee", "Fashion", "2023", "12.5", "1250000", "1200"},
			{"Lazada", "Toys", "2024", "3", "10", ""},
		}},
	)
	if err != nil {
		t.Fatalf("WriteXLSX() unexpected error: %v", err)
	}

	got, err := ReadXLSX(bytes.NewReader(buf.Bytes()), "data")
	if err != nil {
		t.Fatalf("ReadXLSX() unexpected error: %v", err)
	}
	want := marketshare.RawTable{
		Columns: header,
		Rows: [][]string{
			{"Shopee", "Fashion", "2023", "12.5", "1250000", "1200"},
			{"Lazada", "Toys", "2024", "3", "10", ""},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadXLSX() mismatch (-want +got):\n%s", diff)
	}

	first, err := ReadXLSX(bytes.NewReader(buf.Bytes()), "")
	if err != nil {
		t.Fatalf("ReadXLSX() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"note"}, first.Columns); diff != "" {
		t.Errorf("ReadXLSX() default worksheet mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{DefaultURL, CSV},
		{"https://example.com/export?format=xlsx", XLSX},
		{"https://example.com/data.json", JSON},
		{"report.XLSX", XLSX},
		{"data/feed.json", JSON},
		{"feed", CSV},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.in); got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/export" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(feed))
	}))
	defer srv.Close()

	client := dailyClient(t.TempDir())
	src := Source{Location: srv.URL + "/export?format=csv"}
	for range 2 {
		d, err := Load(context.Background(), client, src)
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if d.Len() != 2 {
			t.Errorf("Load() returned %d observations, want 2", d.Len())
		}
	}
	if hits.Load() != 1 {
		t.Errorf("server was hit %d times, want 1 (second load from cache)", hits.Load())
	}

	_, err := Load(context.Background(), client, Source{Location: srv.URL + "/missing.csv"})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("Load() error = %v, want a 404 error", err)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "feed.csv")
	if err := os.WriteFile(good, []byte(feed), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(context.Background(), nil, Source{Location: good})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Load() returned %d observations, want 2", d.Len())
	}

	bad := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(bad, []byte("Marketplace,Tahun\nShopee,2024\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(context.Background(), nil, Source{Location: bad}); !errors.Is(err, marketshare.ErrMissingColumn) {
		t.Errorf("Load() error = %v, want ErrMissingColumn", err)
	}
}
