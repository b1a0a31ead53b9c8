package cmd

import (
	"testing"

	"github.com/etnz/marketshare"
	"github.com/google/go-cmp/cmp"
)

func TestSelectionFlags(t *testing.T) {
	v := sampleView()
	dom := v.d.Domain()

	s := selectionFlags{marketplaces: "Tokopedia, ", years: "2024", categories: ""}
	sel, err := s.Selection(dom)
	if err != nil {
		t.Fatalf("Selection() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"Tokopedia"}, sel.Marketplaces()); diff != "" {
		t.Errorf("marketplaces mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2024}, sel.Years()); diff != "" {
		t.Errorf("years mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(dom.Categories, sel.Categories()); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if got, want := s.String(), "marketplaces Tokopedia; years 2024"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	d, err := s.Filter(v.d)
	if err != nil {
		t.Fatalf("Filter() unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Filter() kept %d observations, want 2", d.Len())
	}

	if _, err := (&selectionFlags{years: "2024,soon"}).Selection(dom); err == nil {
		t.Error("Selection() with an invalid year expected an error")
	}
	if got := (&selectionFlags{}).String(); got != "" {
		t.Errorf("String() of an empty selection = %q, want empty", got)
	}
}

func TestRank(t *testing.T) {
	rows := marketshare.Distribution(sampleView().d)

	got, err := rank(sortFlag{}, rows)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Errorf("rank() without order changed the rows (-want +got):\n%s", diff)
	}

	got, err = rank(sortFlag{order: "share_pct:asc:top:1"}, rows)
	if err != nil {
		t.Fatalf("rank() unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Marketplace != "Tokopedia" {
		t.Errorf("rank() = %v, want only Tokopedia", got)
	}
}
