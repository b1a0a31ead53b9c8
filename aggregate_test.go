package marketshare

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAggregate(t *testing.T) {
	byCategoryYear := GroupKey{Category, Year}
	tests := []struct {
		name string
		key  GroupKey
		want []GroupedRow
	}{
		{
			name: "category and year",
			key:  byCategoryYear,
			want: []GroupedRow{
				{Key: byCategoryYear, Category: "Beauty", Year: 2023, Count: 2, SharePctMean: 60, RevenueSum: 3000, UnitsSum: 30},
				{Key: byCategoryYear, Category: "Beauty", Year: 2024, Count: 2, SharePctMean: 55, RevenueSum: 2700, UnitsSum: 27},
				{Key: byCategoryYear, Category: "Fashion", Year: 2023, Count: 2, SharePctMean: 40, RevenueSum: 1500, UnitsSum: 15},
				{Key: byCategoryYear, Category: "Fashion", Year: 2024, Count: 2, SharePctMean: 45, RevenueSum: 2200, UnitsSum: 22},
				{Key: byCategoryYear, Category: "Toys", Year: 2024, Count: 1, SharePctMean: 10, RevenueSum: 1000, UnitsSum: 100},
			},
		},
		{
			name: "marketplace",
			key:  GroupKey{Marketplace},
			want: []GroupedRow{
				{Key: GroupKey{Marketplace}, Marketplace: "Shopee", Count: 5, SharePctMean: 43, RevenueSum: 7300, UnitsSum: 163},
				{Key: GroupKey{Marketplace}, Marketplace: "Tokopedia", Count: 4, SharePctMean: 48.75, RevenueSum: 3100, UnitsSum: 31},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Aggregate(sample(), tt.key)
			if err != nil {
				t.Fatalf("Aggregate() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregate_InvalidKey(t *testing.T) {
	for _, key := range []GroupKey{nil, {Year, Year}, {Dimension(7)}} {
		if _, err := Aggregate(sample(), key); err == nil {
			t.Errorf("Aggregate(%v) expected an error", key)
		}
	}
}

func TestAggregate_NeverFabricates(t *testing.T) {
	d := sample()
	rows, err := Aggregate(d, GroupKey{Category, Year, Marketplace})
	if err != nil {
		t.Fatalf("Aggregate() unexpected error: %v", err)
	}
	if len(rows) > d.Len() {
		t.Errorf("Aggregate() returned %d rows from %d observations", len(rows), d.Len())
	}
	for _, r := range rows {
		found := false
		for _, o := range d.All() {
			if o.Category == r.Category && o.Year == r.Year && o.Marketplace == r.Marketplace {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Aggregate() fabricated %s", r.Label())
		}
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	var obs []Observation
	for i := range 50 {
		obs = append(obs, Observation{Marketplace: "M", Category: "C", Year: 2024, SharePct: 0.1 * float64(i), Revenue: 0.1, Units: 0.3})
	}
	want, err := Aggregate(NewDataset(obs...), GroupKey{Category})
	if err != nil {
		t.Fatalf("Aggregate() unexpected error: %v", err)
	}
	r := rand.New(rand.NewSource(1))
	for range 10 {
		r.Shuffle(len(obs), func(i, j int) { obs[i], obs[j] = obs[j], obs[i] })
		got, err := Aggregate(NewDataset(obs...), GroupKey{Category})
		if err != nil {
			t.Fatalf("Aggregate() unexpected error: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Aggregate() depends on the observation order (-want +got):\n%s", diff)
		}
	}
}

func TestGroupedRow_Value(t *testing.T) {
	r := GroupedRow{Key: GroupKey{Category}, Category: "Toys", Year: 0, Count: 3, RevenueSum: 12}
	if r.Value("year").Present() {
		t.Errorf("Value(year) should be absent when year is not grouped")
	}
	if got := r.Value("revenue"); !got.Equal(V(12)) {
		t.Errorf("Value(revenue) = %v, want 12", got)
	}
	if got := r.Label(); got != "Toys" {
		t.Errorf("Label() = %q, want %q", got, "Toys")
	}
}
