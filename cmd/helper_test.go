package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/marketshare"
)

const feedCSV = `Marketplace,Category,Year,Market Share (%),Revenue,Qty Sales
Shopee,Fashion,2023,30,"1,000",10
Shopee,Fashion,2024,40,"1,500",12
Tokopedia,Fashion,2024,20,800,5
Tokopedia,Beauty,2024,10,300,4
`

func sampleView() view {
	return view{
		d: marketshare.NewDataset(
			marketshare.Observation{Marketplace: "Shopee", Category: "Fashion", Year: 2023, SharePct: 30, Revenue: 1000, Units: 10},
			marketshare.Observation{Marketplace: "Shopee", Category: "Fashion", Year: 2024, SharePct: 40, Revenue: 1500, Units: 12},
			marketshare.Observation{Marketplace: "Tokopedia", Category: "Fashion", Year: 2024, SharePct: 20, Revenue: 800, Units: 5},
			marketshare.Observation{Marketplace: "Tokopedia", Category: "Beauty", Year: 2024, SharePct: 10, Revenue: 300, Units: 4},
		),
		f: marketshare.NewFormatter("IDR"),
	}
}

// useFeed writes the sample feed to a temporary file and points the global
// configuration to it for the duration of the test.
func useFeed(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.csv")
	if err := os.WriteFile(path, []byte(feedCSV), 0644); err != nil {
		t.Fatal(err)
	}
	old := global
	global = Config{Source: path, JSONPath: "$[*]", Currency: "IDR", NoCache: true, Raw: true}
	t.Cleanup(func() { global = old })
}
