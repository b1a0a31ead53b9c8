package marketshare

// obs is a compact Observation constructor for tests.
func obs(marketplace, category string, year int, share, revenue, units float64) Observation {
	return Observation{Marketplace: marketplace, Category: category, Year: year, SharePct: share, Revenue: revenue, Units: units}
}

// sample is a small dataset over two marketplaces, two years and three
// categories. "Toys" only exists in 2024.
func sample() *Dataset {
	return NewDataset(
		obs("Shopee", "Fashion", 2023, 40, 1000, 10),
		obs("Tokopedia", "Fashion", 2023, 40, 500, 5),
		obs("Shopee", "Fashion", 2024, 50, 1500, 15),
		obs("Tokopedia", "Fashion", 2024, 40, 700, 7),
		obs("Shopee", "Beauty", 2023, 60, 2000, 20),
		obs("Tokopedia", "Beauty", 2023, 60, 1000, 10),
		obs("Shopee", "Beauty", 2024, 55, 1800, 18),
		obs("Tokopedia", "Beauty", 2024, 55, 900, 9),
		obs("Shopee", "Toys", 2024, 10, 1000, 100),
	)
}
