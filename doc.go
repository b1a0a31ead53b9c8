// Package marketshare turns a flat table of periodic market-share observations
// (marketplace × product category × year, with a share percentage, a revenue
// and a unit volume) into comparative views.
//
// The core functionalities include:
//   - Normalization: converting a raw table whose column names and cell
//     formats vary ("Market Share ( % )", "Penjualan ( IDR )", "12.5%",
//     "1,250,000") into a canonical, immutable Dataset. Loads are fail-fast.
//   - Filtering: keeping the observations included in a Selection of
//     marketplaces, years and categories.
//   - Aggregation: grouping observations by a GroupKey and reducing them
//     (mean share, summed revenue and units) with exact decimal sums.
//   - Pivoting: reshaping grouped rows into a WideTable (one column per year)
//     and deriving Gap and Growth between two reference years.
//   - Ranking: stable ordering of any table by one of its numeric columns,
//     with optional top-N or bottom-N truncation.
//   - Formatting: rendering values as currency, percentages or counts in a
//     parallel display table, without touching the numeric values.
//
// Derived values that cannot be computed (a category missing in one year, a
// growth over a zero baseline) are absent Values, never zeros. Callers must
// handle the absent case explicitly.
//
// Every stage is a pure function: it reads its input and returns a new table.
// This package serves as the engine for the `msr` command-line tool.
package marketshare
