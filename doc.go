// Package sheetstats provides spreadsheet-compatible descriptive statistics
// and simple linear regression.
//
// SheetStats reproduces the behavior of the common spreadsheet statistics
// formulas (AVERAGE, AVEDEV, DEVSQ, VAR, VARP, STDEV, STDEVP, COVAR, CORREL,
// PEARSON, RSQ, SLOPE, INTERCEPT, FORECAST) over in-memory sequences of
// float64 values, including their exact error conditions and their IEEE
// infinity/NaN behavior in the unguarded degenerate cases.
//
// # Features
//
//   - Descriptive statistics: mean, average deviation, deviation sum of
//     squares, sample and population variance and standard deviation
//   - Paired-sequence statistics: deviation products, covariance, Pearson
//     correlation, coefficient of determination
//   - Simple linear regression: slope, intercept, forecast
//   - Column loading from CSV files and Excel workbooks
//   - Scatter charts with fitted regression lines
//
// # Quick Start
//
// Fit and evaluate a regression line:
//
//	b, _ := stats.Slope(knownY, knownX)
//	a, _ := stats.Intercept(knownY, knownX)
//	y, _ := stats.Forecast(4, knownY, knownX)
//
// Load a column from a workbook and describe it:
//
//	col, _ := sheet.LoadXLSX("sales.xlsx", "Sheet1", "revenue")
//	mean, _ := col.Mean()
//	sd, _ := col.StDev()
//
// # Packages
//
// The library is organized into the following packages:
//
//   - stats: the statistics function surface
//   - sheet: column data structures and CSV/XLSX loading
//   - plot: scatter and regression charts
package sheetstats
