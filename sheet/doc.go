// Package sheet provides spreadsheet column data structures and loaders.
//
// A Column is an ordered, position-indexed sequence of float64 cell values
// with an optional name. Columns can be built directly from values or loaded
// from CSV files and Excel workbooks:
//
//	col := sheet.NewNamed("score", []float64{8.5, 9.1, 7.8})
//
//	col, err := sheet.LoadCSVColumn("results.csv", "score")
//
//	col, err := sheet.LoadXLSX("results.xlsx", "Sheet1", "score")
//
// Statistical methods on Column delegate to the stats package:
//
//	mean, err := col.Mean()
//	sd, err := col.StDev()
package sheet
