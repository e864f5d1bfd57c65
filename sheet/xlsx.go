package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// LoadXLSX loads a named column from one sheet of an Excel workbook. The
// first row of the sheet is treated as the header row; non-numeric and blank
// cells below it are skipped.
func LoadXLSX(filename, sheetName, column string) (*Column, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return columnFromWorkbook(f, sheetName, column)
}

// LoadXLSXFromReader loads a named column from a workbook read from r.
func LoadXLSXFromReader(r io.Reader, sheetName, column string) (*Column, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return columnFromWorkbook(f, sheetName, column)
}

func columnFromWorkbook(f *excelize.File, sheetName, column string) (*Column, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrNoData, sheetName)
	}

	idx := -1
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), column) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %q in sheet %q", ErrColumnNotFound, column, sheetName)
	}

	var values []float64
	for _, row := range rows[1:] {
		if idx >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[idx])
		if cell == "" || cell == "NA" || cell == "NaN" {
			continue
		}
		val, err := cast.ToFloat64E(cell)
		if err != nil {
			continue
		}
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: column %q in sheet %q", ErrNoData, column, sheetName)
	}

	return &Column{Name: column, Values: values}, nil
}
