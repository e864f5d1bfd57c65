package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
)

// Errors reported by the column loaders.
var (
	// ErrNoData reports a source that yields no numeric cells.
	ErrNoData = errors.New("no valid data found")

	// ErrColumnNotFound reports a header row without the requested column.
	ErrColumnNotFound = errors.New("column not found")
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y")
	IDColumn    string // Column name for row ID (optional, for filtering)
	IDFilter    string // Value to filter by ID column
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a column from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Column, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a column from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Column, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, idIdx := -1, -1
	name := opts.ValueColumn

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")):
				valueIdx = i
			case opts.IDColumn != "" && h == opts.IDColumn:
				idIdx = i
			}
		}

		// Default to last column if the value column is not found.
		if valueIdx == -1 {
			valueIdx = len(header) - 1
			name = strings.TrimSpace(strings.Trim(header[valueIdx], "\""))
		}
	} else {
		// No header - assume a single value column.
		valueIdx = 0
	}

	var values []float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			id := strings.TrimSpace(strings.Trim(record[idIdx], "\""))
			if id != opts.IDFilter {
				continue
			}
		}

		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}
		cell := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if cell == "" || cell == "NA" || cell == "NaN" || cell == "null" {
			continue
		}
		val, err := cast.ToFloat64E(cell)
		if err != nil {
			continue // Skip non-numeric cells
		}
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w in CSV", ErrNoData)
	}

	return &Column{Name: name, Values: values}, nil
}

// LoadCSVColumn loads a specific column from a CSV file.
func LoadCSVColumn(filename, column string) (*Column, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVFiltered loads a column from the rows whose idColumn equals idValue.
func LoadCSVFiltered(filename, idColumn, idValue, valueColumn string) (*Column, error) {
	opts := DefaultCSVOptions()
	opts.IDColumn = idColumn
	opts.IDFilter = idValue
	if valueColumn != "" {
		opts.ValueColumn = valueColumn
	}
	return LoadCSV(filename, opts)
}
