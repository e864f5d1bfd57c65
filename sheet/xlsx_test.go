package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"label", "score"},
		{"a", 8.5},
		{"b", 9.1},
		{"c", ""},
		{"d", "n/a"},
		{"e", 7.8},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	return f
}

func TestLoadXLSXFromReader(t *testing.T) {
	t.Parallel()

	f := buildWorkbook(t)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	col, err := LoadXLSXFromReader(buf, "Sheet1", "score")
	require.NoError(t, err)

	assert.Equal(t, "score", col.Name)
	assert.Equal(t, []float64{8.5, 9.1, 7.8}, col.Values)
}

func TestLoadXLSXFromReader_ColumnNotFound(t *testing.T) {
	t.Parallel()

	f := buildWorkbook(t)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = LoadXLSXFromReader(buf, "Sheet1", "missing")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestLoadXLSXFromReader_NoNumericCells(t *testing.T) {
	t.Parallel()

	f := buildWorkbook(t)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = LoadXLSXFromReader(buf, "Sheet1", "label")
	require.ErrorIs(t, err, ErrNoData)
}

func TestLoadXLSX_File(t *testing.T) {
	t.Parallel()

	f := buildWorkbook(t)
	path := t.TempDir() + "/scores.xlsx"
	require.NoError(t, f.SaveAs(path))

	col, err := LoadXLSX(path, "Sheet1", "score")
	require.NoError(t, err)
	assert.Equal(t, 3, col.Len())

	mean, err := col.Mean()
	require.NoError(t, err)
	assert.InDelta(t, (8.5+9.1+7.8)/3, mean, 1e-9)
}
