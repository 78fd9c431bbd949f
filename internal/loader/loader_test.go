package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kaan0d/excel-file-comparison/internal/errs"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeXLSX(t *testing.T, rows [][]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.xlsx")

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))

	return path
}

func TestReadSheetCSV(t *testing.T) {
	path := writeCSV(t, "Code,Name\nA1,Widget\nB2,Gadget\nTOTAL,\n")

	s, err := ReadSheet(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Code", "Name"}, s.Headers)
	// The trailing totals row is excluded.
	require.Len(t, s.Rows, 2)
	assert.Equal(t, []string{"A1", "Widget"}, s.Rows[0])
	assert.Equal(t, []string{"B2", "Gadget"}, s.Rows[1])
	assert.Equal(t, path, s.Path)
}

func TestReadSheetCSVRaggedRows(t *testing.T) {
	path := writeCSV(t, "Code,Name,Qty\nA1,Widget\nB2,Gadget,3,extra\nTOTAL\n")

	s, err := ReadSheet(path)
	require.NoError(t, err)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, "", s.Cell(0, 2))
	assert.Equal(t, "3", s.Cell(1, 2))
}

func TestReadSheetXLSX(t *testing.T) {
	path := writeXLSX(t, [][]any{
		{"Code", "Name", "Qty"},
		{"A1", "Widget", 5},
		{"B2", "Gadget", 3},
		{"TOTAL", "", 8},
	})

	s, err := ReadSheet(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Code", "Name", "Qty"}, s.Headers)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, "A1", s.Cell(0, 0))
	assert.Equal(t, "5", s.Cell(0, 2))
}

func TestReadSheetHeaderOnly(t *testing.T) {
	path := writeCSV(t, "Code,Name\n")

	s, err := ReadSheet(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Code", "Name"}, s.Headers)
	assert.Empty(t, s.Rows)
}

func TestReadSheetEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := ReadSheet(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrEmptySheet))

	var loadErr *errs.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, path, loadErr.Path)
}

func TestReadSheetUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	_, err := ReadSheet(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUnsupportedFile))
}

func TestReadSheetMissingFile(t *testing.T) {
	_, err := ReadSheet(filepath.Join(t.TempDir(), "nope.csv"))

	require.Error(t, err)
	var loadErr *errs.LoadError
	assert.True(t, errors.As(err, &loadErr))
}
