// Package loader reads spreadsheet files into the in-memory Sheet used by
// the comparison. XLSX files go through excelize, CSV through the standard
// encoding/csv reader.
package loader

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/kaan0d/excel-file-comparison/internal/errs"
	"github.com/kaan0d/excel-file-comparison/internal/types"

	"github.com/xuri/excelize/v2"
)

// ReadSheet loads the first sheet of an .xlsx file or a whole .csv file.
// The first row becomes the header row and the final row is dropped; the
// export format these files come from always ends with a totals row.
func ReadSheet(path string) (*types.Sheet, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		rows [][]string
		err  error
	)

	switch ext {
	case ".csv":
		rows, err = readCSVRows(path)
	case ".xlsx", ".xlsm":
		rows, err = readXLSXRows(path)
	default:
		return nil, errs.NewLoadError(path, errs.ErrUnsupportedFile)
	}
	if err != nil {
		return nil, errs.NewLoadError(path, err)
	}

	if len(rows) == 0 {
		return nil, errs.NewLoadError(path, errs.ErrEmptySheet)
	}

	headers := rows[0]
	body := rows[1:]
	if len(body) > 0 {
		body = body[:len(body)-1]
	}

	return &types.Sheet{
		Path:    path,
		Headers: headers,
		Rows:    body,
	}, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // exports are ragged
	return reader.ReadAll()
}

func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	return f.GetRows(sheetName)
}
