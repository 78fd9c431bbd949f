// Package compare aligns two sheets by their key column and reports the
// rows present on only one side plus, in detailed mode, value differences
// in the configured columns for rows present on both.
package compare

import (
	"sort"
	"strings"

	"github.com/kaan0d/excel-file-comparison/internal/settings"
	"github.com/kaan0d/excel-file-comparison/internal/types"
)

// column pairs a display name with the index it reads from.
type column struct {
	name  string
	index int
}

// Compare runs the row match between a and b using the key column from
// cfg. With detailed set, the incoming, outgoing and remaining columns are
// value-compared for common keys; configured custom comparisons are always
// applied. Results are ordered by key so repeated runs print identically.
func Compare(a, b *types.Sheet, cfg settings.Settings, detailed bool) *types.Result {
	result := &types.Result{
		FileA:     a.Path,
		FileB:     b.Path,
		RowCountA: len(a.Rows),
		RowCountB: len(b.Rows),
	}

	keysA := keyIndex(a, cfg.CodeColumn)
	keysB := keyIndex(b, cfg.CodeColumn)

	for key, row := range keysA {
		if _, ok := keysB[key]; !ok {
			result.Missing = append(result.Missing, types.Entry{
				Key:         key,
				Description: a.Cell(row, cfg.NameColumn),
			})
		}
	}
	for key, row := range keysB {
		if _, ok := keysA[key]; !ok {
			result.Extra = append(result.Extra, types.Entry{
				Key:         key,
				Description: b.Cell(row, cfg.NameColumn),
			})
		}
	}

	sort.Slice(result.Missing, func(i, j int) bool { return result.Missing[i].Key < result.Missing[j].Key })
	sort.Slice(result.Extra, func(i, j int) bool { return result.Extra[i].Key < result.Extra[j].Key })

	columns := compareColumns(a, cfg, detailed)
	if len(columns) == 0 {
		return result
	}

	common := make([]string, 0, len(keysA))
	for key := range keysA {
		if _, ok := keysB[key]; ok {
			common = append(common, key)
		}
	}
	sort.Strings(common)

	for _, key := range common {
		rowA, rowB := keysA[key], keysB[key]

		var fields []types.FieldDiff
		for _, col := range columns {
			va := a.Cell(rowA, col.index)
			vb := b.Cell(rowB, col.index)
			if va != vb {
				fields = append(fields, types.FieldDiff{Name: col.name, Left: va, Right: vb})
			}
		}

		if len(fields) > 0 {
			result.Diffs = append(result.Diffs, types.RowDiff{
				Key:         key,
				Description: a.Cell(rowA, cfg.NameColumn),
				Fields:      fields,
			})
		}
	}

	return result
}

// keyIndex maps each key to the first row it appears on. Blank keys are
// skipped; duplicate keys keep their first occurrence.
func keyIndex(s *types.Sheet, keyCol int) map[string]int {
	index := make(map[string]int, len(s.Rows))
	for i := range s.Rows {
		key := strings.TrimSpace(s.Cell(i, keyCol))
		if key == "" {
			continue
		}
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}
	return index
}

// compareColumns assembles the columns to value-compare. Custom columns
// pointing past the sheet width are dropped, same as unknown columns in
// the settings file always have been.
func compareColumns(a *types.Sheet, cfg settings.Settings, detailed bool) []column {
	var columns []column

	if detailed {
		columns = append(columns,
			column{name: "Incoming", index: cfg.IncomingColumn},
			column{name: "Outgoing", index: cfg.OutgoingColumn},
			column{name: "Remaining", index: cfg.RemainingColumn},
		)
	}

	for _, c := range cfg.CustomComparisons {
		if c.Index >= a.ColumnCount() {
			continue
		}
		columns = append(columns, column{name: c.Name, index: c.Index})
	}

	return columns
}
