package types

// Sheet holds one loaded spreadsheet: the header row and the data rows
// below it. Cells are kept as the strings the file format produced.
type Sheet struct {
	Path    string
	Headers []string
	Rows    [][]string
}

// ColumnCount returns the width of the sheet, taken from the header row.
func (s *Sheet) ColumnCount() int {
	return len(s.Headers)
}

// Cell returns the value at (row, col), or "" when the row is ragged and
// does not reach col.
func (s *Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Entry is a row key plus its description column value, used for rows
// present in only one file.
type Entry struct {
	Key         string
	Description string
}

// FieldDiff is a single column whose value differs between the two files
// for a row present in both.
type FieldDiff struct {
	Name  string
	Left  string
	Right string
}

// RowDiff collects all differing fields for one common row key.
type RowDiff struct {
	Key         string
	Description string
	Fields      []FieldDiff
}

// Result is the outcome of comparing two sheets. Missing holds rows found
// in the first file but not the second, Extra the reverse. Diffs is only
// populated when detailed mode or custom comparisons are active.
type Result struct {
	FileA     string
	FileB     string
	RowCountA int
	RowCountB int
	Missing   []Entry
	Extra     []Entry
	Diffs     []RowDiff
}

// Identical reports whether the comparison found no differences at all.
func (r *Result) Identical() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0 && len(r.Diffs) == 0
}
