// Package table holds the in-memory tabular model shared by all extractors:
// ordered rows of string cells under a fixed, named column schema.
package table

import "fmt"

// Table is an ordered sequence of rows under a fixed column schema. A Table
// is always valid: a failed extraction surfaces as a table with the expected
// columns and zero rows, never nil. Row order is whatever the backing store
// produced; no sorting is applied anywhere.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given column schema.
func New(columns ...string) *Table {
	return &Table{Columns: columns, Rows: [][]string{}}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// AppendRow adds one row. The number of values must match the column count.
func (t *Table) AppendRow(values ...string) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("append row: got %d values for %d columns", len(values), len(t.Columns))
	}
	t.Rows = append(t.Rows, values)
	return nil
}

// TagColumn is the column appended to merged tables to record which browser
// each row came from.
const TagColumn = "browser"

// Merge unions two same-schema tables into a new table carrying a trailing
// browser column: all of a's rows tagged tagA, then all of b's rows tagged
// tagB, each group in its original order. Rows are concatenated, never
// deduplicated. An empty input simply contributes no rows.
func Merge(a *Table, tagA string, b *Table, tagB string) (*Table, error) {
	columns := a.Columns
	if len(columns) == 0 {
		columns = b.Columns
	}

	merged := New(append(append([]string{}, columns...), TagColumn)...)
	if err := merged.AppendTagged(a, tagA); err != nil {
		return nil, err
	}
	if err := merged.AppendTagged(b, tagB); err != nil {
		return nil, err
	}
	return merged, nil
}

// AppendTagged appends all of src's rows to t, each annotated with tag in the
// trailing tag column. t's schema must be src's schema plus the tag column;
// a src with no columns at all (nothing was ever read) contributes nothing.
func (t *Table) AppendTagged(src *Table, tag string) error {
	if len(src.Columns) == 0 && len(src.Rows) == 0 {
		return nil
	}
	if len(src.Columns)+1 != len(t.Columns) {
		return fmt.Errorf("merge: schema mismatch: %v cannot extend to %v", src.Columns, t.Columns)
	}
	for i, col := range src.Columns {
		if t.Columns[i] != col {
			return fmt.Errorf("merge: schema mismatch at column %d: %q != %q", i, col, t.Columns[i])
		}
	}

	for _, row := range src.Rows {
		tagged := make([]string, 0, len(row)+1)
		tagged = append(tagged, row...)
		tagged = append(tagged, tag)
		t.Rows = append(t.Rows, tagged)
	}
	return nil
}
