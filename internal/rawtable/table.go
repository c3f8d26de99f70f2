// Package rawtable holds the dynamic-schema view of one raw registry table.
//
// Upstream snapshot schemas drift between vintages: the same logical field
// appears under different column names, and cells may hold empty strings or
// textual null markers instead of real nulls. The Table type normalizes
// column names exactly once at construction so candidate lists can be
// written in a single casing convention, and Record resolves a value from
// an ordered list of candidate columns.
package rawtable

import (
	"strings"
)

// Table is one region's raw source table. Column names are uppercased at
// construction; cell values are stored as already-stringified scalars where
// "" stands for both an absent and an empty cell.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a Table from column names (any casing) and row values aligned
// with them. Short rows are tolerated; missing cells read as "".
func New(columns []string, rows [][]string) *Table {
	t := &Table{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
		rows:    rows,
	}
	for i, c := range columns {
		name := strings.ToUpper(c)
		t.columns[i] = name
		// First occurrence wins if uppercasing collapses two columns.
		if _, ok := t.index[name]; !ok {
			t.index[name] = i
		}
	}
	return t
}

// Columns returns the uppercased column names in source order.
func (t *Table) Columns() []string {
	return t.columns
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Row returns the i-th row.
func (t *Table) Row(i int) Record {
	return Record{table: t, cells: t.rows[i]}
}

// Column returns the first of candidates present in the schema. The bool
// distinguishes "column absent" from a column that merely holds empty
// values, which table-level filters treat differently.
func (t *Table) Column(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if _, ok := t.index[c]; ok {
			return c, true
		}
	}
	return "", false
}

// Record is a single row of a Table.
type Record struct {
	table *Table
	cells []string
}

// Get returns the raw stored value for column, or "" when the column is not
// part of the schema. No trimming or sentinel handling is applied.
func (r Record) Get(column string) string {
	i, ok := r.table.index[column]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// Field resolves the first candidate column holding a usable value and
// returns it trimmed. Returns "" when every candidate is absent or
// null-like.
func (r Record) Field(candidates ...string) string {
	return r.FieldOr("", candidates...)
}

// FieldOr is Field with an explicit fallback for when no candidate resolves.
func (r Record) FieldOr(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if _, ok := r.table.index[c]; !ok {
			continue
		}
		v := strings.TrimSpace(r.Get(c))
		if isNull(v) {
			continue
		}
		return v
	}
	return fallback
}

// isNull reports whether a trimmed value is a null sentinel: technically
// present but semantically absent.
func isNull(v string) bool {
	switch v {
	case "", "nan", "None":
		return true
	}
	return false
}
