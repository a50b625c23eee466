package history

import "fmt"

// Column is a named, ordered run of cell values.
type Column struct {
	Name   string
	Values []any
}

// Table is an in-memory result set: an ordered sequence of columns whose
// value slices all have the same length. Row i is the i-th value of every
// column, in column order.
type Table struct {
	Columns []Column
	rows    int
}

// NewTable builds a table from column names and positional rows. Every row
// must have exactly len(names) values.
func NewTable(names []string, rows [][]any) (*Table, error) {
	t := &Table{Columns: make([]Column, len(names)), rows: len(rows)}
	for i, name := range names {
		t.Columns[i] = Column{Name: name, Values: make([]any, len(rows))}
	}
	for r, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row %d has %d values, want %d", r, len(row), len(names))
		}
		for c, v := range row {
			t.Columns[c].Values[r] = v
		}
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, bool) {
	i := t.Index(name)
	if i < 0 {
		return Column{}, false
	}
	return t.Columns[i], true
}

// Row returns a copy of row i in column order.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.Columns))
	for c, col := range t.Columns {
		row[c] = col.Values[i]
	}
	return row
}

// Rows returns copies of all rows.
func (t *Table) Rows() [][]any {
	rows := make([][]any, t.rows)
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Remove takes the column at index i out of the table and returns it.
func (t *Table) Remove(i int) (Column, error) {
	if i < 0 || i >= len(t.Columns) {
		return Column{}, fmt.Errorf("column index %d out of range [0,%d)", i, len(t.Columns))
	}
	col := t.Columns[i]
	t.Columns = append(t.Columns[:i:i], t.Columns[i+1:]...)
	return col, nil
}

// Insert places col at index i, shifting later columns right. Inserting
// into an empty table defines its row count.
func (t *Table) Insert(i int, col Column) error {
	if i < 0 || i > len(t.Columns) {
		return fmt.Errorf("column index %d out of range [0,%d]", i, len(t.Columns))
	}
	if len(t.Columns) == 0 {
		t.rows = len(col.Values)
	} else if len(col.Values) != t.rows {
		return fmt.Errorf("column %q has %d values, want %d", col.Name, len(col.Values), t.rows)
	}

	t.Columns = append(t.Columns, Column{})
	copy(t.Columns[i+1:], t.Columns[i:])
	t.Columns[i] = col
	return nil
}

// Project returns a new table holding only the named columns, in the given
// order. The value slices are shared with t.
func (t *Table) Project(names ...string) (*Table, error) {
	out := &Table{Columns: make([]Column, 0, len(names)), rows: t.rows}
	for _, name := range names {
		col, ok := t.Column(name)
		if !ok {
			return nil, &SchemaError{Column: name}
		}
		out.Columns = append(out.Columns, col)
	}
	return out, nil
}
