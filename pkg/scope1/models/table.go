package models

// Row is one table row; cells are aligned with Table.Columns.
type Row []Value

// Table represents an ordered set of named columns and their rows.
type Table struct {
	// Columns holds the column names in order.
	Columns []string
	// Rows holds the data rows. Every row has len(Columns) cells.
	Rows []Row
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of a column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has the named column.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// AddColumn appends a column filled with missing values and returns its
// position. An existing column is left untouched.
func (t *Table) AddColumn(name string) int {
	if idx := t.ColumnIndex(name); idx >= 0 {
		return idx
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], Missing())
	}
	return len(t.Columns) - 1
}

// AppendRow appends a row, padding or truncating it to the column count.
func (t *Table) AppendRow(cells ...Value) {
	row := make(Row, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Get returns the cell at row i of the named column.
// Absent columns yield Missing.
func (t *Table) Get(i int, column string) Value {
	idx := t.ColumnIndex(column)
	if idx < 0 || i < 0 || i >= len(t.Rows) || idx >= len(t.Rows[i]) {
		return Missing()
	}
	return t.Rows[i][idx]
}

// Column returns a copy of all values of the named column, or nil if absent.
func (t *Table) Column(name string) []Value {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := NewTable(t.Columns...)
	c.Rows = make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = append(Row(nil), row...)
	}
	return c
}
