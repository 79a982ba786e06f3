package models

// Schema represents the ordered column layout of a template sheet.
type Schema struct {
	// Sheet is the template sheet the columns were read from.
	Sheet string `json:"sheet,omitempty"`
	// Columns holds the column names in output order.
	Columns []string `json:"columns"`
}

// Has reports whether the schema contains the named column.
func (s Schema) Has(name string) bool {
	return s.Index(name) >= 0
}

// Index returns the position of a column, or -1 if absent.
func (s Schema) Index(name string) int {
	for i, c := range s.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Insert returns a copy of the schema with column placed directly after
// the anchor column. A column already present is left where it is.
// ok is false when the anchor does not exist.
func (s Schema) Insert(column, after string) (Schema, bool) {
	if s.Has(column) {
		return s, true
	}
	pos := s.Index(after)
	if pos < 0 {
		return s, false
	}
	cols := make([]string, 0, len(s.Columns)+1)
	cols = append(cols, s.Columns[:pos+1]...)
	cols = append(cols, column)
	cols = append(cols, s.Columns[pos+1:]...)
	return Schema{Sheet: s.Sheet, Columns: cols}, true
}

// Table returns an empty table carrying the schema's column order.
func (s Schema) Table() *Table {
	return NewTable(s.Columns...)
}
