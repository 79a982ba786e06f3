package models

import "fmt"

// Workbook represents an in-memory workbook: named sheets in order.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Order lists sheet names in workbook order.
	Order []string
	// Sheets maps sheet name to its table.
	Sheets map[string]*Table
}

// NewWorkbook creates an empty named workbook.
func NewWorkbook(name string) *Workbook {
	return &Workbook{BookName: name, Sheets: make(map[string]*Table)}
}

// AddSheet adds or replaces a sheet.
func (w *Workbook) AddSheet(name string, t *Table) {
	if _, ok := w.Sheets[name]; !ok {
		w.Order = append(w.Order, name)
	}
	w.Sheets[name] = t
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return append([]string(nil), w.Order...)
}

// ReadSheet returns a copy of the named sheet.
func (w *Workbook) ReadSheet(name string) (*Table, error) {
	t, ok := w.Sheets[name]
	if !ok {
		return nil, fmt.Errorf("sheet %q does not exist", name)
	}
	return t.Clone(), nil
}
