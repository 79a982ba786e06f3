package parser

import (
	"io"
	"path/filepath"

	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
	"github.com/xuri/excelize/v2"
)

// Workbook is an open spreadsheet file whose sheets can be read as tables.
type Workbook struct {
	name  string
	file  *excelize.File
	cells *cellReader
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return NewWorkbook(f, filepath.Base(path)), nil
}

// OpenReader opens a workbook from a stream, such as an uploaded file.
func OpenReader(r io.Reader, name string) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	return NewWorkbook(f, name), nil
}

// NewWorkbook wraps an already open excelize file.
func NewWorkbook(f *excelize.File, name string) *Workbook {
	return &Workbook{name: name, file: f, cells: newCellReader(f)}
}

// Name returns the workbook file name.
func (w *Workbook) Name() string {
	return w.name
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// ReadSheet reads the named sheet as a table.
func (w *Workbook) ReadSheet(name string) (*models.Table, error) {
	return w.cells.readTable(name)
}

// ReadSchema reads the header row of the named sheet.
func (w *Workbook) ReadSchema(sheet string) (models.Schema, error) {
	return ReadHeader(w.file, sheet)
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}
