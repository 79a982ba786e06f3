// Package output serializes canonical tables.
package output

import (
	"io"

	"github.com/ukaji3/scope1fuel-go/pkg/scope1"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet written when none is given.
const DefaultSheetName = "Sheet1"

// dateNumFmt is the built-in "m/d/yyyy" number format.
const dateNumFmt = 14

// NewXLSX builds a workbook holding the table on one sheet: a header row
// in column order followed by the data rows. Date cells get a date format.
func NewXLSX(t *models.Table, sheetName string) (*excelize.File, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	f := excelize.NewFile()
	if sheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheetName); err != nil {
			f.Close()
			return nil, err
		}
	}

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: dateNumFmt})
	if err != nil {
		f.Close()
		return nil, err
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		f.Close()
		return nil, err
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		f.Close()
		return nil, err
	}

	for i, row := range t.Rows {
		cells := make([]interface{}, len(t.Columns))
		for j := range cells {
			if j >= len(row) {
				break
			}
			cells[j] = cellFor(row[j], dateStyle)
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := sw.SetRow(axis, cells); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := sw.Flush(); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func cellFor(v models.Value, dateStyle int) interface{} {
	switch v.Kind {
	case models.KindMissing:
		return nil
	case models.KindDate:
		return excelize.Cell{StyleID: dateStyle, Value: v.Time}
	}
	return v.Interface()
}

// WriteXLSX writes the table as an xlsx workbook to w.
func WriteXLSX(w io.Writer, t *models.Table, sheetName string) error {
	f, err := NewXLSX(t, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// SaveXLSX writes the table as an xlsx workbook at path.
func SaveXLSX(path string, t *models.Table, sheetName string) error {
	f, err := NewXLSX(t, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return scope1.NewIOError("write", path, err)
	}
	return nil
}
