// Package parser reads source and template workbooks into tables.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
	"github.com/xuri/excelize/v2"
)

// cellReader converts raw cell text to typed values for one workbook.
type cellReader struct {
	f        *excelize.File
	date1904 bool
	// dateStyles caches whether a style id renders a date.
	dateStyles map[int]bool
}

func newCellReader(f *excelize.File) *cellReader {
	r := &cellReader{f: f, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

// ReadTable reads a sheet as a table. The first non-blank row is the header;
// blank rows below it are skipped.
func ReadTable(f *excelize.File, sheetName string) (*models.Table, error) {
	return newCellReader(f).readTable(sheetName)
}

func (r *cellReader) readTable(sheetName string) (*models.Table, error) {
	rows, err := r.f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	bounds, ok := findDataBounds(rows)
	if !ok {
		return models.NewTable(), nil
	}

	table := models.NewTable(headerNames(rows[bounds.minRow], bounds.minCol, bounds.maxCol)...)

	for rowIdx := bounds.minRow + 1; rowIdx <= bounds.maxRow; rowIdx++ {
		row := rows[rowIdx]
		if rowIsBlank(row, bounds.minCol, bounds.maxCol) {
			continue
		}

		cells := make([]models.Value, len(table.Columns))
		for i := range cells {
			colIdx := bounds.minCol + i
			if colIdx >= len(row) {
				break
			}
			cells[i] = r.cellValue(sheetName, colIdx+1, rowIdx+1, row[colIdx])
		}
		table.AppendRow(cells...)
	}

	return table, nil
}

// ReadHeader reads the header row of a sheet as a schema.
func ReadHeader(f *excelize.File, sheetName string) (models.Schema, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Schema{}, err
	}
	bounds, ok := findDataBounds(rows)
	if !ok {
		return models.Schema{}, fmt.Errorf("sheet %q has no header row", sheetName)
	}
	return models.Schema{
		Sheet:   sheetName,
		Columns: headerNames(rows[bounds.minRow], bounds.minCol, bounds.maxCol),
	}, nil
}

// headerNames trims header cells, names blank ones "Unnamed: N" and
// suffixes repeated names with ".1", ".2", ...
func headerNames(row []string, minCol, maxCol int) []string {
	names := make([]string, 0, maxCol-minCol+1)
	seen := make(map[string]int)
	for colIdx := minCol; colIdx <= maxCol; colIdx++ {
		name := ""
		if colIdx < len(row) {
			name = strings.TrimSpace(row[colIdx])
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(colIdx-minCol)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n+1)
		} else {
			seen[name] = 0
		}
		names = append(names, name)
	}
	return names
}

// cellValue types a raw cell. Numbers in date-formatted cells become dates.
func (r *cellReader) cellValue(sheetName string, col, row int, raw string) models.Value {
	v := parseValue(raw)
	if v.Kind != models.KindNumber {
		return v
	}

	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil || !r.isDateCell(sheetName, cellName) {
		return v
	}
	if t, ok := SerialToDate(v.Num.InexactFloat64(), r.date1904); ok {
		return models.Date(t)
	}
	return v
}

func (r *cellReader) isDateCell(sheetName, cellName string) bool {
	styleID, err := r.f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := r.f.GetStyle(styleID); err == nil && style != nil {
		isDate = builtInDateFormats[style.NumFmt]
		if !isDate && style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		}
	}
	r.dateStyles[styleID] = isDate
	return isDate
}

// parseValue attempts to parse a string value as a number.
// Blank text is Missing; anything not numeric stays text.
func parseValue(s string) models.Value {
	if isBlank(s) {
		return models.Missing()
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return models.Number(d)
	}
	return models.String(s)
}
