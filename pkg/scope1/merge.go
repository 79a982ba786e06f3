package scope1

import (
	"fmt"

	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
)

// SheetSource is a workbook whose sheets can be read as tables.
// parser.Workbook and models.Workbook both implement it.
type SheetSource interface {
	SheetNames() []string
	ReadSheet(name string) (*models.Table, error)
}

// Merge reads the named sheets and concatenates them in order. The result
// has the union of all columns, in order of first appearance; cells are
// missing where a sheet lacks a column. Rows are not deduplicated.
func Merge(src SheetSource, sheets []string) (*models.Table, error) {
	available := src.SheetNames()
	present := make(map[string]bool, len(available))
	for _, name := range available {
		present[name] = true
	}
	for _, name := range sheets {
		if !present[name] {
			return nil, &SheetNotFoundError{Sheet: name, Available: available}
		}
	}

	merged := models.NewTable()
	for _, name := range sheets {
		sheet, err := src.ReadSheet(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		appendTable(merged, sheet)
	}
	return merged, nil
}

// appendTable appends src's rows to dst, adding src's columns as needed.
func appendTable(dst, src *models.Table) {
	positions := make([]int, len(src.Columns))
	for i, col := range src.Columns {
		positions[i] = dst.AddColumn(col)
	}

	for _, row := range src.Rows {
		cells := make([]models.Value, len(dst.Columns))
		for i, v := range row {
			if i < len(positions) {
				cells[positions[i]] = v
			}
		}
		dst.AppendRow(cells...)
	}
}
