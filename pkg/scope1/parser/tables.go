package parser

import "strings"

// dataBounds holds the bounding box of non-empty cells, 0-based and inclusive.
type dataBounds struct {
	minRow, maxRow int
	minCol, maxCol int
}

// findDataBounds finds the bounding box of non-empty cells.
// ok is false when every cell is blank.
func findDataBounds(rows [][]string) (b dataBounds, ok bool) {
	b = dataBounds{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if isBlank(cell) {
				continue
			}
			if b.minRow < 0 || rowIdx < b.minRow {
				b.minRow = rowIdx
			}
			if b.maxRow < 0 || rowIdx > b.maxRow {
				b.maxRow = rowIdx
			}
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
			if b.maxCol < 0 || colIdx > b.maxCol {
				b.maxCol = colIdx
			}
		}
	}

	return b, b.minRow >= 0
}

// rowIsBlank reports whether a row has no non-empty cell within bounds.
func rowIsBlank(row []string, minCol, maxCol int) bool {
	for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
		if !isBlank(row[colIdx]) {
			return false
		}
	}
	return true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
