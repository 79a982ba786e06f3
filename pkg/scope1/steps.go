package scope1

import (
	"strings"

	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/parser"
)

// melt unpivots spec.ValueColumns into (VarName, ValueName) pairs. Rows are
// stacked per value column: every source row for the first value column,
// then every source row for the second, and so on.
func melt(src *models.Table, spec MeltSpec) *models.Table {
	isValue := make(map[string]bool, len(spec.ValueColumns))
	for _, c := range spec.ValueColumns {
		isValue[c] = true
	}

	ids := spec.IDColumns
	if len(ids) == 0 {
		for _, c := range src.Columns {
			if !isValue[c] && c != spec.VarName && c != spec.ValueName {
				ids = append(ids, c)
			}
		}
	}

	idCols := make([]string, 0, len(ids))
	idPos := make([]int, 0, len(ids))
	for _, c := range ids {
		if pos := src.ColumnIndex(c); pos >= 0 {
			idCols = append(idCols, c)
			idPos = append(idPos, pos)
		}
	}

	out := models.NewTable(append(idCols, spec.VarName, spec.ValueName)...)
	out.Rows = make([]models.Row, 0, src.Len()*len(spec.ValueColumns))
	for _, vc := range spec.ValueColumns {
		vpos := src.ColumnIndex(vc)
		label := models.String(vc)
		for _, row := range src.Rows {
			cells := make(models.Row, 0, len(idPos)+2)
			for _, pos := range idPos {
				cells = append(cells, cell(row, pos))
			}
			cells = append(cells, label, cell(row, vpos))
			out.Rows = append(out.Rows, cells)
		}
	}
	return out
}

func cell(row models.Row, pos int) models.Value {
	if pos < 0 || pos >= len(row) {
		return models.Missing()
	}
	return row[pos]
}

// mapColumns builds a canonical table with one row per source row, copying
// each mapped source column into its target. Unmapped columns stay missing.
func mapColumns(src *models.Table, schema models.Schema, mappings []ColumnMapping) *models.Table {
	out := schema.Table()
	out.Rows = make([]models.Row, src.Len())
	for i := range out.Rows {
		out.Rows[i] = make(models.Row, len(out.Columns))
	}

	for _, m := range mappings {
		from := src.ColumnIndex(m.Source)
		to := out.ColumnIndex(m.Target)
		if from < 0 || to < 0 {
			continue
		}
		for i, row := range src.Rows {
			out.Rows[i][to] = cell(row, from)
		}
	}
	return out
}

// normalizeDates reduces the date column to calendar dates and copies it to
// the split columns. Values that cannot be read as a date become missing.
// It returns how many present values could not be parsed.
func normalizeDates(t *models.Table, spec DateSpec, layouts []string) int {
	col := t.ColumnIndex(spec.Column)
	if col < 0 {
		return 0
	}
	split := make([]int, 0, len(spec.Split))
	for _, c := range spec.Split {
		if pos := t.ColumnIndex(c); pos >= 0 {
			split = append(split, pos)
		}
	}

	invalid := 0
	for _, row := range t.Rows {
		v := row[col]
		d, ok := toDate(v, layouts)
		if !ok && !v.IsMissing() {
			invalid++
		}
		row[col] = d
		for _, pos := range split {
			row[pos] = d
		}
	}
	return invalid
}

func toDate(v models.Value, layouts []string) (models.Value, bool) {
	switch v.Kind {
	case models.KindDate:
		return models.Date(parser.TruncateDay(v.Time)), true
	case models.KindNumber:
		if t, ok := parser.SerialToDate(v.Num.InexactFloat64(), false); ok {
			return models.Date(parser.TruncateDay(t)), true
		}
	case models.KindString:
		if t, ok := parser.ParseDateText(v.Str, layouts); ok {
			return models.Date(t), true
		}
	}
	return models.Missing(), false
}

// fillDefaults replaces missing cells of rule.Column with a picked choice.
// Present values are never touched. It returns the number of cells filled.
func fillDefaults(t *models.Table, rule DefaultRule, pick func([]models.Value) models.Value) int {
	col := t.ColumnIndex(rule.Column)
	if col < 0 || len(rule.Choices) == 0 {
		return 0
	}
	filled := 0
	for _, row := range t.Rows {
		if row[col].IsMissing() {
			row[col] = pick(rule.Choices)
			filled++
		}
	}
	return filled
}

// chooser returns the default-selection function for opts.
func chooser(opts Options) func([]models.Value) models.Value {
	if opts.Selection != SelectRandom {
		return func(c []models.Value) models.Value { return c[0] }
	}
	rng := opts.random()
	return func(c []models.Value) models.Value { return c[rng.IntN(len(c))] }
}

// derive sets rule.Column from another column or to a constant.
func derive(t *models.Table, rule DerivedRule) {
	col := t.ColumnIndex(rule.Column)
	if col < 0 {
		return
	}
	from := -1
	if rule.From != "" {
		if from = t.ColumnIndex(rule.From); from < 0 {
			return
		}
	}
	for _, row := range t.Rows {
		if from >= 0 {
			row[col] = row[from]
		} else {
			row[col] = rule.Value
		}
	}
}

// normalizeCategory trims text labels and replaces known verbose labels
// with their short codes. Unknown labels pass through trimmed.
func normalizeCategory(t *models.Table, spec CategorySpec) {
	col := t.ColumnIndex(spec.Column)
	if col < 0 {
		return
	}
	for _, row := range t.Rows {
		if row[col].Kind != models.KindString {
			continue
		}
		row[col] = models.String(normalizeLabel(row[col].Str, spec.Replace))
	}
}

func normalizeLabel(s string, replace map[string]string) string {
	s = strings.TrimSpace(s)
	if code, ok := replace[s]; ok {
		return code
	}
	return s
}

// filterRows removes rows failing f, keeping row order, and returns the
// number of rows removed.
func filterRows(t *models.Table, f RowFilter) int {
	col := t.ColumnIndex(f.Column)
	if col < 0 {
		return 0
	}
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if dropRow(row[col], f.Drop) {
			continue
		}
		kept = append(kept, row)
	}
	dropped := len(t.Rows) - len(kept)
	t.Rows = kept
	return dropped
}

func dropRow(v models.Value, drop Drop) bool {
	switch drop {
	case DropMissing:
		return v.IsMissing()
	case DropZero:
		return v.IsZero()
	}
	return false
}
