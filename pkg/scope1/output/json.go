package output

import (
	"encoding/json"
	"os"

	"github.com/ukaji3/scope1fuel-go/pkg/scope1"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
)

// jsonTable is the JSON form of a table: column names plus row arrays.
type jsonTable struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// ToJSON serializes a table. Numbers keep their exact decimal text, dates
// render as YYYY-MM-DD and missing cells as null.
func ToJSON(t *models.Table, pretty bool) ([]byte, error) {
	doc := jsonTable{
		Columns: t.Columns,
		Rows:    make([][]interface{}, len(t.Rows)),
	}
	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = jsonValue(v)
		}
		doc.Rows[i] = cells
	}

	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// SaveJSON writes the table as JSON at path.
func SaveJSON(path string, t *models.Table, pretty bool) error {
	data, err := ToJSON(t, pretty)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return scope1.NewIOError("write", path, err)
	}
	return nil
}

func jsonValue(v models.Value) interface{} {
	switch v.Kind {
	case models.KindString:
		return v.Str
	case models.KindNumber:
		return json.Number(v.Num.String())
	case models.KindDate:
		return v.Text()
	}
	return nil
}
