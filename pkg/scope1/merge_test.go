package scope1

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/parser"
	"github.com/xuri/excelize/v2"
)

func TestMerge_ConcatenatesInListOrder(t *testing.T) {
	a := models.NewTable("Date", "Litres")
	a.AppendRow(str("a1"), num(1))
	a.AppendRow(str("a2"), num(2))

	b := models.NewTable("Litres", "Remark")
	b.AppendRow(num(3), str("b1"))

	wb := models.NewWorkbook("client.xlsx")
	wb.AddSheet("A", a)
	wb.AddSheet("B", b)

	merged, err := Merge(wb, []string{"B", "A"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Litres", "Remark", "Date"}, merged.Columns)
	require.Equal(t, 3, merged.Len())

	assert.True(t, merged.Get(0, "Litres").Equal(num(3)))
	assert.True(t, merged.Get(0, "Date").IsMissing())
	assert.True(t, merged.Get(1, "Date").Equal(str("a1")))
	assert.True(t, merged.Get(1, "Remark").IsMissing())
	assert.True(t, merged.Get(2, "Litres").Equal(num(2)))
}

func TestMerge_KeepsDuplicates(t *testing.T) {
	a := models.NewTable("X")
	a.AppendRow(str("same"))

	wb := models.NewWorkbook("client.xlsx")
	wb.AddSheet("A", a)
	wb.AddSheet("B", a.Clone())

	merged, err := Merge(wb, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 2, merged.Len())
}

func TestMerge_SheetNotFound(t *testing.T) {
	wb := models.NewWorkbook("client.xlsx")
	wb.AddSheet("A", models.NewTable("X"))

	merged, err := Merge(wb, []string{"A", "Missing"})
	assert.Nil(t, merged)

	var notFound *SheetNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Missing", notFound.Sheet)
	assert.Equal(t, []string{"A"}, notFound.Available)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestMerge_FromWorkbookFile(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "FORKLIFT-16934")
	f.SetSheetRow("FORKLIFT-16934", "A1", &[]interface{}{"End Date", "Remark", "Fuel Consumed (Litres)"})
	f.SetSheetRow("FORKLIFT-16934", "A2", &[]interface{}{"2024-01-05", "Yard", 10})
	f.SetSheetRow("FORKLIFT-16934", "A3", &[]interface{}{"2024-01-06", "Yard", 12})

	f.NewSheet("FORKLIFT-16935")
	f.SetSheetRow("FORKLIFT-16935", "A1", &[]interface{}{"End Date", "Remark", "Fuel Consumed (Litres)"})
	f.SetSheetRow("FORKLIFT-16935", "A2", &[]interface{}{"2024-01-05", "Dock", 7})

	path := filepath.Join(t.TempDir(), "client.xlsx")
	require.NoError(t, f.SaveAs(path))

	wb, err := parser.Open(path)
	require.NoError(t, err)
	defer wb.Close()

	merged, err := Merge(wb, []string{"FORKLIFT-16934", "FORKLIFT-16935"})
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Len())
	assert.Equal(t, "Dock", merged.Get(2, "Remark").Str)
}
