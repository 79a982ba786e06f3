package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
	"github.com/xuri/excelize/v2"
)

func TestReadTable(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B2", "End Date")
	f.SetCellValue(sheetName, "C2", " Remark ")
	f.SetCellValue(sheetName, "D2", "Fuel Consumed (Litres)")
	f.SetCellValue(sheetName, "B3", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	f.SetCellValue(sheetName, "C3", "Forklift A")
	f.SetCellValue(sheetName, "D3", 120.5)
	// blank row 4 is skipped
	f.SetCellValue(sheetName, "C5", "Forklift B")
	f.SetCellValue(sheetName, "D5", 0)

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellStyle(sheetName, "B3", "B3", dateStyle)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := Open(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer wb.Close()

	table, err := wb.ReadSheet(sheetName)
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	wantCols := []string{"End Date", "Remark", "Fuel Consumed (Litres)"}
	if len(table.Columns) != len(wantCols) {
		t.Fatalf("Expected columns %v, got %v", wantCols, table.Columns)
	}
	for i, c := range wantCols {
		if table.Columns[i] != c {
			t.Errorf("Column %d: expected %q, got %q", i, c, table.Columns[i])
		}
	}

	if table.Len() != 2 {
		t.Fatalf("Expected 2 rows, got %d", table.Len())
	}

	date := table.Get(0, "End Date")
	if date.Kind != models.KindDate {
		t.Fatalf("Expected date cell, got kind %v (%q)", date.Kind, date.Text())
	}
	if got := date.Time.Format(models.DateLayout); got != "2024-03-15" {
		t.Errorf("Expected 2024-03-15, got %s", got)
	}

	if got := table.Get(0, "Fuel Consumed (Litres)"); !got.Num.Equal(decimal.RequireFromString("120.5")) {
		t.Errorf("Expected 120.5, got %v", got.Text())
	}
	if got := table.Get(1, "End Date"); !got.IsMissing() {
		t.Errorf("Expected missing date, got %v", got.Text())
	}
	if got := table.Get(1, "Fuel Consumed (Litres)"); !got.IsZero() {
		t.Errorf("Expected zero, got %v", got.Text())
	}
}

func TestReadHeader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Facility", "Res_Date", "", "Facility"})

	schema, err := ReadHeader(f, "Sheet1")
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}

	expected := []string{"Facility", "Res_Date", "Unnamed: 2", "Facility.1"}
	if len(schema.Columns) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, schema.Columns)
	}
	for i := range expected {
		if schema.Columns[i] != expected[i] {
			t.Errorf("Column %d: expected %q, got %q", i, expected[i], schema.Columns[i])
		}
	}
	if schema.Sheet != "Sheet1" {
		t.Errorf("Expected sheet Sheet1, got %q", schema.Sheet)
	}
}

func TestReadHeaderEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadHeader(f, "Sheet1"); err == nil {
		t.Error("Expected error for empty sheet")
	}
}

func TestReadTableMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadTable(f, "Nope"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"123", models.Number(decimal.NewFromInt(123))},
		{"123.45", models.Number(decimal.RequireFromString("123.45"))},
		{"-100", models.Number(decimal.NewFromInt(-100))},
		{"hello", models.String("hello")},
		{"", models.Missing()},
		{"   ", models.Missing()},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if !result.Equal(tt.expected) {
			t.Errorf("parseValue(%q) = %v (kind: %v), expected %v (kind: %v)",
				tt.input, result.Text(), result.Kind, tt.expected.Text(), tt.expected.Kind)
		}
	}
}
