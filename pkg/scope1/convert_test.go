package scope1

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTemplate(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", DefaultTemplateSheet))
	header := make([]interface{}, 0, len(baseTemplate().Columns))
	for _, c := range baseTemplate().Columns {
		header = append(header, c)
	}
	require.NoError(t, f.SetSheetRow(DefaultTemplateSheet, "A1", &header))
	_, err := f.NewSheet("Notes")
	require.NoError(t, err)

	path := filepath.Join(dir, "Fuel-Type-Sample_scope1.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func forkliftWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)

	sheets := map[string][][]interface{}{
		"FORKLIFT-16934": {
			{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), "Forklift 16934", 210.5},
			{nil, nil, "Forklift 16934", 15},
		},
		"FORKLIFT-16935": {
			{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), "Forklift 16935", 0},
		},
	}

	require.NoError(t, f.SetSheetName("Sheet1", "FORKLIFT-16934"))
	_, err = f.NewSheet("FORKLIFT-16935")
	require.NoError(t, err)

	for _, name := range []string{"FORKLIFT-16934", "FORKLIFT-16935"} {
		require.NoError(t, f.SetSheetRow(name, "A1", &[]interface{}{"Start Date", "End Date", "Remark", "Fuel Consumed (Litres)"}))
		for i, row := range sheets[name] {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			r := row
			require.NoError(t, f.SetSheetRow(name, cell, &r))
			end, _ := excelize.CoordinatesToCellName(2, i+2)
			require.NoError(t, f.SetCellStyle(name, cell, end, dateStyle))
		}
	}
	return f
}

func TestRun_FZEEndToEnd(t *testing.T) {
	dir := t.TempDir()
	template := writeTemplate(t, dir)

	f := forkliftWorkbook(t)
	input := filepath.Join(dir, "client.xlsx")
	require.NoError(t, f.SaveAs(input))
	f.Close()

	res, err := Run(Job{Entity: EntityFZE, InputPath: input, TemplatePath: template}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, baseTemplate().Columns, res.Table.Columns)
	require.Equal(t, 2, res.Table.Len())

	assert.Equal(t, "Forklift 16934", res.Table.Get(0, ColFacility).Str)
	assert.True(t, res.Table.Get(0, ColResDate).Equal(day(2024, 1, 31)))
	assert.True(t, res.Table.Get(0, ColFuelConsumption).Equal(num(210.5)))
	assert.Equal(t, "Forklift 16934", res.Table.Get(0, ColSource).Str)

	// FZE keeps zero-litre rows; only the vessel profile filters zeros.
	assert.True(t, res.Table.Get(1, ColFuelConsumption).IsZero())
	assert.Equal(t, 3, res.Stats.InputRows)
}

func TestConvertReader_SheetMissing(t *testing.T) {
	f := forkliftWorkbook(t)
	defer f.Close()

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)

	_, err = ConvertReader(&buf, "upload.xlsx", baseTemplate(), SSLProfile(), DefaultOptions())

	var notFound *SheetNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "TBC BADRINATH", notFound.Sheet)
}

func TestConvertReader_InvalidFormat(t *testing.T) {
	_, err := ConvertReader(bytes.NewBufferString("not a workbook"), "upload.xlsx", baseTemplate(), FZEProfile(), DefaultOptions())

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	template := writeTemplate(t, dir)

	bogus := filepath.Join(dir, "bogus.xlsx")
	require.NoError(t, os.WriteFile(bogus, []byte("plain text"), 0644))

	tests := []struct {
		name  string
		job   Job
		check func(t *testing.T, err error)
	}{
		{
			name: "unknown entity",
			job:  Job{Entity: "Select", InputPath: bogus, TemplatePath: template},
			check: func(t *testing.T, err error) {
				var unknown *UnknownEntityError
				assert.True(t, errors.As(err, &unknown))
			},
		},
		{
			name: "template sheet missing",
			job:  Job{Entity: EntityFZE, InputPath: bogus, TemplatePath: template, TemplateSheet: "Scope 2"},
			check: func(t *testing.T, err error) {
				var notFound *SheetNotFoundError
				require.True(t, errors.As(err, &notFound))
				assert.Equal(t, "Scope 2", notFound.Sheet)
				assert.ElementsMatch(t, []string{DefaultTemplateSheet, "Notes"}, notFound.Available)
			},
		},
		{
			name: "input missing",
			job:  Job{Entity: EntityFZE, InputPath: filepath.Join(dir, "absent.xlsx"), TemplatePath: template},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrFileNotFound))
			},
		},
		{
			name: "input not a workbook",
			job:  Job{Entity: EntityFZE, InputPath: bogus, TemplatePath: template},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrInvalidFormat))
			},
		},
		{
			name: "template missing",
			job:  Job{Entity: EntityFZE, InputPath: bogus, TemplatePath: filepath.Join(dir, "none.xlsx")},
			check: func(t *testing.T, err error) {
				var ioErr *IOError
				require.True(t, errors.As(err, &ioErr))
				assert.Equal(t, "open", ioErr.Op)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(tt.job, DefaultOptions())
			assert.Nil(t, res)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
