package scope1

import (
	"time"

	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
)

// baseTemplate is the fuel template layout without the vessel-only columns.
func baseTemplate() models.Schema {
	return models.Schema{
		Sheet: DefaultTemplateSheet,
		Columns: []string{
			ColFacility, ColResDate, ColSource, ColActivity, ColActivityUnit,
			ColFuelType, ColFuelConsumption, ColFuelUnit, ColCFFactor, ColGasType,
		},
	}
}

// fullTemplate already carries every column either profile writes.
func fullTemplate() models.Schema {
	return models.Schema{
		Sheet: DefaultTemplateSheet,
		Columns: []string{
			ColFacility, ColDepartment, ColResDate, ColStartDate, ColEndDate, ColSource,
			ColActivity, ColActivityUnit, ColFuelType, ColFuelConsumption, ColFuelUnit,
			ColCFFactor, ColGasType,
		},
	}
}

func day(y int, m time.Month, d int) models.Value {
	return models.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func num(f float64) models.Value {
	return models.Float(f)
}

func str(s string) models.Value {
	return models.String(s)
}

// vesselTable builds a wide vessel sheet with the given rows of
// (start date, distance, DGO, HFO, LFO).
func vesselTable(rows ...[5]models.Value) *models.Table {
	t := models.NewTable(
		"Location/Unit/Factory ID", "Start Date", "End Date", "Vessel Name",
		"Vessel Category", "Vessel Type", "Distance travelled (In NM)",
		"DGO Consumed (in MT)", "HFO Consumed (in MT)", "LFO Consumed (in MT)",
	)
	for _, r := range rows {
		t.AppendRow(
			str("LOC-1"), r[0], r[0], str("SSL GANGA"),
			str("Container"), str("Feeder"), r[1],
			r[2], r[3], r[4],
		)
	}
	return t
}

// forkliftTable builds a forklift sheet with rows of (end date, remark, litres).
func forkliftTable(rows ...[3]models.Value) *models.Table {
	t := models.NewTable("Start Date", "End Date", "Remark", "Fuel Consumed (Litres)")
	for _, r := range rows {
		t.AppendRow(r[0], r[0], r[1], r[2])
	}
	return t
}
