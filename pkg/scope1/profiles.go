package scope1

import "github.com/ukaji3/scope1fuel-go/pkg/scope1/models"

// Canonical columns of the Scope 1 fuel template.
const (
	ColFacility        = "Facility"
	ColDepartment      = "Department"
	ColResDate         = "Res_Date"
	ColStartDate       = "Start Date"
	ColEndDate         = "End Date"
	ColSource          = "Source"
	ColActivity        = "Activity"
	ColActivityUnit    = "Activity Unit"
	ColFuelType        = "Fuel Type"
	ColFuelConsumption = "Fuel Consumption"
	ColFuelUnit        = "Fuel Unit"
	ColCFFactor        = "CF Factor"
	ColGasType         = "GAS Type"
)

// Built-in entity identifiers.
const (
	EntityFZE = "FZE"
	EntitySSL = "SSL"
)

func choices(values ...interface{}) []models.Value {
	out := make([]models.Value, 0, len(values))
	for _, v := range values {
		if mv, ok := models.FromInterface(v); ok {
			out = append(out, mv)
		}
	}
	return out
}

// FZEProfile returns the diesel forklift profile: consumption in litres,
// one sheet per forklift.
func FZEProfile() Profile {
	return Profile{
		ID:          EntityFZE,
		Description: "Diesel forklifts, consumption in litres",
		Sheets:      []string{"FORKLIFT-16934", "FORKLIFT-16935"},
		Mappings: []ColumnMapping{
			{Source: "End Date", Target: ColResDate},
			{Source: "Remark", Target: ColFacility},
			{Source: "Fuel Consumed (Litres)", Target: ColFuelConsumption},
		},
		Dates: &DateSpec{Column: ColResDate},
		Defaults: []DefaultRule{
			{Column: ColActivityUnit, Choices: choices("Litres")},
			{Column: ColFuelUnit, Choices: choices("Litres")},
			{Column: ColCFFactor, Choices: choices("IMO")},
			{Column: ColGasType, Choices: choices("CO2")},
			{Column: ColActivity, Choices: choices(0.001)},
			{Column: ColFuelType, Choices: choices("Diesel")},
		},
		Derived: []DerivedRule{
			{Column: ColSource, From: ColFacility},
		},
		Filters: []RowFilter{
			{Column: ColResDate, Drop: DropMissing},
			{Column: ColFuelConsumption, Drop: DropMissing},
		},
	}
}

// SSLProfile returns the marine vessel profile: one sheet per vessel, with
// DGO/HFO/LFO consumption in metric tonnes held in separate columns.
func SSLProfile() Profile {
	return Profile{
		ID:          EntitySSL,
		Description: "Marine vessels, fuel consumption in MT per fuel type",
		Sheets: []string{
			"TBC BADRINATH", "TBC KAILASH", "SSL KRISHNA", "SSL VISHAKAPATNAM",
			"SSL MUMBAI", "SSL BRAMHAPUTRA", "SSL GANGA", "SSL BHARAT", "SSL SABRIMALAI",
			"SSL GUJARAT", "SSL DELHI", "SSL GODAVARI", "SSL THAMIRABARANI",
		},
		Melt: &MeltSpec{
			IDColumns: []string{
				"Location/Unit/Factory ID", "Start Date", "End Date", "Vessel Name",
				"Vessel Category", "Vessel Type", "Distance travelled (In NM)",
			},
			ValueColumns: []string{"DGO Consumed (in MT)", "HFO Consumed (in MT)", "LFO Consumed (in MT)"},
			VarName:      "Fuel Type",
			ValueName:    "Consumed (in MT)",
		},
		Extend: []ColumnAnchor{
			{Column: ColDepartment, After: ColFacility},
			{Column: ColStartDate, After: ColResDate},
			{Column: ColEndDate, After: ColStartDate},
		},
		Mappings: []ColumnMapping{
			{Source: "Start Date", Target: ColResDate},
			{Source: "Vessel Name", Target: ColFacility},
			{Source: "Vessel Type", Target: ColSource},
			{Source: "Distance travelled (In NM)", Target: ColActivity},
			{Source: "Fuel Type", Target: ColFuelType},
			{Source: "Consumed (in MT)", Target: ColFuelConsumption},
		},
		Dates: &DateSpec{Column: ColResDate, Split: []string{ColStartDate, ColEndDate}},
		Defaults: []DefaultRule{
			{Column: ColActivityUnit, Choices: choices("MT")},
			{Column: ColFuelUnit, Choices: choices("MT")},
			{Column: ColCFFactor, Choices: choices("IMO")},
			{Column: ColGasType, Choices: choices("CO2")},
		},
		Derived: []DerivedRule{
			{Column: ColDepartment, Value: models.String("")},
		},
		Category: &CategorySpec{
			Column: ColFuelType,
			Replace: map[string]string{
				"LFO Consumed (in MT)": "LFO",
				"HFO Consumed (in MT)": "HFO",
				"DGO Consumed (in MT)": "DGO",
			},
		},
		Filters: []RowFilter{
			{Column: ColResDate, Drop: DropMissing},
			{Column: ColActivity, Drop: DropMissing},
			{Column: ColActivity, Drop: DropZero},
			{Column: ColFuelConsumption, Drop: DropMissing},
			// Melted rows for a fuel the vessel did not burn.
			{Column: ColFuelConsumption, Drop: DropZero},
		},
	}
}
