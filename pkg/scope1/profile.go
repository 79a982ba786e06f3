package scope1

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
)

// Drop names the condition under which a row filter removes a row.
type Drop string

const (
	// DropMissing removes rows whose cell is empty.
	DropMissing Drop = "missing"
	// DropZero removes rows whose cell is the number zero.
	DropZero Drop = "zero"
)

// ColumnMapping copies one source column into one canonical column.
type ColumnMapping struct {
	Source string `validate:"required"`
	Target string `validate:"required"`
}

// MeltSpec reshapes per-category value columns into a category/value pair.
type MeltSpec struct {
	// IDColumns are repeated on every generated row.
	// If empty, every column that is not a value column is kept.
	IDColumns []string `validate:"dive,required"`
	// ValueColumns are the category-specific columns to unpivot.
	ValueColumns []string `validate:"required,min=1,dive,required"`
	// VarName is the column receiving the originating column name.
	VarName string `validate:"required"`
	// ValueName is the column receiving the cell value.
	ValueName string `validate:"required,nefield=VarName"`
}

// DateSpec names the canonical record-date column and its copies.
type DateSpec struct {
	Column string `validate:"required"`
	// Split lists columns set equal to the normalized date (e.g. Start/End Date).
	Split []string `validate:"dive,required"`
}

// DefaultRule fills missing cells of a column from a set of choices.
type DefaultRule struct {
	Column  string         `validate:"required"`
	Choices []models.Value `validate:"required,min=1"`
}

// DerivedRule computes a canonical column from another one, or sets a constant.
type DerivedRule struct {
	Column string `validate:"required"`
	// From copies the named column when set.
	From string
	// Value is written when From is empty.
	Value models.Value
}

// CategorySpec maps verbose free-text labels of a column to short codes.
type CategorySpec struct {
	Column  string            `validate:"required"`
	Replace map[string]string `validate:"required"`
}

// RowFilter removes rows failing a validity rule.
type RowFilter struct {
	Column string `validate:"required"`
	Drop   Drop   `validate:"required,oneof=missing zero"`
}

// ColumnAnchor places a column absent from the template directly after another.
type ColumnAnchor struct {
	Column string `validate:"required"`
	After  string `validate:"required,nefield=Column"`
}

// Profile describes one supported client-entity type. It is pure data:
// the normalization steps read it and never branch on the entity.
type Profile struct {
	// ID is the entity identifier callers select the profile by.
	ID string `validate:"required"`
	// Description is a human-readable label.
	Description string
	// Sheets lists the source sheets merged, in order.
	Sheets []string `validate:"required,min=1,dive,required"`
	// Melt is set for wide layouts that need reshaping.
	Melt *MeltSpec `validate:"omitempty"`
	// Extend adds output columns the template lacks.
	Extend []ColumnAnchor `validate:"dive"`
	// Mappings copies source columns to canonical columns, in order.
	Mappings []ColumnMapping `validate:"required,min=1,dive"`
	// Dates normalizes the record-date column.
	Dates *DateSpec `validate:"omitempty"`
	// Defaults fills missing categorical and numeric cells.
	Defaults []DefaultRule `validate:"dive"`
	// Derived computes columns from already populated ones.
	Derived []DerivedRule `validate:"dive"`
	// Category normalizes a free-text category column.
	Category *CategorySpec `validate:"omitempty"`
	// Filters drop invalid rows, applied in order.
	Filters []RowFilter `validate:"dive"`
}

var validate = validator.New()

// Validate checks the profile definition on its own, without a template.
func (p Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return &ProfileError{Profile: p.ID, Err: err}
	}

	if p.Melt != nil {
		for _, id := range p.Melt.IDColumns {
			if id == p.Melt.VarName || id == p.Melt.ValueName {
				return &ProfileError{Profile: p.ID, Err: fmt.Errorf("melt id column %q collides with the melt output", id)}
			}
		}
	}

	for _, d := range p.Defaults {
		for _, c := range d.Choices {
			if c.IsMissing() {
				return &ProfileError{Profile: p.ID, Err: fmt.Errorf("default for %q: a choice is empty", d.Column)}
			}
		}
	}

	for _, d := range p.Derived {
		if d.From == "" && d.Value.IsMissing() {
			return &ProfileError{Profile: p.ID, Err: fmt.Errorf("derived column %q needs a source column or a value", d.Column)}
		}
	}

	if p.Category != nil {
		// A code that is itself a label would change again on a second pass.
		for label, code := range p.Category.Replace {
			if next, ok := p.Category.Replace[code]; ok && next != code {
				return &ProfileError{Profile: p.ID, Err: fmt.Errorf("category code %q for %q is also a label", code, label)}
			}
		}
	}

	return nil
}

// columnRefs lists every canonical column the profile reads or writes,
// with the role it plays, in declaration order.
func (p Profile) columnRefs() []ColumnMissingError {
	var refs []ColumnMissingError
	add := func(role, col string) {
		refs = append(refs, ColumnMissingError{Profile: p.ID, Column: col, Role: role})
	}

	for _, m := range p.Mappings {
		add("mapping", m.Target)
	}
	if p.Dates != nil {
		add("date", p.Dates.Column)
		for _, c := range p.Dates.Split {
			add("date", c)
		}
	}
	for _, d := range p.Defaults {
		add("default", d.Column)
	}
	for _, d := range p.Derived {
		add("derived", d.Column)
		if d.From != "" {
			add("derived", d.From)
		}
	}
	if p.Category != nil {
		add("category", p.Category.Column)
	}
	for _, f := range p.Filters {
		add("filter", f.Column)
	}
	return refs
}

// ResolveSchema returns the output schema for the profile: the template
// columns plus the profile's extensions. Every column the profile references
// must exist in the result.
func (p Profile) ResolveSchema(template models.Schema) (models.Schema, error) {
	schema := template
	for _, a := range p.Extend {
		next, ok := schema.Insert(a.Column, a.After)
		if !ok {
			return models.Schema{}, &ColumnMissingError{Profile: p.ID, Column: a.After, Role: "extend"}
		}
		schema = next
	}

	for _, ref := range p.columnRefs() {
		if !schema.Has(ref.Column) {
			missing := ref
			return models.Schema{}, &missing
		}
	}
	return schema, nil
}
