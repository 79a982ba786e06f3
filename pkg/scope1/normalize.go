package scope1

import (
	"github.com/rs/zerolog"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
)

// FilterStat counts the rows a single row filter removed.
type FilterStat struct {
	Column string `json:"column"`
	Drop   Drop   `json:"drop"`
	Rows   int    `json:"rows"`
}

// Stats summarizes one normalization run.
type Stats struct {
	// InputRows is the number of merged source rows.
	InputRows int `json:"input_rows"`
	// ReshapedRows is the row count after the melt step (equal to InputRows without melt).
	ReshapedRows int `json:"reshaped_rows"`
	// Dropped lists rows removed per filter, in filter order.
	Dropped []FilterStat `json:"dropped,omitempty"`
	// OutputRows is the number of canonical rows emitted.
	OutputRows int `json:"output_rows"`
}

// Result is the output of a normalization run.
type Result struct {
	// Profile is the entity profile that produced the table.
	Profile string
	// Schema is the output column order.
	Schema models.Schema
	// Table holds the canonical rows in Schema order.
	Table *models.Table
	// Stats summarizes row counts.
	Stats Stats
}

// Normalizer transforms merged source tables into canonical tables for one profile.
type Normalizer struct {
	profile Profile
	schema  models.Schema
	opts    Options
	log     zerolog.Logger
}

// NewNormalizer resolves the output schema for profile against the template
// schema. It fails with a ColumnMissingError when the profile references a
// column the schema lacks.
func NewNormalizer(template models.Schema, profile Profile, opts Options) (*Normalizer, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	schema, err := profile.ResolveSchema(template)
	if err != nil {
		return nil, err
	}
	return &Normalizer{
		profile: profile,
		schema:  schema,
		opts:    opts,
		log:     opts.Logger.With().Str("profile", profile.ID).Logger(),
	}, nil
}

// Schema returns the resolved output schema.
func (n *Normalizer) Schema() models.Schema {
	return n.schema
}

// Normalize runs the pipeline over src. The input table is not modified.
func (n *Normalizer) Normalize(src *models.Table) (*Result, error) {
	p := n.profile
	stats := Stats{InputRows: src.Len()}

	table := src
	if p.Melt != nil {
		table = melt(src, *p.Melt)
		n.log.Debug().Int("rows", table.Len()).Strs("value_columns", p.Melt.ValueColumns).Msg("melted")
	}
	stats.ReshapedRows = table.Len()

	out := mapColumns(table, n.schema, p.Mappings)

	if p.Dates != nil {
		invalid := normalizeDates(out, *p.Dates, n.opts.DateLayouts)
		n.log.Debug().Int("unparsed", invalid).Str("column", p.Dates.Column).Msg("dates normalized")
	}

	pick := chooser(n.opts)
	for _, rule := range p.Defaults {
		filled := fillDefaults(out, rule, pick)
		if filled > 0 {
			n.log.Debug().Int("cells", filled).Str("column", rule.Column).Msg("defaults filled")
		}
	}

	for _, rule := range p.Derived {
		derive(out, rule)
	}

	if p.Category != nil {
		normalizeCategory(out, *p.Category)
	}

	for _, f := range p.Filters {
		dropped := filterRows(out, f)
		stats.Dropped = append(stats.Dropped, FilterStat{Column: f.Column, Drop: f.Drop, Rows: dropped})
		n.log.Debug().Int("dropped", dropped).Str("column", f.Column).Str("drop", string(f.Drop)).Msg("rows filtered")
	}

	stats.OutputRows = out.Len()
	n.log.Debug().Int("input", stats.InputRows).Int("output", stats.OutputRows).Msg("normalized")

	return &Result{
		Profile: p.ID,
		Schema:  n.schema,
		Table:   out,
		Stats:   stats,
	}, nil
}

// Normalize transforms a merged source table into a canonical table for profile.
func Normalize(src *models.Table, template models.Schema, profile Profile, opts Options) (*Result, error) {
	n, err := NewNormalizer(template, profile, opts)
	if err != nil {
		return nil, err
	}
	return n.Normalize(src)
}
