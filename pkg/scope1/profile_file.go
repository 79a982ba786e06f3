package scope1

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
	"gopkg.in/yaml.v3"
)

// profileFile is the on-disk form of a set of profiles.
type profileFile struct {
	Profiles []profileDoc `toml:"profiles" yaml:"profiles"`
}

type profileDoc struct {
	ID          string       `toml:"id" yaml:"id"`
	Description string       `toml:"description" yaml:"description"`
	Sheets      []string     `toml:"sheets" yaml:"sheets"`
	Melt        *meltDoc     `toml:"melt" yaml:"melt"`
	Extend      []anchorDoc  `toml:"extend" yaml:"extend"`
	Mappings    []mappingDoc `toml:"mappings" yaml:"mappings"`
	Dates       *datesDoc    `toml:"dates" yaml:"dates"`
	Defaults    []defaultDoc `toml:"defaults" yaml:"defaults"`
	Derived     []derivedDoc `toml:"derived" yaml:"derived"`
	Category    *categoryDoc `toml:"category" yaml:"category"`
	Filters     []filterDoc  `toml:"filters" yaml:"filters"`
}

type meltDoc struct {
	IDColumns    []string `toml:"id_columns" yaml:"id_columns"`
	ValueColumns []string `toml:"value_columns" yaml:"value_columns"`
	VarName      string   `toml:"var_name" yaml:"var_name"`
	ValueName    string   `toml:"value_name" yaml:"value_name"`
}

type anchorDoc struct {
	Column string `toml:"column" yaml:"column"`
	After  string `toml:"after" yaml:"after"`
}

type mappingDoc struct {
	Source string `toml:"source" yaml:"source"`
	Target string `toml:"target" yaml:"target"`
}

type datesDoc struct {
	Column string   `toml:"column" yaml:"column"`
	Split  []string `toml:"split" yaml:"split"`
}

type defaultDoc struct {
	Column  string        `toml:"column" yaml:"column"`
	Choices []interface{} `toml:"choices" yaml:"choices"`
}

type derivedDoc struct {
	Column string      `toml:"column" yaml:"column"`
	From   string      `toml:"from" yaml:"from"`
	Value  interface{} `toml:"value" yaml:"value"`
}

type categoryDoc struct {
	Column  string            `toml:"column" yaml:"column"`
	Replace map[string]string `toml:"replace" yaml:"replace"`
}

type filterDoc struct {
	Column string `toml:"column" yaml:"column"`
	Drop   string `toml:"drop" yaml:"drop"`
}

// LoadProfiles reads profiles from a .toml, .yaml or .yml file.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewIOError("read", path, err)
	}
	return ParseProfiles(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}

// ParseProfiles decodes profiles in the given format ("toml", "yaml" or "yml")
// and validates each of them.
func ParseProfiles(data []byte, format string) ([]Profile, error) {
	var doc profileFile
	switch format {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, &ProfileError{Err: fmt.Errorf("decode toml: %w", err)}
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, &ProfileError{Err: fmt.Errorf("decode yaml: %w", err)}
		}
	default:
		return nil, &ProfileError{Err: fmt.Errorf("unsupported profile format %q", format)}
	}

	profiles := make([]Profile, 0, len(doc.Profiles))
	for _, d := range doc.Profiles {
		p, err := d.profile()
		if err != nil {
			return nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (d profileDoc) profile() (Profile, error) {
	p := Profile{
		ID:          d.ID,
		Description: d.Description,
		Sheets:      d.Sheets,
	}

	if d.Melt != nil {
		p.Melt = &MeltSpec{
			IDColumns:    d.Melt.IDColumns,
			ValueColumns: d.Melt.ValueColumns,
			VarName:      d.Melt.VarName,
			ValueName:    d.Melt.ValueName,
		}
	}
	for _, a := range d.Extend {
		p.Extend = append(p.Extend, ColumnAnchor{Column: a.Column, After: a.After})
	}
	for _, m := range d.Mappings {
		p.Mappings = append(p.Mappings, ColumnMapping{Source: m.Source, Target: m.Target})
	}
	if d.Dates != nil {
		p.Dates = &DateSpec{Column: d.Dates.Column, Split: d.Dates.Split}
	}
	for _, def := range d.Defaults {
		rule := DefaultRule{Column: def.Column}
		for _, c := range def.Choices {
			v, ok := models.FromInterface(c)
			if !ok {
				return Profile{}, &ProfileError{Profile: d.ID, Err: fmt.Errorf("default for %q: unsupported choice %v", def.Column, c)}
			}
			rule.Choices = append(rule.Choices, v)
		}
		p.Defaults = append(p.Defaults, rule)
	}
	for _, der := range d.Derived {
		v, ok := models.FromInterface(der.Value)
		if !ok {
			return Profile{}, &ProfileError{Profile: d.ID, Err: fmt.Errorf("derived %q: unsupported value %v", der.Column, der.Value)}
		}
		p.Derived = append(p.Derived, DerivedRule{Column: der.Column, From: der.From, Value: v})
	}
	if d.Category != nil {
		p.Category = &CategorySpec{Column: d.Category.Column, Replace: d.Category.Replace}
	}
	for _, f := range d.Filters {
		p.Filters = append(p.Filters, RowFilter{Column: f.Column, Drop: Drop(f.Drop)})
	}
	return p, nil
}
