package scope1

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/scope1fuel-go/pkg/scope1/models"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/parser"
)

// DefaultTemplateSheet is the template sheet holding the fuel column layout.
const DefaultTemplateSheet = "Fuel Type"

// Job describes one conversion from files on disk.
type Job struct {
	// Entity selects the profile.
	Entity string
	// InputPath is the client workbook.
	InputPath string
	// TemplatePath is the reference workbook holding the output layout.
	TemplatePath string
	// TemplateSheet is the template sheet name. Defaults to DefaultTemplateSheet.
	TemplateSheet string
	// Registry resolves Entity. If nil, DefaultRegistry is used.
	Registry *Registry
}

// Run converts the job's input workbook into a canonical table.
func Run(job Job, opts Options) (*Result, error) {
	registry := job.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	profile, err := registry.Lookup(job.Entity)
	if err != nil {
		return nil, err
	}

	schema, err := LoadSchema(job.TemplatePath, job.TemplateSheet)
	if err != nil {
		return nil, err
	}

	wb, err := OpenWorkbook(job.InputPath)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	opts.Logger.Debug().Str("entity", profile.ID).Str("input", job.InputPath).
		Int("template_columns", len(schema.Columns)).Msg("converting")

	return Convert(wb, schema, profile, opts)
}

// Convert merges the profile's sheets from src and normalizes them.
// Configuration problems are reported before any sheet is read.
func Convert(src SheetSource, template models.Schema, profile Profile, opts Options) (*Result, error) {
	n, err := NewNormalizer(template, profile, opts)
	if err != nil {
		return nil, err
	}
	merged, err := Merge(src, profile.Sheets)
	if err != nil {
		return nil, err
	}
	return n.Normalize(merged)
}

// ConvertReader converts an uploaded workbook stream.
func ConvertReader(r io.Reader, name string, template models.Schema, profile Profile, opts Options) (*Result, error) {
	wb, err := parser.OpenReader(r, name)
	if err != nil {
		return nil, NewIOError("open", name, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer wb.Close()
	return Convert(wb, template, profile, opts)
}

// OpenWorkbook opens a workbook from disk.
func OpenWorkbook(path string) (*parser.Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewIOError("open", path, ErrFileNotFound)
		}
		return nil, NewIOError("open", path, err)
	}
	wb, err := parser.Open(path)
	if err != nil {
		return nil, NewIOError("open", path, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return wb, nil
}

// LoadSchema reads the output column layout from a template workbook.
func LoadSchema(path, sheet string) (models.Schema, error) {
	if sheet == "" {
		sheet = DefaultTemplateSheet
	}
	wb, err := OpenWorkbook(path)
	if err != nil {
		return models.Schema{}, err
	}
	defer wb.Close()
	return ReadSchema(wb, sheet)
}

// SchemaSource is a workbook whose header rows can be read as schemas.
type SchemaSource interface {
	SheetNames() []string
	ReadSchema(sheet string) (models.Schema, error)
}

// ReadSchema reads the output column layout from an open template workbook.
func ReadSchema(src SchemaSource, sheet string) (models.Schema, error) {
	names := src.SheetNames()
	found := false
	for _, n := range names {
		if n == sheet {
			found = true
			break
		}
	}
	if !found {
		return models.Schema{}, &SheetNotFoundError{Sheet: sheet, Available: names}
	}
	schema, err := src.ReadSchema(sheet)
	if err != nil {
		return models.Schema{}, fmt.Errorf("read template sheet %q: %w", sheet, err)
	}
	return schema, nil
}
