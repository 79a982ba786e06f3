package scope1

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration is matched by every error caused by a profile, template
// or sheet selection that does not fit the input. These abort the run.
var ErrConfiguration = errors.New("configuration error")

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates an input file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// SheetNotFoundError reports a requested merge source sheet that is absent
// from the workbook.
type SheetNotFoundError struct {
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found (available: %s)", e.Sheet, strings.Join(e.Available, ", "))
}

// Is makes SheetNotFoundError match ErrConfiguration.
func (e *SheetNotFoundError) Is(target error) bool {
	return target == ErrConfiguration
}

// ColumnMissingError reports a profile reference to a column that the
// template schema does not contain.
type ColumnMissingError struct {
	Profile string
	Column  string
	Role    string // "mapping", "default", "derived", "date", "category", "filter", "extend"
}

func (e *ColumnMissingError) Error() string {
	return fmt.Sprintf("profile %q: %s column %q is not in the template schema", e.Profile, e.Role, e.Column)
}

// Is makes ColumnMissingError match ErrConfiguration.
func (e *ColumnMissingError) Is(target error) bool {
	return target == ErrConfiguration
}

// UnknownEntityError reports an entity id with no registered profile.
type UnknownEntityError struct {
	Entity    string
	Supported []string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown entity %q (supported: %s)", e.Entity, strings.Join(e.Supported, ", "))
}

// Is makes UnknownEntityError match ErrConfiguration.
func (e *UnknownEntityError) Is(target error) bool {
	return target == ErrConfiguration
}

// ProfileError reports an invalid profile definition.
type ProfileError struct {
	Profile string
	Err     error
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("invalid profile %q: %v", e.Profile, e.Err)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

// Is makes ProfileError match ErrConfiguration.
func (e *ProfileError) Is(target error) bool {
	return target == ErrConfiguration
}

// IOError represents a failure reading or writing a workbook.
type IOError struct {
	Op   string // "open", "read", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
