package history

import (
	"errors"
	"fmt"
)

var (
	// ErrDatabaseOpen reports a path that is missing, unreadable or not a
	// SQLite database.
	ErrDatabaseOpen = errors.New("cannot open history database")

	// ErrSchema reports a database lacking an expected table or column.
	ErrSchema = errors.New("unexpected history schema")

	// ErrConversion reports a timestamp cell that does not hold an integer.
	ErrConversion = errors.New("invalid timestamp value")
)

// OpenError wraps the underlying failure to open path.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDatabaseOpen, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

func (e *OpenError) Is(target error) bool { return target == ErrDatabaseOpen }

// SchemaError names the missing table or column. Table is empty when the
// column is missing from a result set rather than from a known table.
type SchemaError struct {
	Table  string
	Column string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Column == "":
		return fmt.Sprintf("%s: missing table %q", ErrSchema, e.Table)
	case e.Table == "":
		return fmt.Sprintf("%s: missing column %q", ErrSchema, e.Column)
	default:
		return fmt.Sprintf("%s: missing column %q in table %q", ErrSchema, e.Column, e.Table)
	}
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// ConversionError locates a malformed timestamp cell.
type ConversionError struct {
	Column string
	Row    int
	Value  any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: column %q row %d: %v (%T)", ErrConversion, e.Column, e.Row, e.Value, e.Value)
}

func (e *ConversionError) Is(target error) bool { return target == ErrConversion }
