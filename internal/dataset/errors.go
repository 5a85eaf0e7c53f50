package dataset

import (
	"errors"
	"fmt"
)

// ErrLoad matches every error returned by Load.
var ErrLoad = errors.New("load study guide")

// MissingColumnError is returned when a required column is absent from the header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column: %s", e.Column)
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrLoad }

// MissingFieldError is returned when a required field is empty in a row.
type MissingFieldError struct {
	Row   int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("row %d: missing %s value", e.Row, e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrLoad }

// InvalidValueError is returned when a field holds a value outside its domain.
type InvalidValueError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("row %d: invalid %s %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *InvalidValueError) Is(target error) bool { return target == ErrLoad }

func (e *InvalidValueError) Unwrap() error { return e.Err }

// RowError wraps a CSV syntax error. Row 0 is the header.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("read header: %v", e.Err)
	}
	return fmt.Sprintf("row %d: read record: %v", e.Row, e.Err)
}

func (e *RowError) Is(target error) bool { return target == ErrLoad }

func (e *RowError) Unwrap() error { return e.Err }
