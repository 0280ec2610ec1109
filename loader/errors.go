package loader

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrMissingColumn       = errors.New("missing required column")
	ErrEmptyFile           = errors.New("file has no header")
	ErrMalformedRow        = errors.New("malformed row")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidBirthYear    = errors.New("invalid birth year")
	ErrMissingValue        = errors.New("missing value")
)

// LoadError error found while loading a trips file. Any LoadError aborts the load
// + Source: file or name of the data being loaded
// + Line: line of the file where the error was found, 0 if it's not related to a line
// + Column: column where the error was found, empty if it's not related to a column
type LoadError struct {
	Source string
	Line   int
	Column string
	Err    error
}

func (le *LoadError) Error() string {
	message := fmt.Sprintf("error loading %s", le.Source)
	if le.Line > 0 {
		message += fmt.Sprintf(" at line %d", le.Line)
	}
	if le.Column != "" {
		message += fmt.Sprintf(" column %q", le.Column)
	}
	return fmt.Sprintf("%s: %s", message, le.Err.Error())
}

func (le *LoadError) Unwrap() error {
	return le.Err
}
