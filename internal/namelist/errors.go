package namelist

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrFileNotFound indicates a namelist file that does not exist.
	ErrFileNotFound = fmt.Errorf("namelist: file not found: %w", os.ErrNotExist)

	// ErrRead indicates the input could not be read to completion.
	ErrRead = errors.New("namelist: read failed")

	// ErrRepeatTooLarge indicates an N*value repeat with N above MaxRepeat.
	ErrRepeatTooLarge = errors.New("namelist: repeat count too large")
)

// LineError describes a logical line that could not be fully interpreted.
// The reader never returns it; it is attached to debug log entries.
type LineError struct {
	Line    int
	Text    string
	Wrapped error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Wrapped)
}

func (e *LineError) Unwrap() error {
	return e.Wrapped
}

// errNoAssignment marks a line that is neither a block delimiter nor a
// name=value assignment.
var errNoAssignment = errors.New("namelist: missing '=' in assignment")
