package param

import "errors"

var (
	// ErrNotFound indicates a parameter that was not read.
	ErrNotFound = errors.New("param: parameter not found")

	// ErrNotNumeric indicates a parameter that is not an int or float.
	ErrNotNumeric = errors.New("param: parameter is not numeric")

	// ErrMissingUnitBase indicates a unit could not be derived because one
	// of its base parameters is absent.
	ErrMissingUnitBase = errors.New("param: missing unit base")

	// ErrConverterUnavailable is returned when a non-mapping read is
	// requested; it relied on an external namelist converter.
	ErrConverterUnavailable = errors.New("param: external namelist converter not supported")
)
