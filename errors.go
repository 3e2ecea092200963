package webrenk

import "fmt"

// ErrorKind names a category of conversion failure.
type ErrorKind string

const (
	// UnsupportedSpecification reports a Specification outside the fixed
	// set of four.
	UnsupportedSpecification ErrorKind = "UnsupportedSpecification"
	// UnknownColorName reports a name absent from a specification's table.
	UnknownColorName ErrorKind = "UnknownColorName"
	// UnknownColorValue reports a hex value with no name in a
	// specification's reverse table.
	UnknownColorValue ErrorKind = "UnknownColorValue"
	// MalformedHexValue reports a string that is not "#" followed by
	// exactly 3 or 6 hex digits.
	MalformedHexValue ErrorKind = "MalformedHexValue"
	// MalformedPercentValue reports a percentage string that cannot be
	// parsed.
	MalformedPercentValue ErrorKind = "MalformedPercentValue"
	// InvalidSimpleColor reports a string that is not exactly "#" plus
	// six ASCII hex digits.
	InvalidSimpleColor ErrorKind = "InvalidSimpleColor"
	// InvalidLegacyColor reports the two inputs the legacy color parser
	// rejects: the empty string and "transparent".
	InvalidLegacyColor ErrorKind = "InvalidLegacyColor"
)

// ColorError is the error type returned by every fallible operation in
// this package. Callers distinguish failures by Kind.
type ColorError struct {
	Kind    ErrorKind
	Message string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func colorErrorf(kind ErrorKind, format string, args ...any) *ColorError {
	return &ColorError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
