package usage

import "fmt"

// InvalidValue is returned when a flag value cannot be coerced to the
// declared type.
func InvalidValue(flag, raw, kind string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("manage: invalid value '%s' for %s (expected %s)", raw, flag, kind),
	}
}

// MissingValue is returned when a non-boolean flag is the last token or is
// followed by another flag instead of a value.
func MissingValue(flag string) *Error {
	return &Error{
		Kind:    ErrMissingValue,
		Message: fmt.Sprintf("manage: %s requires a value", flag),
	}
}
