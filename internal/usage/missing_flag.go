package usage

import "fmt"

// MissingFlag is returned when a required flag is not provided. The message
// deliberately contains the flag token and the word "required"; callers and
// scripts match on it.
func MissingFlag(flag string) *Error {
	return &Error{
		Kind:    ErrMissingFlag,
		Message: fmt.Sprintf("manage: %s is required", flag),
	}
}
