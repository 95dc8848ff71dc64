package usage

import "fmt"

// InvalidFlag is returned when a flag is not declared by the selected
// command's scope.
func InvalidFlag(flag, command string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("manage: unknown flag '%s' for command '%s'", flag, command),
	}
}

// UnexpectedArgument is returned for a positional token where a flag was
// expected. Commands take flags only.
func UnexpectedArgument(token, command string) *Error {
	return &Error{
		Kind:    ErrUnexpectedArgument,
		Message: fmt.Sprintf("manage: unexpected argument '%s' for command '%s'", token, command),
	}
}
