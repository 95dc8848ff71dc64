package usage

import "fmt"

// Internal is returned for invariant violations that should never happen,
// such as a successfully parsed command missing from the registry. It marks
// a runner bug, not a user error.
func Internal(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrInternal,
		Message: "manage: internal error: " + fmt.Sprintf(format, args...),
	}
}
