package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrMissingCommand
	ErrUnknownCommand
	ErrMissingFlag
	ErrInvalidFlag
	ErrMissingValue
	ErrInvalidValue
	ErrUnexpectedArgument
	ErrInternal
)

// Exit codes:
//
//	Exit 1: Runner/system errors
//	  - Unknown errors
//	  - Internal invariant violations
//
//	Exit 2: User input errors
//	  - Missing command
//	  - Unknown command
//	  - Missing required flag
//	  - Invalid flag
//	  - Missing or invalid flag value
//	  - Unexpected positional argument
var exitCodes = map[ErrorKind]int{
	ErrUnknown:            1,
	ErrMissingCommand:     2,
	ErrUnknownCommand:     2,
	ErrMissingFlag:        2,
	ErrInvalidFlag:        2,
	ErrMissingValue:       2,
	ErrInvalidValue:       2,
	ErrUnexpectedArgument: 2,
	ErrInternal:           1,
}

// Error represents a user-facing usage error with semantic type information.
// Parse failures never invoke a command; the dispatcher writes the message to
// stderr and exits with the kind's code.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
func (e *Error) GetExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
