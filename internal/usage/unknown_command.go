package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when the selected command name does not match
// any discovered command. Suggestions, if any, are appended to the message.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("manage: '%s' is not a manage command. See 'manage help'.", command)
	if len(suggestions) > 0 {
		var b strings.Builder
		b.WriteString(msg)
		b.WriteString("\n\nDid you mean?\n")
		for _, s := range suggestions {
			b.WriteString("   ")
			b.WriteString(s)
			b.WriteString("\n")
		}
		msg = strings.TrimRight(b.String(), "\n")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// MissingCommand is returned when no command name was provided at all.
func MissingCommand() *Error {
	return &Error{
		Kind:    ErrMissingCommand,
		Message: "manage: a command is required. See 'manage help'.",
	}
}
