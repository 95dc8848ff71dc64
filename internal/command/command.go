// Package command defines the contract a runnable command must satisfy and
// the typed invocation it receives.
package command

import (
	"fmt"
	"strings"
)

// Command is the capability set every discoverable command must expose.
// A loaded unit whose value does not implement this interface is excluded
// from the registry during discovery.
type Command interface {
	// Description is a one-line summary shown in help output.
	Description() string

	// Arguments declares the command's flag specifications.
	Arguments() []ArgSpec

	// Call runs the command with parsed, typed arguments. Output must go
	// to inv.Stdout / inv.Stderr. A returned error is reported by the
	// dispatcher and surfaces as a non-zero exit.
	Call(inv *Invocation) error
}

// ValueKind is the coercion type of a flag value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// ArgSpec describes one flag of a command. Flag names must be unique within
// a single command; two commands may freely declare the same flag name since
// every command gets an isolated scope.
type ArgSpec struct {
	Flag        string    // flag token including dashes, e.g. "--name"
	Help        string    // shown in help output
	Placeholder string    // example value shown in help, e.g. "John"
	Kind        ValueKind // coercion type
	Required    bool
	Multiple    bool // repeated occurrences accumulate in input order
}

// Name returns the flag name with leading dashes stripped. This is the key
// under which the parsed value is stored in an Invocation.
func (s ArgSpec) Name() string {
	return strings.TrimLeft(s.Flag, "-")
}

// Validate checks that the spec is well-formed. A command exposing a
// malformed spec fails the contract and is excluded at discovery time.
func (s ArgSpec) Validate() error {
	if !strings.HasPrefix(s.Flag, "--") || len(s.Flag) <= 2 {
		return fmt.Errorf("flag %q must have the form --name", s.Flag)
	}
	if strings.ContainsAny(s.Flag[2:], "= \t") {
		return fmt.Errorf("flag %q contains invalid characters", s.Flag)
	}
	if s.Kind < KindString || s.Kind > KindBool {
		return fmt.Errorf("flag %q has unknown value kind %d", s.Flag, s.Kind)
	}
	return nil
}
