package command

import (
	"io"
	"os"
	"sort"
)

// Value is one coerced flag value. Only the field matching Kind is set.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// Invocation is the typed result of matching process input against the
// schema: the selected command plus its coerced flag values. Commands write
// their output to Stdout/Stderr so tests can capture it.
type Invocation struct {
	Command string
	Stdout  io.Writer
	Stderr  io.Writer

	values map[string][]Value
}

// NewInvocation creates an empty invocation for the named command.
// Stdout/Stderr default to the process streams.
func NewInvocation(name string) *Invocation {
	return &Invocation{
		Command: name,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		values:  make(map[string][]Value),
	}
}

// Set stores a single-valued flag, replacing any earlier occurrence.
// The last occurrence on the command line wins.
func (inv *Invocation) Set(name string, v Value) {
	inv.values[name] = []Value{v}
}

// Append accumulates a repeatable flag value, preserving input order.
func (inv *Invocation) Append(name string, v Value) {
	inv.values[name] = append(inv.values[name], v)
}

// Has reports whether the flag was provided at least once.
func (inv *Invocation) Has(name string) bool {
	return len(inv.values[name]) > 0
}

// FlagNames returns the names of all provided flags, sorted.
func (inv *Invocation) FlagNames() []string {
	names := make([]string, 0, len(inv.values))
	for name := range inv.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the value of a string flag, or defaultVal if not provided.
func (inv *Invocation) String(name, defaultVal string) string {
	if vs := inv.values[name]; len(vs) > 0 {
		return vs[len(vs)-1].Str
	}
	return defaultVal
}

// Int returns the value of an integer flag, or defaultVal if not provided.
func (inv *Invocation) Int(name string, defaultVal int64) int64 {
	if vs := inv.values[name]; len(vs) > 0 {
		return vs[len(vs)-1].Int
	}
	return defaultVal
}

// Float returns the value of a float flag, or defaultVal if not provided.
func (inv *Invocation) Float(name string, defaultVal float64) float64 {
	if vs := inv.values[name]; len(vs) > 0 {
		return vs[len(vs)-1].Float
	}
	return defaultVal
}

// Bool reports whether a boolean flag is set. Absence means false.
func (inv *Invocation) Bool(name string) bool {
	if vs := inv.values[name]; len(vs) > 0 {
		return vs[len(vs)-1].Bool
	}
	return false
}

// Strings returns all values of a repeatable string flag in input order.
// An absent flag yields an empty slice, not nil semantics callers need to
// special-case.
func (inv *Invocation) Strings(name string) []string {
	vs := inv.values[name]
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Str)
	}
	return out
}

// Ints returns all values of a repeatable integer flag in input order.
func (inv *Invocation) Ints(name string) []int64 {
	vs := inv.values[name]
	out := make([]int64, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Int)
	}
	return out
}
