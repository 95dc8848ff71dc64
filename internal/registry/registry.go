// Package registry discovers candidate commands from a source, validates
// them against the command contract, and caches the resulting name to
// command mapping for the process lifetime.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/manage-tools/cli/internal/command"
	"github.com/manage-tools/cli/internal/log"
)

// Unit is one discoverable candidate. Load returns whatever the unit
// exposes; the registry decides whether it satisfies the command contract.
type Unit interface {
	Name() string
	Load() (any, error)
}

// Source enumerates candidate units without the registry knowing them ahead
// of time. A source with zero units is valid.
type Source interface {
	Units() []Unit
}

// Failure records why a discovered unit was excluded from the registry.
// Exclusions are operator-facing only; end users never see them.
type Failure struct {
	Name   string
	Reason string
}

// reservedNames are runner-owned top-level tokens a command may not claim.
var reservedNames = map[string]bool{
	"help": true,
}

// Registry owns the discovered commands for one runner instance. Discovery
// runs at most once, on first access; the mapping is immutable afterward.
// Re-discovery requires a new Registry.
type Registry struct {
	source Source

	once     sync.Once
	commands map[string]command.Command
	failures []Failure
}

// New creates a Registry over the given source. No discovery happens until
// the first access.
func New(source Source) *Registry {
	return &Registry{source: source}
}

// Commands returns the validated name to command mapping. Callers must not
// mutate it. Iteration order is not guaranteed.
func (r *Registry) Commands() map[string]command.Command {
	r.once.Do(r.discover)
	return r.commands
}

// Failures returns the units excluded during discovery with their reasons.
func (r *Registry) Failures() []Failure {
	r.once.Do(r.discover)
	return r.failures
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (command.Command, bool) {
	r.once.Do(r.discover)
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the valid command names, sorted.
func (r *Registry) Names() []string {
	r.once.Do(r.discover)
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// discover loads and validates every unit. One bad unit never aborts
// discovery; it is excluded with a logged reason and the rest proceed.
func (r *Registry) discover() {
	r.commands = make(map[string]command.Command)

	for _, unit := range r.source.Units() {
		name := unit.Name()

		cmd, err := validate(r.commands, name, unit)
		if err != nil {
			r.exclude(name, err.Error())
			continue
		}

		r.commands[name] = cmd
	}

	log.Debug("registry: discovered %d commands, excluded %d", len(r.commands), len(r.failures))
}

func (r *Registry) exclude(name, reason string) {
	r.failures = append(r.failures, Failure{Name: name, Reason: reason})
	log.Warn("registry: excluding command %q: %s", name, reason)
}

// validate loads one unit and checks the full command contract.
func validate(existing map[string]command.Command, name string, unit Unit) (command.Command, error) {
	if name == "" {
		return nil, fmt.Errorf("unit has an empty name")
	}
	if reservedNames[name] {
		return nil, fmt.Errorf("name %q is reserved by the runner", name)
	}
	if _, dup := existing[name]; dup {
		return nil, fmt.Errorf("name %q is already registered", name)
	}

	loaded, err := unit.Load()
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	if loaded == nil {
		return nil, fmt.Errorf("unit loaded a nil value")
	}

	// The contract check. A same-shaped but unrelated type fails here.
	cmd, ok := loaded.(command.Command)
	if !ok {
		return nil, fmt.Errorf("type %T does not satisfy the command contract", loaded)
	}

	for _, spec := range cmd.Arguments() {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid argument spec: %w", err)
		}
	}

	return cmd, nil
}
