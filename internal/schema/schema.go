// Package schema aggregates the valid registry entries into one top-level
// parsing surface: a command selector plus one isolated flag scope per
// command.
package schema

import (
	"fmt"
	"sort"

	"github.com/manage-tools/cli/internal/command"
	"github.com/manage-tools/cli/internal/registry"
)

// scope is one command's isolated flag table. Two commands may declare the
// same flag name with different specs without interfering.
type scope struct {
	name        string
	description string
	flags       map[string]command.ArgSpec // keyed by normalized flag name
	order       []string                   // declaration order, for help output
}

// Schema is the aggregated parse definition derived from all valid
// descriptors. It is immutable after Build.
type Schema struct {
	scopes map[string]*scope
}

// Build creates a Schema from the registry's valid entries. Individually
// malformed descriptors cannot reach this point; they were excluded during
// discovery. A flag-name collision inside a single command, however, is an
// authoring bug and fails the build loudly.
func Build(reg *registry.Registry) (*Schema, error) {
	s := &Schema{scopes: make(map[string]*scope)}

	for name, cmd := range reg.Commands() {
		sc := &scope{
			name:        name,
			description: cmd.Description(),
			flags:       make(map[string]command.ArgSpec),
		}

		for _, spec := range cmd.Arguments() {
			key := spec.Name()
			if _, dup := sc.flags[key]; dup {
				return nil, fmt.Errorf("command %q declares flag %s more than once", name, spec.Flag)
			}
			sc.flags[key] = spec
			sc.order = append(sc.order, key)
		}

		s.scopes[name] = sc
	}

	return s, nil
}

// Commands returns the selectable command names, sorted.
func (s *Schema) Commands() []string {
	names := make([]string, 0, len(s.scopes))
	for name := range s.scopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is a selectable command.
func (s *Schema) Has(name string) bool {
	_, ok := s.scopes[name]
	return ok
}
