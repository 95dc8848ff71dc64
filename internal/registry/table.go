package registry

import "github.com/manage-tools/cli/internal/command"

// Table is an explicit, build-time-linked registration table implementing
// Source. Entries keep registration order; the registry itself makes no
// ordering promise.
type Table struct {
	units []Unit
}

// NewTable creates an empty registration table.
func NewTable() *Table {
	return &Table{}
}

// Add registers a named unit with a deferred loader. The loader runs once,
// during discovery.
func (t *Table) Add(name string, load func() (any, error)) *Table {
	t.units = append(t.units, tableUnit{name: name, load: load})
	return t
}

// AddCommand registers an already-constructed command under name.
func (t *Table) AddCommand(name string, cmd command.Command) *Table {
	return t.Add(name, func() (any, error) { return cmd, nil })
}

// Units implements Source.
func (t *Table) Units() []Unit {
	return t.units
}

type tableUnit struct {
	name string
	load func() (any, error)
}

func (u tableUnit) Name() string { return u.name }

func (u tableUnit) Load() (any, error) { return u.load() }
