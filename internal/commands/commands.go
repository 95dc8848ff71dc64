// Package commands holds the built-in commands and their registration table.
package commands

import (
	"github.com/manage-tools/cli/internal/registry"
	"github.com/manage-tools/cli/internal/store"
)

// Builtins returns the explicit registration table of built-in commands.
// st may be nil when history is disabled; the history command degrades
// gracefully.
func Builtins(st *store.Store, version string) *registry.Table {
	t := registry.NewTable()

	t.AddCommand("hello_world", HelloWorld{})
	t.AddCommand("hello_user", HelloUser{})
	t.AddCommand("version", Version{Version: version})
	t.AddCommand("history", History{Store: st})

	return t
}
