package commands

import (
	"fmt"

	"github.com/manage-tools/cli/internal/command"
)

// Version prints the runner version set at build time.
type Version struct {
	Version string
}

func (Version) Description() string {
	return "Show manage version"
}

func (Version) Arguments() []command.ArgSpec {
	return nil
}

func (v Version) Call(inv *command.Invocation) error {
	fmt.Fprintf(inv.Stdout, "manage version %s\n", v.Version)
	return nil
}
