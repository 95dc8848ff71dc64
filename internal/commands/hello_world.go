package commands

import (
	"fmt"

	"github.com/manage-tools/cli/internal/command"
)

// HelloWorld is the no-argument sanity check command.
type HelloWorld struct{}

func (HelloWorld) Description() string {
	return "Prints Hello world!"
}

func (HelloWorld) Arguments() []command.ArgSpec {
	return nil
}

func (HelloWorld) Call(inv *command.Invocation) error {
	fmt.Fprintln(inv.Stdout, "Hello world!")
	return nil
}
