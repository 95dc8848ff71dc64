package commands

import (
	"fmt"

	"github.com/manage-tools/cli/internal/command"
)

// HelloUser greets the user named by the required --name flag.
type HelloUser struct{}

func (HelloUser) Description() string {
	return "Prints a greeting for the named user"
}

func (HelloUser) Arguments() []command.ArgSpec {
	return []command.ArgSpec{
		{
			Flag:        "--name",
			Help:        "The name of the user",
			Placeholder: "John",
			Kind:        command.KindString,
			Required:    true,
		},
	}
}

func (HelloUser) Call(inv *command.Invocation) error {
	fmt.Fprintf(inv.Stdout, "Hello %s!\n", inv.String("name", ""))
	return nil
}
