package schema

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/manage-tools/cli/internal/command"
	"github.com/manage-tools/cli/internal/ui/style"
)

// Help renders the top-level help listing. Only valid, non-excluded commands
// appear here; that is a hard contract with the surrounding CLI surface.
func (s *Schema) Help() string {
	var out bytes.Buffer

	out.WriteString("manage - runs management commands\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(style.Info("manage") + " " + style.Muted("<command> [flags]"))
	out.WriteString("\n\n")

	out.WriteString("COMMANDS\n")
	for _, name := range s.Commands() {
		sc := s.scopes[name]
		fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-28s", name)), sc.description)
	}
	out.WriteString("\n")

	out.WriteString("See 'manage help <command>' for detailed help on a specific command.\n")

	return out.String()
}

// CommandHelp renders detailed help for one command's scope.
func (s *Schema) CommandHelp(name string) (string, bool) {
	sc, ok := s.scopes[name]
	if !ok {
		return "", false
	}

	var out bytes.Buffer

	out.WriteString("manage " + sc.name)
	if sc.description != "" {
		out.WriteString(" - ")
		out.WriteString(sc.description)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	usageLine := "manage " + sc.name
	if len(sc.order) > 0 {
		usageLine += " [flags]"
	}
	out.WriteString(style.Info(usageLine))
	out.WriteString("\n\n")

	if len(sc.order) > 0 {
		out.WriteString("FLAGS\n")
		for _, key := range sc.order {
			spec := sc.flags[key]

			display := spec.Flag
			if hint := valueHint(spec); hint != "" {
				display += " " + hint
			}

			help := spec.Help
			var marks []string
			if spec.Required {
				marks = append(marks, "required")
			}
			if spec.Multiple {
				marks = append(marks, "repeatable")
			}
			if len(marks) > 0 {
				help = strings.TrimSpace(help + " (" + strings.Join(marks, ", ") + ")")
			}

			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", display)), help)
		}
		out.WriteString("\n")
	}

	out.WriteString("See 'manage help' for the list of commands.\n")

	return out.String(), true
}

// valueHint returns the placeholder shown next to the flag in help output.
// Boolean flags take no value, so they get no hint.
func valueHint(spec command.ArgSpec) string {
	if spec.Kind == command.KindBool {
		return ""
	}
	if spec.Placeholder != "" {
		return spec.Placeholder
	}
	return "<" + spec.Kind.String() + ">"
}
