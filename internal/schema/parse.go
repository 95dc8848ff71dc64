package schema

import (
	"strconv"
	"strings"

	"github.com/manage-tools/cli/internal/command"
	"github.com/manage-tools/cli/internal/usage"
)

const maxSuggestions = 3

// Parse matches raw process arguments against the schema and produces a
// typed invocation. The first token selects the command; the rest are that
// command's flags in either `--flag value` or `--flag=value` form.
//
// Boolean flags are presence-only: `--verbose` sets true and never consumes
// a following token. An explicit value is still possible with
// `--verbose=false`.
func (s *Schema) Parse(argv []string) (*command.Invocation, error) {
	if len(argv) == 0 {
		return nil, usage.MissingCommand()
	}

	selector := argv[0]
	sc, ok := s.scopes[selector]
	if !ok {
		return nil, usage.UnknownCommand(selector, Similar(selector, s.Commands(), maxSuggestions)...)
	}

	inv := command.NewInvocation(sc.name)

	tokens := argv[1:]
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if !strings.HasPrefix(tok, "--") {
			return nil, usage.UnexpectedArgument(tok, sc.name)
		}

		flagTok := tok
		inline := ""
		hasInline := false
		if idx := strings.Index(tok, "="); idx != -1 {
			flagTok = tok[:idx]
			inline = tok[idx+1:]
			hasInline = true
		}

		key := strings.TrimPrefix(flagTok, "--")
		spec, ok := sc.flags[key]
		if !ok {
			return nil, usage.InvalidFlag(flagTok, sc.name)
		}

		raw := inline
		if spec.Kind == command.KindBool {
			if !hasInline {
				raw = "true"
			}
		} else if !hasInline {
			// Value is the next token. Another flag there means the
			// value is missing; values starting with a dash must use
			// the --flag=value form.
			if i+1 >= len(tokens) || strings.HasPrefix(tokens[i+1], "--") {
				return nil, usage.MissingValue(flagTok)
			}
			i++
			raw = tokens[i]
		}

		val, err := coerce(spec, flagTok, raw)
		if err != nil {
			return nil, err
		}

		if spec.Multiple {
			inv.Append(key, val)
		} else {
			inv.Set(key, val)
		}
	}

	// Required flags are checked after the whole line is consumed so the
	// diagnostic always names the first missing one in declaration order.
	for _, key := range sc.order {
		spec := sc.flags[key]
		if spec.Required && !inv.Has(key) {
			return nil, usage.MissingFlag(spec.Flag)
		}
	}

	return inv, nil
}

// coerce converts a raw token into the spec's declared type.
func coerce(spec command.ArgSpec, flagTok, raw string) (command.Value, error) {
	switch spec.Kind {
	case command.KindString:
		return command.Value{Kind: command.KindString, Str: raw}, nil

	case command.KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return command.Value{}, usage.InvalidValue(flagTok, raw, spec.Kind.String())
		}
		return command.Value{Kind: command.KindInt, Int: n}, nil

	case command.KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return command.Value{}, usage.InvalidValue(flagTok, raw, spec.Kind.String())
		}
		return command.Value{Kind: command.KindFloat, Float: f}, nil

	case command.KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return command.Value{}, usage.InvalidValue(flagTok, raw, spec.Kind.String())
		}
		return command.Value{Kind: command.KindBool, Bool: b}, nil
	}

	return command.Value{}, usage.InvalidValue(flagTok, raw, "unknown")
}
