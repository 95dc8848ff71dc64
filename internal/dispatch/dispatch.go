// Package dispatch runs one invocation: parse the input against the schema,
// resolve the selected command in the registry, invoke it, and map the
// outcome to an exit code.
package dispatch

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/manage-tools/cli/internal/log"
	"github.com/manage-tools/cli/internal/registry"
	"github.com/manage-tools/cli/internal/schema"
	"github.com/manage-tools/cli/internal/usage"
)

// Record describes one completed invocation for the history sink. Flag
// values are deliberately absent; only names are recorded.
type Record struct {
	Command   string
	Flags     []string
	ExitCode  int
	Duration  time.Duration
	StartedAt time.Time
}

// Recorder receives completed invocations. A failing recorder never affects
// the invocation's outcome.
type Recorder interface {
	Record(rec Record) error
}

// Dispatcher borrows the schema and registry for the lifetime of one runner
// process. It never mutates either.
type Dispatcher struct {
	Schema   *schema.Schema
	Registry *registry.Registry
	Stdout   io.Writer
	Stderr   io.Writer

	// History is optional; nil disables invocation recording.
	History Recorder

	// Browser is injected from main to keep the TUI out of the engine.
	// nil disables 'manage help --interactive'.
	Browser func() error
}

// New creates a Dispatcher writing to the given streams.
func New(s *schema.Schema, reg *registry.Registry, stdout, stderr io.Writer) *Dispatcher {
	return &Dispatcher{
		Schema:   s,
		Registry: reg,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// Run executes one invocation and returns the process exit code:
// 0 success, 1 command or internal failure, 2 usage error.
func (d *Dispatcher) Run(argv []string) int {
	if code, handled := d.runHelp(argv); handled {
		return code
	}

	inv, err := d.Schema.Parse(argv)
	if err != nil {
		return d.fail(err)
	}

	// The selector can only ever be a name the schema produced from valid
	// registry entries, so a miss here is a runner bug.
	cmd, ok := d.Registry.Lookup(inv.Command)
	if !ok {
		log.Error("dispatch: command %q parsed but missing from registry", inv.Command)
		return d.fail(usage.Internal("command %q missing from registry", inv.Command))
	}

	inv.Stdout = d.Stdout
	inv.Stderr = d.Stderr

	started := time.Now()
	callErr := cmd.Call(inv)
	exitCode := 0
	if callErr != nil {
		exitCode = 1
	}

	d.record(Record{
		Command:   inv.Command,
		Flags:     inv.FlagNames(),
		ExitCode:  exitCode,
		Duration:  time.Since(started),
		StartedAt: started,
	})

	if callErr != nil {
		// Command failures are opaque: report them as-is, never as a
		// parse error.
		fmt.Fprintln(d.Stderr, "manage: "+callErr.Error())
		return 1
	}

	return 0
}

// runHelp handles the help surfaces before any parsing: bare invocation,
// the help command, and --help/-h flags.
func (d *Dispatcher) runHelp(argv []string) (int, bool) {
	if len(argv) == 0 {
		// A command was required; show usage but signal the error.
		fmt.Fprint(d.Stdout, d.Schema.Help())
		return usage.MissingCommand().GetExitCode(), true
	}

	if argv[0] == "--help" || argv[0] == "-h" {
		fmt.Fprint(d.Stdout, d.Schema.Help())
		return 0, true
	}

	if argv[0] == "help" {
		return d.runHelpCommand(argv[1:]), true
	}

	// `manage <command> --help` shows the command's scope.
	if d.Schema.Has(argv[0]) && hasHelpFlag(argv[1:]) {
		text, _ := d.Schema.CommandHelp(argv[0])
		fmt.Fprint(d.Stdout, text)
		return 0, true
	}

	return 0, false
}

func (d *Dispatcher) runHelpCommand(rest []string) int {
	if hasInteractiveFlag(rest) {
		if d.Browser == nil {
			fmt.Fprintln(d.Stderr, "manage: interactive help is not available")
			return 1
		}
		if err := d.Browser(); err != nil {
			fmt.Fprintln(d.Stderr, "manage: "+err.Error())
			return 1
		}
		return 0
	}

	for _, tok := range rest {
		if len(tok) > 0 && tok[0] == '-' {
			continue
		}
		text, ok := d.Schema.CommandHelp(tok)
		if !ok {
			return d.fail(usage.UnknownCommand(tok, schema.Similar(tok, d.Schema.Commands(), 3)...))
		}
		fmt.Fprint(d.Stdout, text)
		return 0
	}

	fmt.Fprint(d.Stdout, d.Schema.Help())
	return 0
}

// fail writes the diagnostic to stderr and returns the matching exit code.
func (d *Dispatcher) fail(err error) int {
	fmt.Fprintln(d.Stderr, err.Error())

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

func (d *Dispatcher) record(rec Record) {
	if d.History == nil {
		return
	}
	if err := d.History.Record(rec); err != nil {
		log.Warn("dispatch: recording invocation failed: %v", err)
	}
}

func hasHelpFlag(tokens []string) bool {
	for _, tok := range tokens {
		if tok == "--help" || tok == "-h" {
			return true
		}
	}
	return false
}

func hasInteractiveFlag(tokens []string) bool {
	for _, tok := range tokens {
		if tok == "--interactive" || tok == "-i" {
			return true
		}
	}
	return false
}
