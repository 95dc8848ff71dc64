package dispatch

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manage-tools/cli/internal/command"
	"github.com/manage-tools/cli/internal/registry"
	"github.com/manage-tools/cli/internal/schema"
)

// fakeCommand satisfies the full command contract.
type fakeCommand struct {
	description string
	args        []command.ArgSpec
	call        func(inv *command.Invocation) error
}

func (f fakeCommand) Description() string { return f.description }

func (f fakeCommand) Arguments() []command.ArgSpec { return f.args }

func (f fakeCommand) Call(inv *command.Invocation) error {
	if f.call == nil {
		return nil
	}
	return f.call(inv)
}

type recorderFunc func(rec Record) error

func (f recorderFunc) Record(rec Record) error { return f(rec) }

func testSource() *registry.Table {
	src := registry.NewTable()
	src.AddCommand("hello_world", fakeCommand{
		description: "Prints Hello world!",
		call: func(inv *command.Invocation) error {
			fmt.Fprintln(inv.Stdout, "Hello world!")
			return nil
		},
	})
	src.AddCommand("hello_user", fakeCommand{
		description: "Greets the user",
		args: []command.ArgSpec{
			{Flag: "--name", Help: "The name of the user", Placeholder: "John", Kind: command.KindString, Required: true},
		},
		call: func(inv *command.Invocation) error {
			fmt.Fprintf(inv.Stdout, "Hello %s!\n", inv.String("name", ""))
			return nil
		},
	})
	src.AddCommand("failing", fakeCommand{
		description: "Always fails",
		call: func(inv *command.Invocation) error {
			return errors.New("database exploded")
		},
	})
	return src
}

func newTestDispatcher(t *testing.T, src registry.Source) (*Dispatcher, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	reg := registry.New(src)
	sch, err := schema.Build(reg)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	return New(sch, reg, &stdout, &stderr), &stdout, &stderr
}

func TestRun_NoArgsCommand(t *testing.T) {
	d, stdout, stderr := newTestDispatcher(t, testSource())

	code := d.Run([]string{"hello_world"})

	require.Equal(t, 0, code)
	require.Equal(t, "Hello world!\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestRun_RequiredFlagProvided(t *testing.T) {
	d, stdout, _ := newTestDispatcher(t, testSource())

	code := d.Run([]string{"hello_user", "--name=John"})

	require.Equal(t, 0, code)
	require.Equal(t, "Hello John!\n", stdout.String())
}

func TestRun_MissingRequiredFlag(t *testing.T) {
	d, stdout, stderr := newTestDispatcher(t, testSource())

	code := d.Run([]string{"hello_user"})

	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "--name is required")
	require.Empty(t, stdout.String())
}

func TestRun_UnknownCommand(t *testing.T) {
	d, _, stderr := newTestDispatcher(t, testSource())

	code := d.Run([]string{"bogus"})

	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "bogus")
}

func TestRun_CommandErrorPropagates(t *testing.T) {
	d, _, stderr := newTestDispatcher(t, testSource())

	code := d.Run([]string{"failing"})

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "database exploded")
	// Never masked as a parse error.
	require.NotContains(t, stderr.String(), "required")
}

func TestRun_NoArgsShowsUsageAndFailsExit(t *testing.T) {
	d, stdout, _ := newTestDispatcher(t, testSource())

	code := d.Run(nil)

	require.Equal(t, 2, code)
	require.Contains(t, stdout.String(), "hello_world")
	require.Contains(t, stdout.String(), "hello_user")
}

func TestRun_HelpFlag(t *testing.T) {
	d, stdout, _ := newTestDispatcher(t, testSource())

	code := d.Run([]string{"--help"})

	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "COMMANDS")
}

func TestRun_HelpCommand(t *testing.T) {
	d, stdout, _ := newTestDispatcher(t, testSource())

	code := d.Run([]string{"help"})

	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "hello_world")
}

func TestRun_HelpForCommand(t *testing.T) {
	d, stdout, _ := newTestDispatcher(t, testSource())

	code := d.Run([]string{"help", "hello_user"})

	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "--name")
	require.Contains(t, stdout.String(), "The name of the user")
}

func TestRun_HelpForUnknownCommand(t *testing.T) {
	d, _, stderr := newTestDispatcher(t, testSource())

	code := d.Run([]string{"help", "bogus"})

	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "bogus")
}

func TestRun_CommandHelpFlag(t *testing.T) {
	d, stdout, _ := newTestDispatcher(t, testSource())

	code := d.Run([]string{"hello_user", "--help"})

	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "--name")
}

func TestRun_InteractiveHelpWithoutBrowser(t *testing.T) {
	d, _, stderr := newTestDispatcher(t, testSource())

	code := d.Run([]string{"help", "--interactive"})

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "not available")
}

func TestRun_InteractiveHelpUsesBrowser(t *testing.T) {
	d, _, _ := newTestDispatcher(t, testSource())

	opened := false
	d.Browser = func() error {
		opened = true
		return nil
	}

	code := d.Run([]string{"help", "-i"})

	require.Equal(t, 0, code)
	require.True(t, opened)
}

func TestRun_RecordsInvocation(t *testing.T) {
	d, _, _ := newTestDispatcher(t, testSource())

	var got Record
	d.History = recorderFunc(func(rec Record) error {
		got = rec
		return nil
	})

	code := d.Run([]string{"hello_user", "--name", "John"})

	require.Equal(t, 0, code)
	require.Equal(t, "hello_user", got.Command)
	require.Equal(t, []string{"name"}, got.Flags)
	require.Equal(t, 0, got.ExitCode)
	require.False(t, got.StartedAt.IsZero())
}

func TestRun_RecordsFailedInvocation(t *testing.T) {
	d, _, _ := newTestDispatcher(t, testSource())

	var got Record
	d.History = recorderFunc(func(rec Record) error {
		got = rec
		return nil
	})

	code := d.Run([]string{"failing"})

	require.Equal(t, 1, code)
	require.Equal(t, 1, got.ExitCode)
}

func TestRun_RecorderFailureDoesNotAffectOutcome(t *testing.T) {
	d, stdout, _ := newTestDispatcher(t, testSource())

	d.History = recorderFunc(func(rec Record) error {
		return errors.New("history store is gone")
	})

	code := d.Run([]string{"hello_world"})

	require.Equal(t, 0, code)
	require.Equal(t, "Hello world!\n", stdout.String())
}

func TestRun_ParseErrorNeverRecords(t *testing.T) {
	d, _, _ := newTestDispatcher(t, testSource())

	recorded := false
	d.History = recorderFunc(func(rec Record) error {
		recorded = true
		return nil
	})

	_ = d.Run([]string{"hello_user"})

	require.False(t, recorded)
}

func TestRun_RegistryDesyncIsInternalError(t *testing.T) {
	// Schema built over the real source, registry deliberately empty:
	// a successful parse followed by a failed lookup is a runner bug,
	// not a user error.
	reg := registry.New(testSource())
	sch, err := schema.Build(reg)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	d := New(sch, registry.New(registry.NewTable()), &stdout, &stderr)

	code := d.Run([]string{"hello_world"})

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "internal error")
}
