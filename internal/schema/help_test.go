package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelp_ListsValidCommandsOnly(t *testing.T) {
	s := buildSchema(t, sampleSource())

	message := s.Help()

	require.Contains(t, message, "command_with_few_parameters")
	require.Contains(t, message, "correct_command")
	require.NotContains(t, message, "command_with_wrong_classname")

	require.Contains(t, message, "Help message for Command with Few Parameters")
	require.Contains(t, message, "Help message for Correct Command")
	require.NotContains(t, message, "Help message for Wrong Command")
}

func TestHelp_MentionsHelpCommand(t *testing.T) {
	s := buildSchema(t, sampleSource())

	require.Contains(t, s.Help(), "manage help <command>")
}

func TestCommandHelp_ShowsFlags(t *testing.T) {
	s := buildSchema(t, parseSource())

	message, ok := s.CommandHelp("hello_user")
	require.True(t, ok)
	require.Contains(t, message, "hello_user")
	require.Contains(t, message, "--name")
	require.Contains(t, message, "John")
	require.Contains(t, message, "The name of the user")
	require.Contains(t, message, "required")
}

func TestCommandHelp_MarksRepeatableFlags(t *testing.T) {
	s := buildSchema(t, parseSource())

	message, ok := s.CommandHelp("typed")
	require.True(t, ok)
	require.Contains(t, message, "repeatable")
	// Boolean flags take no value, so no placeholder is shown.
	require.NotContains(t, message, "--verbose <boolean>")
}

func TestCommandHelp_UnknownCommand(t *testing.T) {
	s := buildSchema(t, parseSource())

	_, ok := s.CommandHelp("nope")
	require.False(t, ok)
}

func TestCommandHelp_NoFlags(t *testing.T) {
	s := buildSchema(t, parseSource())

	message, ok := s.CommandHelp("hello_world")
	require.True(t, ok)
	require.NotContains(t, message, "FLAGS")
}
