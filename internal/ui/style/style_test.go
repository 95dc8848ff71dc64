package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledIsPassthrough(t *testing.T) {
	Init(false)

	require.False(t, Enabled())
	require.Equal(t, "ok", Success("ok"))
	require.Equal(t, "careful", Warning("careful"))
	require.Equal(t, "boom", Error("boom"))
	require.Equal(t, "fyi", Info("fyi"))
	require.Equal(t, "TITLE", Header("TITLE"))
	require.Equal(t, "aside", Muted("aside"))
}

func TestNoColorEnvWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	Init(true)

	require.False(t, Enabled())
	require.Equal(t, "plain", Success("plain"))
}

func TestManageNoColorEnvWins(t *testing.T) {
	t.Setenv("MANAGE_NO_COLOR", "1")

	Init(true)

	require.False(t, Enabled())
}

func TestEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("MANAGE_NO_COLOR", "")

	Init(true)
	t.Cleanup(func() { Init(false) })

	require.True(t, Enabled())
}
