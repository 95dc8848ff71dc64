package paths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppLocalDataDir_XDG(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG only applies to unix-like systems")
	}

	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	got := AppLocalDataDir()
	require.Equal(t, filepath.Join(base, "manage"), got)
	require.DirExists(t, got)
}

func TestLogFilePath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("path layout asserted on linux only")
	}

	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	require.Equal(t, filepath.Join(base, "manage", "manage.log"), LogFilePath())
}

func TestDBFilePath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("path layout asserted on linux only")
	}

	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	require.Equal(t, filepath.Join(base, "manage", "history.db"), DBFilePath())
}
