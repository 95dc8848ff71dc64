package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/manage-tools/cli/internal/dispatch"
	"github.com/manage-tools/cli/internal/store"
	"github.com/manage-tools/cli/internal/testutil"
)

func TestStripFlag(t *testing.T) {
	tests := []struct {
		name      string
		argv      []string
		want      []string
		wantFound bool
	}{
		{
			name: "absent",
			argv: []string{"hello_user", "--name", "John"},
			want: []string{"hello_user", "--name", "John"},
		},
		{
			name:      "leading",
			argv:      []string{"--no-color", "hello_world"},
			want:      []string{"hello_world"},
			wantFound: true,
		},
		{
			name:      "trailing",
			argv:      []string{"hello_world", "--no-color"},
			want:      []string{"hello_world"},
			wantFound: true,
		},
		{
			name:      "every occurrence removed",
			argv:      []string{"--no-color", "hello_world", "--no-color"},
			want:      []string{"hello_world"},
			wantFound: true,
		},
		{
			name: "empty input",
			argv: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := stripFlag(tt.argv, "--no-color")
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantFound, found)
		})
	}
}

func TestHistoryRecorder(t *testing.T) {
	st := store.NewWithDB(testutil.NewTestDB(t))

	rec := historyRecorder{st: st}
	err := rec.Record(dispatch.Record{
		Command:   "hello_user",
		Flags:     []string{"name"},
		ExitCode:  0,
		Duration:  1500 * time.Millisecond,
		StartedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got, err := st.List(store.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "hello_user", got[0].Command)
	require.Equal(t, []string{"name"}, got[0].Flags)
	require.Equal(t, int64(1500), got[0].DurationMS)
}
