package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/manage-tools/cli/internal/commands"
	"github.com/manage-tools/cli/internal/config"
	"github.com/manage-tools/cli/internal/dispatch"
	"github.com/manage-tools/cli/internal/log"
	"github.com/manage-tools/cli/internal/paths"
	"github.com/manage-tools/cli/internal/registry"
	"github.com/manage-tools/cli/internal/schema"
	"github.com/manage-tools/cli/internal/store"
	"github.com/manage-tools/cli/internal/ui/browser"
	"github.com/manage-tools/cli/internal/ui/style"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "manage: invalid configuration: %v\n", err)
		cfg = config.Config{}
	}

	if cfg.LogEnabled {
		if err := log.Init(paths.LogFilePath(), log.ParseLevel(cfg.LogLevel)); err != nil {
			fmt.Fprintf(os.Stderr, "manage: could not open log file: %v\n", err)
		}
	}
	defer func() { _ = log.Close() }()

	argv, noColor := stripFlag(os.Args[1:], "--no-color")

	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !noColor && !cfg.NoColor
	style.Init(enableColor)

	// History is best effort: a broken database degrades to a log warning,
	// never to a failed invocation.
	var st *store.Store
	if cfg.HistoryEnabled {
		dbPath := cfg.DBPath
		if dbPath == "" {
			dbPath = paths.DBFilePath()
		}
		st, err = store.New(dbPath)
		if err != nil {
			log.Warn("main: history store unavailable: %v", err)
			st = nil
		}
	}
	if st != nil {
		defer func() { _ = st.Close() }()
	}

	reg := registry.New(commands.Builtins(st, version))

	sch, err := schema.Build(reg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "manage: "+err.Error())
		os.Exit(1)
	}

	d := dispatch.New(sch, reg, os.Stdout, os.Stderr)
	d.Browser = browser.Launch(sch)
	if st != nil {
		d.History = historyRecorder{st: st}
	}

	os.Exit(d.Run(argv))
}

// historyRecorder adapts the store to the dispatcher's recorder interface.
type historyRecorder struct {
	st *store.Store
}

func (h historyRecorder) Record(rec dispatch.Record) error {
	return h.st.Insert(store.Invocation{
		Command:    rec.Command,
		Flags:      rec.Flags,
		ExitCode:   rec.ExitCode,
		DurationMS: rec.Duration.Milliseconds(),
		StartedAt:  rec.StartedAt,
	})
}

// stripFlag removes every occurrence of flag from argv and reports whether
// it was present. Runner-global flags are consumed before dispatch so
// command scopes never see them.
func stripFlag(argv []string, flag string) ([]string, bool) {
	out := make([]string, 0, len(argv))
	found := false
	for _, a := range argv {
		if a == flag {
			found = true
			continue
		}
		out = append(out, a)
	}
	return out, found
}
