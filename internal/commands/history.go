package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/manage-tools/cli/internal/command"
	"github.com/manage-tools/cli/internal/store"
	"github.com/manage-tools/cli/internal/ui/style"
)

// History lists recent invocations from the local history database.
type History struct {
	Store *store.Store
}

func (History) Description() string {
	return "List recent manage invocations"
}

func (History) Arguments() []command.ArgSpec {
	return []command.ArgSpec{
		{
			Flag:        "--limit",
			Help:        "Maximum number of entries to show",
			Placeholder: "20",
			Kind:        command.KindInt,
		},
		{
			Flag:        "--command",
			Help:        "Only show invocations of this command",
			Placeholder: "hello_user",
			Kind:        command.KindString,
		},
	}
}

func (h History) Call(inv *command.Invocation) error {
	if h.Store == nil {
		return errors.New("history is disabled (set MANAGE_HISTORY=true)")
	}

	records, err := h.Store.List(store.Filter{
		Command: inv.String("command", ""),
		Limit:   int(inv.Int("limit", 20)),
	})
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(inv.Stdout, "No invocations recorded.")
		return nil
	}

	for _, rec := range records {
		status := style.Success("ok")
		if rec.ExitCode != 0 {
			status = style.Error(fmt.Sprintf("exit %d", rec.ExitCode))
		}

		fmt.Fprintf(inv.Stdout, "%s  %-20s %s (%dms)\n",
			style.Muted(rec.StartedAt.Local().Format(time.DateTime)),
			rec.Command,
			status,
			rec.DurationMS,
		)
	}

	return nil
}
