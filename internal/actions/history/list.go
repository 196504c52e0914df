package history

import (
	"github.com/relay-tools/slashcmd/internal/dispatchers"
	"github.com/relay-tools/slashcmd/internal/domain"
)

const defaultListLimit = 20

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

// list prints recent submissions, newest first.
func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	store, err := deps.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	filter := domain.HistoryFilter{Limit: defaultListLimit}
	if flags != nil {
		filter.Limit = flags.Int("--limit", defaultListLimit)
		filter.OnlyFailed = flags.Has("--failed")
	}

	entries, err := store.List(filter)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		_, _ = deps.Println("No commands in history.")
		return nil
	}

	for _, e := range entries {
		status := "ok"
		if !e.Succeeded {
			status = "failed"
		}
		_, _ = deps.Printf("%s  %-6s  %s\n", deps.FormatTime(e.CreatedAt.Local()), status, e.Command)
	}
	return nil
}
