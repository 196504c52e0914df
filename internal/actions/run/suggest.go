package run

import (
	"context"
	"strings"

	"github.com/relay-tools/slashcmd/internal/dispatchers"
	"github.com/relay-tools/slashcmd/internal/usage"
)

func Suggest(args []string, flags *dispatchers.ParsedFlags) error {
	deps, err := DefaultDeps(flags)
	if err != nil {
		return err
	}
	defer deps.Close()
	return suggest(args, flags, deps)
}

// suggest prints the ranked suggestion list for a partial command, the same
// list the repl shows while typing.
func suggest(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("pretext")
	}

	pretext := strings.Join(args, " ")
	if !strings.HasPrefix(pretext, "/") {
		pretext = "/" + pretext
	}

	a := deps.App
	parser := newEngine(deps)

	for _, s := range parser.GetSuggestions(context.Background(), pretext) {
		line := a.Styler.Info(padSuggestion(s.Suggestion))
		if s.Hint != "" {
			line += " " + a.Styler.Muted(s.Hint)
		}
		if s.Description != "" {
			line += "  " + s.Description
		}
		_, _ = a.Output.Println(line)
	}
	return nil
}

func padSuggestion(s string) string {
	const width = 18
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
