package run

import (
	"context"
	"errors"
	"strings"

	"github.com/relay-tools/slashcmd/internal/command"
	"github.com/relay-tools/slashcmd/internal/dispatchers"
	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/usage"
)

func Exec(args []string, flags *dispatchers.ParsedFlags) error {
	deps, err := DefaultDeps(flags)
	if err != nil {
		return err
	}
	defer deps.Close()
	return exec(args, flags, deps)
}

// exec composes one command, submits it, and prints the response.
func exec(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("command")
	}

	text := strings.Join(args, " ")
	if !strings.HasPrefix(text, "/") {
		text = "/" + text
	}

	a := deps.App
	parser := newEngine(deps)
	ctx := context.Background()

	req, err := parser.ComposeCallFromCommand(ctx, text)
	if err != nil {
		recordHistory(a, text, "", "", err)
		return err
	}

	resp, err := a.Client.PerformCall(ctx, domain.CallTypeSubmit, *req)
	if err != nil {
		recordHistory(a, text, req.Call.Path, "", err)
		return err
	}
	if resp.Type == domain.CallResponseTypeError {
		err := errors.New(resp.Error)
		recordHistory(a, text, req.Call.Path, "", err)
		return err
	}

	recordHistory(a, text, req.Call.Path, resp.Markdown, nil)

	if resp.Markdown != "" {
		_, _ = a.Output.Println(resp.Markdown)
	} else {
		_, _ = a.Output.Println(a.Styler.Success("ok"))
	}
	return nil
}

// newEngine creates a fresh parse session over the wired application.
func newEngine(deps Deps) *command.Parser {
	a := deps.App
	return command.NewParser(
		a.Schema,
		a.Client,
		a.Users,
		a.Channels,
		deps.CC,
		command.WithLogger(a.Logger),
	)
}

// recordHistory persists a submission outcome, logging rather than failing
// when the store is unavailable.
func recordHistory(a *domain.Application, cmd, callPath, markdown string, execErr error) {
	if a.History == nil {
		return
	}

	entry := domain.HistoryEntry{
		Command:   cmd,
		CallPath:  callPath,
		Response:  markdown,
		Succeeded: execErr == nil,
	}
	if execErr != nil {
		entry.Response = execErr.Error()
	}
	if err := a.History.Insert(entry); err != nil {
		a.Logger.Warn("exec: history insert failed: %v", err)
	}
}
