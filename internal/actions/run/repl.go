package run

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/relay-tools/slashcmd/internal/client"
	"github.com/relay-tools/slashcmd/internal/dispatchers"
	uirepl "github.com/relay-tools/slashcmd/internal/ui/repl"
)

func Repl(args []string, flags *dispatchers.ParsedFlags) error {
	deps, err := DefaultDeps(flags)
	if err != nil {
		return err
	}
	defer deps.Close()
	return runRepl(args, flags, deps)
}

// runRepl launches the interactive prompt. When a schema file is configured
// it is watched for changes so edits show up without restarting.
func runRepl(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("repl requires an interactive terminal")
	}

	p := tea.NewProgram(uirepl.New(deps.App, deps.CC))

	if w := watchSchema(deps, p); w != nil {
		defer w.Close()
	}

	_, err := p.Run()
	return err
}

// watchSchema starts the schema file watcher when both a path and a
// swappable schema source are available.
func watchSchema(deps Deps, p *tea.Program) *client.Watcher {
	fixture, ok := deps.App.Schema.(*client.Fixture)
	if !ok || deps.SchemaPath == "" {
		return nil
	}
	if _, err := os.Stat(deps.SchemaPath); err != nil {
		return nil
	}

	w, err := client.Watch(deps.SchemaPath, deps.App.Logger, func(sf *client.SchemaFile) {
		fixture.Swap(sf)
		p.Send(uirepl.SchemaReloaded{})
	})
	if err != nil {
		deps.App.Logger.Warn("repl: schema watch unavailable: %v", err)
		return nil
	}
	return w
}
