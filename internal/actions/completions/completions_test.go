package completions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relay-tools/slashcmd/internal/completions"
	"github.com/relay-tools/slashcmd/internal/dispatchers"
)

func registerTestTree() {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "slash",
		Summary: "Test CLI",
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "repl",
		Parent:  root,
		Summary: "Start a session",
	})
	completions.RegisterCommandTree(root)
}

func TestShow_ScriptForNamedShell(t *testing.T) {
	registerTestTree()
	var out strings.Builder
	deps := Deps{Out: &out, Detect: func() completions.Shell { return completions.ShellUnknown }}

	flags := dispatchers.NewParsedFlags([]string{"--script"})
	err := show([]string{"zsh"}, flags, deps)
	require.NoError(t, err)
	require.Contains(t, out.String(), "#compdef")
}

func TestShow_InstructionsByDefault(t *testing.T) {
	registerTestTree()
	var out strings.Builder
	deps := Deps{Out: &out, Detect: func() completions.Shell { return completions.ShellBash }}

	err := show(nil, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)
	require.Contains(t, out.String(), "~/.bashrc")
	require.Contains(t, out.String(), "completions --script")
}

func TestShow_UnknownShellErrors(t *testing.T) {
	registerTestTree()
	var out strings.Builder
	deps := Deps{Out: &out, Detect: func() completions.Shell { return completions.ShellUnknown }}

	err := show(nil, dispatchers.NewParsedFlags(nil), deps)
	require.Error(t, err)
}
