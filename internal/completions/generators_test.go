package completions

import (
	"strings"
	"testing"

	"github.com/relay-tools/slashcmd/internal/dispatchers"
)

func buildTestTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "slash",
		Summary: "Test CLI",
		Flags: []dispatchers.FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--version", "-v"}, Description: "Show version"},
		},
	})

	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage settings",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "get",
		Parent:  config,
		Summary: "Get a setting",
		Flags: []dispatchers.FlagDescriptor{
			{Names: []string{"--json"}, Description: "Output as JSON"},
		},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "set",
		Parent:  config,
		Summary: "Set a setting",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "repl",
		Parent:  root,
		Summary: "Start a session",
		Flags: []dispatchers.FlagDescriptor{
			{Names: []string{"--schema"}, ValueHint: "<path>", Description: "Schema file"},
		},
	})

	return root
}

func TestGenerateBash(t *testing.T) {
	root := buildTestTree()
	commands := ExtractCommands(root)
	script := GenerateBash(commands)

	checks := []string{
		"_slash_completions()",
		"complete -F _slash_completions slash",
		"config",
		"repl",
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("bash script should contain %q", check)
		}
	}

	if !strings.HasPrefix(script, "# slash bash completion script") {
		t.Error("bash script should start with comment header")
	}
}

func TestGenerateZsh(t *testing.T) {
	root := buildTestTree()
	commands := ExtractCommands(root)
	script := GenerateZsh(commands)

	checks := []string{
		"#compdef slash",
		"_slash()",
		"_slash_commands()",
		"_describe",
		"config:Manage settings",
		"repl:Start a session",
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("zsh script should contain %q", check)
		}
	}
}

func TestGenerateFish(t *testing.T) {
	root := buildTestTree()
	commands := ExtractCommands(root)
	script := GenerateFish(commands)

	checks := []string{
		"complete -c slash -f",
		"__fish_use_subcommand",
		"config",
		"repl",
		"-d 'Manage settings'",
		"-d 'Start a session'",
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("fish script should contain %q", check)
		}
	}
}

func TestGenerateBash_EmptyTree(t *testing.T) {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "slash",
		Summary: "Test CLI",
	})

	commands := ExtractCommands(root)
	script := GenerateBash(commands)

	if !strings.Contains(script, "_slash_completions()") {
		t.Error("bash script should contain function definition even for empty tree")
	}
}

func TestGenerateZsh_EmptyTree(t *testing.T) {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "slash",
		Summary: "Test CLI",
	})

	commands := ExtractCommands(root)
	script := GenerateZsh(commands)

	if !strings.Contains(script, "#compdef slash") {
		t.Error("zsh script should contain compdef header even for empty tree")
	}
}

func TestGenerateFish_EmptyTree(t *testing.T) {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "slash",
		Summary: "Test CLI",
	})

	commands := ExtractCommands(root)
	script := GenerateFish(commands)

	if !strings.Contains(script, "complete -c slash -f") {
		t.Error("fish script should contain basic completion setup even for empty tree")
	}
}
