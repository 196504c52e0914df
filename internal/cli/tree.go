// Package cli declares the slash command tree: every subcommand, its
// flags and arguments, wired to the actions that implement them.
package cli

import (
	actioncompletions "github.com/relay-tools/slashcmd/internal/actions/completions"
	actionconfig "github.com/relay-tools/slashcmd/internal/actions/config"
	actionhistory "github.com/relay-tools/slashcmd/internal/actions/history"
	"github.com/relay-tools/slashcmd/internal/actions/run"
	actionschema "github.com/relay-tools/slashcmd/internal/actions/schema"
	"github.com/relay-tools/slashcmd/internal/actions/version"
	"github.com/relay-tools/slashcmd/internal/dispatchers"
)

// BuildTree constructs the full dispatch tree for the slash binary.
func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "slash",
		Summary: "parse, complete, and run slash commands from your terminal",
		Usage:   "slash [flags] <command> [args]",
		Flags:   RootFlags,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "repl",
		Parent:  root,
		Summary: "Start an interactive command session",
		Description: "Opens a prompt with live autocomplete. Type / to see available\n" +
			"commands, Tab to accept a suggestion, Enter to run.",
		Usage:    "slash repl",
		Action:   run.Repl,
		Category: dispatchers.CategoryInteractive,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "exec",
		Parent:  root,
		Summary: "Run a single slash command and print the response",
		Description: "Parses the given text as a slash command, submits it, and prints\n" +
			"the response. The leading / may be omitted.",
		Usage:    "slash exec <command>",
		Args:     []dispatchers.ArgSpec{CommandArg},
		Action:   run.Exec,
		Category: dispatchers.CategoryRun,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "suggest",
		Parent:   root,
		Summary:  "Print autocomplete suggestions for partial input",
		Usage:    "slash suggest <pretext>",
		Args:     []dispatchers.ArgSpec{PretextArg},
		Action:   run.Suggest,
		Category: dispatchers.CategoryRun,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "history",
		Parent:   root,
		Summary:  "List previously executed commands",
		Usage:    "slash history [--limit <n>] [--failed]",
		Flags:    []dispatchers.FlagDescriptor{HistoryLimitFlag, HistoryFailedFlag},
		Action:   actionhistory.List,
		Category: dispatchers.CategoryInspect,
	})

	schemaGroup := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "schema",
		Parent:  root,
		Summary: "Inspect command schema files",
		Usage:   "slash schema <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "validate",
		Parent:   schemaGroup,
		Summary:  "Check that a schema file loads cleanly",
		Usage:    "slash schema validate [path]",
		Args:     []dispatchers.ArgSpec{SchemaPathArg},
		Action:   actionschema.Validate,
		Category: dispatchers.CategoryInspect,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Print version information",
		Usage:    "slash version",
		Action:   version.Show,
		Category: dispatchers.CategoryInspect,
	})

	configGroup := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Read and write slash configuration",
		Usage:   "slash config <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   configGroup,
		Summary:  "Print a configuration value",
		Usage:    "slash config get <key>",
		Args:     []dispatchers.ArgSpec{ConfigKeyArg},
		Action:   actionconfig.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   configGroup,
		Summary:  "Set a configuration value",
		Usage:    "slash config set <key> <value>",
		Args:     []dispatchers.ArgSpec{ConfigKeyArg, ConfigValueArg},
		Action:   actionconfig.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   configGroup,
		Summary:  "Remove a configuration value",
		Usage:    "slash config unset <key>",
		Args:     []dispatchers.ArgSpec{ConfigKeyArg},
		Action:   actionconfig.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   configGroup,
		Summary:  "Show all configured values",
		Usage:    "slash config list",
		Action:   actionconfig.List,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "completions",
		Parent:  root,
		Summary: "Set up shell tab completion",
		Description: "Prints instructions for enabling tab completion in your shell,\n" +
			"or the completion script itself with --script.",
		Usage: "slash completions [shell] [--script]",
		Args:  []dispatchers.ArgSpec{ShellArg},
		Flags: []dispatchers.FlagDescriptor{ScriptFlag},
		Action:   actioncompletions.Show,
		Category: dispatchers.CategoryConfig,
	})

	return root
}
