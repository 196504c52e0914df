package cli

import "github.com/relay-tools/slashcmd/internal/dispatchers"

var (
	CommandArg = dispatchers.ArgSpec{
		Name:        "command",
		Description: "Slash command text, quoted or as separate words",
		Required:    true,
		Variadic:    true,
	}

	PretextArg = dispatchers.ArgSpec{
		Name:        "pretext",
		Description: "Partial command text to complete",
		Required:    true,
		Variadic:    true,
	}

	ConfigKeyArg = dispatchers.ArgSpec{
		Name:        "key",
		Description: "Configuration key",
		Required:    true,
	}

	ConfigValueArg = dispatchers.ArgSpec{
		Name:        "value",
		Description: "Value to store",
		Required:    true,
	}

	ShellArg = dispatchers.ArgSpec{
		Name:        "shell",
		Description: "Shell to target (bash, zsh, fish), detected from $SHELL by default",
		Required:    false,
	}

	SchemaPathArg = dispatchers.ArgSpec{
		Name:        "path",
		Description: "Schema file to check, defaults to the configured schema_path",
		Required:    false,
	}
)
