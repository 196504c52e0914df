package cli

import "github.com/relay-tools/slashcmd/internal/dispatchers"

var (
	HelpFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--help", "-h"},
		Description: "Show help",
		Scope:       dispatchers.FlagScopeGlobal,
	}

	VersionFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--version", "-v"},
		Description: "Print version information",
		Scope:       dispatchers.FlagScopeGlobal,
	}

	NoColorFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--no-color"},
		Description: "Disable colored output",
		Scope:       dispatchers.FlagScopeGlobal,
	}

	NoPagerFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--no-pager"},
		Description: "Do not pipe output into a pager",
		Scope:       dispatchers.FlagScopeGlobal,
	}

	PagerFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--pager"},
		ValueHint:   "<command>",
		Description: "Pager command to use for long output",
		Scope:       dispatchers.FlagScopeGlobal,
	}

	SchemaFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--schema"},
		ValueHint:   "<path>",
		Description: "Load command definitions from a schema file",
		Scope:       dispatchers.FlagScopeGlobal,
	}

	HistoryLimitFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--limit"},
		ValueHint:   "<n>",
		Description: "Maximum number of entries to show",
		Scope:       dispatchers.FlagScopeLocal,
	}

	ScriptFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--script"},
		Description: "Print the completion script itself",
		Scope:       dispatchers.FlagScopeLocal,
	}

	HistoryFailedFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--failed"},
		Description: "Only show commands that failed",
		Scope:       dispatchers.FlagScopeLocal,
	}
)

// RootFlags are accepted on every command.
var RootFlags = []dispatchers.FlagDescriptor{
	HelpFlag,
	VersionFlag,
	NoColorFlag,
	NoPagerFlag,
	PagerFlag,
	SchemaFlag,
}
