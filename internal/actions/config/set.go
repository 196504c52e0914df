package config

import (
	"github.com/relay-tools/slashcmd/internal/dispatchers"
	"github.com/relay-tools/slashcmd/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return set(args, flags, DefaultDeps())
}

func set(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		if len(args) < 1 {
			return usage.MissingArgument("key")
		}
		return usage.MissingArgument("value")
	}

	key, value := args[0], args[1]
	if !isKnownKey(key) {
		return usage.InvalidConfigKey(key)
	}

	return deps.Set(key, value)
}
