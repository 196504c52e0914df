package config

import (
	"github.com/relay-tools/slashcmd/internal/dispatchers"
	"github.com/relay-tools/slashcmd/internal/usage"
)

func Unset(args []string, flags *dispatchers.ParsedFlags) error {
	return unset(args, flags, DefaultDeps())
}

func unset(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !isKnownKey(key) {
		return usage.InvalidConfigKey(key)
	}

	return deps.Unset(key)
}
