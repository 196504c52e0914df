package config

import (
	"github.com/relay-tools/slashcmd/internal/config"
	"github.com/relay-tools/slashcmd/internal/dispatchers"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	// Print in declared key order rather than map order.
	for _, key := range config.Keys {
		value, exists := configMap[key.Name]
		if !exists || value == "" {
			continue
		}
		_, _ = deps.Printf("%s=%s\n", key.Name, value)
	}

	return nil
}
