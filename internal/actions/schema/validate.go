// Package schema holds actions for inspecting schema files.
package schema

import (
	"fmt"

	"github.com/relay-tools/slashcmd/internal/client"
	"github.com/relay-tools/slashcmd/internal/config"
	"github.com/relay-tools/slashcmd/internal/dispatchers"
	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/usage"
)

type Deps struct {
	Load      func(string) (*client.SchemaFile, error)
	ConfigGet func(string) (string, bool)
	Printf    func(string, ...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Load:      client.LoadSchemaFile,
		ConfigGet: config.Get,
		Printf:    fmt.Printf,
	}
}

func Validate(args []string, flags *dispatchers.ParsedFlags) error {
	return validate(args, flags, DefaultDeps())
}

// validate loads a schema file and reports what it contains. The path
// defaults to the configured schema_path.
func validate(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else if configured, ok := deps.ConfigGet("schema_path"); ok {
		path = configured
	}
	if path == "" {
		return usage.MissingArgument("path")
	}

	sf, err := deps.Load(path)
	if err != nil {
		return &usage.Error{
			Kind:    usage.ErrInvalidSchema,
			Message: fmt.Sprintf("slash: schema %s is invalid: %v", path, err),
		}
	}

	_, _ = deps.Printf("%s: ok\n", path)
	_, _ = deps.Printf("  bindings: %d\n", countBindings(sf))
	_, _ = deps.Printf("  forms:    %d\n", len(sf.Forms))
	_, _ = deps.Printf("  lookups:  %d\n", len(sf.Lookups))
	_, _ = deps.Printf("  users:    %d\n", len(sf.Users))
	_, _ = deps.Printf("  channels: %d\n", len(sf.Channels))
	return nil
}

// countBindings counts every node in the binding tree.
func countBindings(sf *client.SchemaFile) int {
	var walk func(bs []domain.Binding) int
	walk = func(bs []domain.Binding) int {
		n := 0
		for _, b := range bs {
			n += 1 + walk(b.Bindings)
		}
		return n
	}
	return walk(sf.Bindings)
}
