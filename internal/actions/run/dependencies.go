// Package run holds the actions that drive the command engine: the
// interactive repl, one-shot execution, and suggestion listing.
package run

import (
	"os"

	"golang.org/x/term"

	"github.com/relay-tools/slashcmd/internal/app"
	"github.com/relay-tools/slashcmd/internal/dispatchers"
	"github.com/relay-tools/slashcmd/internal/domain"
)

type Deps struct {
	App        *domain.Application
	CC         domain.CallContext
	SchemaPath string
	Close      func()
}

// DefaultDeps wires a full application, honoring the global output flags.
func DefaultDeps(flags *dispatchers.ParsedFlags) (Deps, error) {
	opts := app.DefaultOptions()
	if flags.Has("--no-pager") {
		opts.PagerDisabled = true
	}
	if pager := flags.String("--pager", ""); pager != "" {
		opts.PagerOverride = pager
	}
	if schema := flags.String("--schema", ""); schema != "" {
		opts.SchemaPath = schema
	}
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")

	a, err := app.New(opts)
	if err != nil {
		return Deps{}, err
	}

	return Deps{
		App:        a,
		CC:         app.CallContext(a.Config),
		SchemaPath: opts.SchemaPath,
		Close:      func() { _ = app.Close(a) },
	}, nil
}
