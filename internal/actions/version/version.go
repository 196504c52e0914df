// Package version prints build information.
package version

import (
	"fmt"
	"runtime"

	"github.com/relay-tools/slashcmd/internal/dispatchers"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func Show(args []string, flags *dispatchers.ParsedFlags) error {
	return show(args, flags, fmt.Printf)
}

func show(_ []string, _ *dispatchers.ParsedFlags, printf func(string, ...any) (int, error)) error {
	_, _ = printf("slash version %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	return nil
}
