// Package completions holds the action that prints shell completion
// scripts and setup instructions.
package completions

import (
	"fmt"
	"io"
	"os"

	"github.com/relay-tools/slashcmd/internal/completions"
	"github.com/relay-tools/slashcmd/internal/dispatchers"
	"github.com/relay-tools/slashcmd/internal/usage"
)

type Deps struct {
	Out    io.Writer
	Detect func() completions.Shell
}

func DefaultDeps() Deps {
	return Deps{
		Out:    os.Stdout,
		Detect: completions.DetectShell,
	}
}

func Show(args []string, flags *dispatchers.ParsedFlags) error {
	return show(args, flags, DefaultDeps())
}

// show prints the completion script with --script, otherwise the line to
// add to the shell rc file.
func show(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	shell := deps.Detect()
	if len(args) > 0 {
		shell = completions.ParseShell(args[0])
	}
	if shell == completions.ShellUnknown {
		return &usage.Error{
			Kind:    usage.ErrMissingArgument,
			Message: "slash: could not detect your shell. Pass one of: bash, zsh, fish.",
		}
	}

	if flags.Has("--script") {
		return completions.PrintCompletions(deps.Out, shell)
	}

	fmt.Fprintf(deps.Out, "Add this line to %s:\n\n", completions.RcFile(shell))
	fmt.Fprintf(deps.Out, "    %s\n", completions.SourceInstructions(shell))
	if path := completions.AutoInstallPath(shell); path != "" {
		fmt.Fprintf(deps.Out, "\nOr install for auto-loading:\n\n")
		fmt.Fprintf(deps.Out, "    %s completions %s --script > %s\n",
			completions.GetBinaryName(), shell, path)
	}
	return nil
}
