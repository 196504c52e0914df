package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/relay-tools/slashcmd/internal/actions/version"
	"github.com/relay-tools/slashcmd/internal/cli"
	"github.com/relay-tools/slashcmd/internal/completions"
	"github.com/relay-tools/slashcmd/internal/config"
	"github.com/relay-tools/slashcmd/internal/dispatchers"
	"github.com/relay-tools/slashcmd/internal/ui"
	"github.com/relay-tools/slashcmd/internal/ui/style"
	"github.com/relay-tools/slashcmd/internal/usage"
)

func main() {
	args := os.Args[1:]

	rawFlags := extractFlags(args)
	commands := extractCommands(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	if flags.Has("--version") {
		_ = version.Show(nil, flags)
		return
	}

	// Enable styling if stdout is a terminal and --no-color is not set
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	styleCfg, _ := config.GetAll()
	style.Init(enableColor, styleCfg)

	// Generated help goes through the pager, honoring the pager flags.
	var writerOpts []ui.WriterOption
	if flags.Has("--no-pager") {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if pager := flags.String("--pager", ""); pager != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(pager))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))
	writer := ui.NewWriter(writerOpts...)
	dispatchers.SetPager(writer.Pager)

	root := cli.BuildTree()
	completions.RegisterCommandTree(root)

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		if ue, ok := err.(*usage.Error); ok {
			fmt.Fprintln(os.Stderr, ue.Error())
			os.Exit(ue.GetExitCode())
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		if ue, ok := err.(*usage.Error); ok {
			fmt.Fprintln(os.Stderr, ue.Error())
			os.Exit(ue.GetExitCode())
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	// Exit with non-zero code if resolution requests it (e.g., slash with no args)
	if res.ExitCode != 0 {
		os.Exit(res.ExitCode)
	}
}

func extractFlags(args []string) []string {
	var flags []string
	for _, a := range args {
		if len(a) > 0 && a[0] == '-' {
			flags = append(flags, a)
		}
	}
	return flags
}

func extractCommands(args []string) []string {
	var cmds []string
	for _, a := range args {
		if len(a) > 0 && a[0] != '-' {
			cmds = append(cmds, a)
		}
	}
	return cmds
}
