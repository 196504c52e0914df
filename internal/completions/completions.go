// Package completions generates shell completion scripts from the dispatch
// tree so every subcommand and flag completes without hand-maintained lists.
package completions

import "github.com/relay-tools/slashcmd/internal/dispatchers"

// CommandInfo is one command extracted from the dispatch tree.
type CommandInfo struct {
	Name        string
	Path        []string // full path from root, e.g. ["slash", "config", "set"]
	Summary     string
	Subcommands []string
	Flags       []FlagInfo
}

// FlagInfo describes a flag for completion purposes.
type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
}

// ExtractCommands walks the dispatch tree and extracts every command.
func ExtractCommands(root *dispatchers.DispatchNode) []CommandInfo {
	var commands []CommandInfo
	extractNode(root, &commands)
	return commands
}

func extractNode(node *dispatchers.DispatchNode, commands *[]CommandInfo) {
	if node == nil {
		return
	}

	var subcommands []string
	for name := range node.Children {
		subcommands = append(subcommands, name)
	}

	var flags []FlagInfo
	for _, f := range node.Flags {
		flags = append(flags, FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.ValueHint != "",
		})
	}

	*commands = append(*commands, CommandInfo{
		Name:        node.Name,
		Path:        node.Path,
		Summary:     node.Summary,
		Subcommands: subcommands,
		Flags:       flags,
	})

	for _, child := range node.Children {
		extractNode(child, commands)
	}
}

// FindCommand finds a command by its full path.
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if pathsEqual(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
