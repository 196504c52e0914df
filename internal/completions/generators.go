package completions

import (
	"fmt"
	"sort"
	"strings"
)

func binaryFromCommands(commands []CommandInfo) string {
	if len(commands) > 0 && len(commands[0].Path) > 0 {
		return commands[0].Path[0]
	}
	return "slash"
}

func wordsFor(cmd CommandInfo) []string {
	words := append([]string{}, cmd.Subcommands...)
	sort.Strings(words)
	for _, f := range cmd.Flags {
		words = append(words, f.Names...)
	}
	return words
}

// GenerateBash produces a bash completion script. Each command path gets a
// case entry offering its subcommands and flags.
func GenerateBash(commands []CommandInfo) string {
	bin := binaryFromCommands(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n", bin)
	fmt.Fprintf(&b, "_%s_completions() {\n", bin)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    local path=\"${COMP_WORDS[*]:0:COMP_CWORD}\"\n")
	b.WriteString("    local opts=\"\"\n")
	b.WriteString("    case \"$path\" in\n")

	for _, cmd := range commands {
		words := wordsFor(cmd)
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        \"%s\")\n", strings.Join(cmd.Path, " "))
		fmt.Fprintf(&b, "            opts=\"%s\"\n", strings.Join(words, " "))
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("    COMPREPLY=( $(compgen -W \"$opts\" -- \"$cur\") )\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", bin, bin)
	return b.String()
}

// GenerateZsh produces a zsh completion script using _describe so command
// summaries show alongside names.
func GenerateZsh(commands []CommandInfo) string {
	bin := binaryFromCommands(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", bin)

	fmt.Fprintf(&b, "_%s_commands() {\n", bin)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	if root := FindCommand(commands, []string{bin}); root != nil {
		subs := append([]string{}, root.Subcommands...)
		sort.Strings(subs)
		for _, sub := range subs {
			summary := ""
			if c := FindCommand(commands, []string{bin, sub}); c != nil {
				summary = c.Summary
			}
			fmt.Fprintf(&b, "        '%s:%s'\n", sub, zshEscape(summary))
		}
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", bin)
	fmt.Fprintf(&b, "    _%s_commands\n", bin)
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "_%s \"$@\"\n", bin)
	return b.String()
}

// GenerateFish produces a fish completion script.
func GenerateFish(commands []CommandInfo) string {
	bin := binaryFromCommands(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n", bin)

	for _, cmd := range commands {
		switch len(cmd.Path) {
		case 1:
			// root: offer top-level subcommands
			subs := append([]string{}, cmd.Subcommands...)
			sort.Strings(subs)
			for _, sub := range subs {
				summary := ""
				if c := FindCommand(commands, []string{bin, sub}); c != nil {
					summary = c.Summary
				}
				fmt.Fprintf(&b, "complete -c %s -f -n '__fish_use_subcommand' -a '%s' -d '%s'\n",
					bin, sub, fishEscape(summary))
			}
		case 2:
			subs := append([]string{}, cmd.Subcommands...)
			sort.Strings(subs)
			for _, sub := range subs {
				summary := ""
				childPath := append(append([]string{}, cmd.Path...), sub)
				if c := FindCommand(commands, childPath); c != nil {
					summary = c.Summary
				}
				fmt.Fprintf(&b, "complete -c %s -f -n '__fish_seen_subcommand_from %s' -a '%s' -d '%s'\n",
					bin, cmd.Name, sub, fishEscape(summary))
			}
		}
	}
	return b.String()
}

func zshEscape(s string) string {
	return strings.ReplaceAll(s, "'", "'\\''")
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
