package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/relay-tools/slashcmd/internal/ui/style"
)

// pagerFunc displays generated help. Injected from main so this package does
// not depend on the wired application.
var (
	pagerFunc   = func(content string) { fmt.Print(content) }
	pagerFuncMu sync.RWMutex
)

// SetPager sets the function used to display help output.
func SetPager(fn func(string)) {
	pagerFuncMu.Lock()
	defer pagerFuncMu.Unlock()
	pagerFunc = fn
}

func getPager() func(string) {
	pagerFuncMu.RLock()
	defer pagerFuncMu.RUnlock()
	return pagerFunc
}

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	// interactive
	"repl": 1,
	// run commands
	"exec":    1,
	"suggest": 2,
	// inspect state
	"history":         1,
	"schema validate": 2,
	"version":         3,
	// config commands
	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
	"completions":  5,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	// The command part ends at the first [ or <
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
		return
	}

	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

func sortByDisplayOrder(cmds []*DispatchNode) {
	sort.Slice(cmds, func(i, j int) bool {
		nameI := strings.Join(cmds[i].Path[1:], " ")
		nameJ := strings.Join(cmds[j].Path[1:], " ")
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		if hasI && hasJ {
			return orderI < orderJ
		}
		if hasI {
			return true
		}
		if hasJ {
			return false
		}
		return nameI < nameJ
	})
}

// HelpAction generates help output for a command node.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		var out bytes.Buffer

		if node == root {
			// Root help: git-like format
			out.WriteString(root.Name + " - ")
			out.WriteString(node.Summary)
			out.WriteString("\n\n")

			out.WriteString("USAGE\n   ")
			out.WriteString(formatUsage(node.Usage))
			out.WriteString("\n\n")

			grouped := make(map[CommandCategory][]*DispatchNode)

			var leaves []*DispatchNode
			for _, child := range root.Children {
				collectLeafCommands(child, &leaves)
			}

			for _, cmd := range leaves {
				grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
			}

			for _, cat := range categoryOrder {
				cmds := grouped[cat]
				if len(cmds) == 0 {
					continue
				}

				out.WriteString(cat.String())
				out.WriteString("\n")

				sortByDisplayOrder(cmds)

				for _, cmd := range cmds {
					displayName := strings.Join(cmd.Path[1:], " ")
					fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", displayName)), cmd.Summary)
				}
				out.WriteString("\n")
			}

			fmt.Fprintf(&out, "See '%s help <command>' for detailed help on a specific command.\n", root.Name)
		} else {
			// Subcommand help
			out.WriteString(strings.Join(node.Path, " "))
			if node.Summary != "" {
				out.WriteString(" - ")
				out.WriteString(node.Summary)
			}
			out.WriteString("\n\n")

			out.WriteString("USAGE\n   ")
			out.WriteString(formatUsage(node.Usage))
			out.WriteString("\n\n")

			if node.Description != "" {
				out.WriteString(node.Description)
				out.WriteString("\n\n")
			}

			if len(node.Children) > 0 {
				out.WriteString("COMMANDS\n")

				children := make([]*DispatchNode, 0, len(node.Children))
				for _, child := range node.Children {
					children = append(children, child)
				}
				sortByDisplayOrder(children)

				for _, child := range children {
					fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
				}
				out.WriteString("\n")
			}

			if len(node.Args) > 0 {
				out.WriteString("ARGUMENTS\n")
				for _, a := range node.Args {
					name := a.Name
					if !a.Required {
						name = "[" + name + "]"
					}
					fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", name)), a.Description)
				}
				out.WriteString("\n")
			}

			if len(node.Flags) > 0 {
				out.WriteString("FLAGS\n")
				for _, f := range node.Flags {
					name := strings.Join(f.Names, ", ")
					if f.ValueHint != "" {
						name = name + " " + f.ValueHint
					}
					fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
				}
				out.WriteString("\n")
			}

			fmt.Fprintf(&out, "See '%s help <command>' to read about a specific command.\n", root.Name)
		}

		getPager()(out.String())
		return nil
	}
}
