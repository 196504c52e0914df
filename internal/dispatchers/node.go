// Package dispatchers resolves CLI tokens against a command tree: it walks
// child nodes, validates flags and arguments, and produces either an action
// to execute or generated help.
package dispatchers

// CommandFunc is the signature of an executable command action.
type CommandFunc func(args []string, flags *ParsedFlags) error

// Resolution is the outcome of dispatching a token list.
type Resolution struct {
	Node     *DispatchNode
	Args     []string
	Flags    *ParsedFlags
	Execute  CommandFunc
	ExitCode int
}

type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Scope       FlagScope
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
	Variadic    bool
}

type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
}
