package dispatchers

// RootSpec describes the root of a command tree.
type RootSpec struct {
	Name    string
	Summary string
	Usage   string
	Flags   []FlagDescriptor
}

// GroupSpec describes an intermediate node holding subcommands.
type GroupSpec struct {
	Name    string
	Parent  *DispatchNode
	Summary string
	Usage   string
}

// CommandSpec describes a leaf command.
type CommandSpec struct {
	Name        string
	Parent      *DispatchNode
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Action      CommandFunc
	Category    CommandCategory
}

func NewNode(
	name string,
	parent *DispatchNode,
	summary string,
	usage string,
	flags []FlagDescriptor,
	args []ArgSpec,
	action CommandFunc,
) *DispatchNode {

	node := &DispatchNode{
		Name:     name,
		Summary:  summary,
		Usage:    usage,
		Flags:    flags,
		Args:     args,
		Action:   action,
		Children: make(map[string]*DispatchNode),
	}

	if parent == nil {
		node.Path = []string{name}
	} else {
		node.Path = append(parent.Path, name)
		parent.Children[name] = node
	}

	return node
}

func Root(spec RootSpec) *DispatchNode {
	return NewNode(
		spec.Name,
		nil,
		spec.Summary,
		spec.Usage,
		spec.Flags,
		nil,
		nil,
	)
}

func Group(spec GroupSpec) *DispatchNode {
	return NewNode(
		spec.Name,
		spec.Parent,
		spec.Summary,
		spec.Usage,
		nil,
		nil,
		nil,
	)
}

func Command(spec CommandSpec) *DispatchNode {
	node := NewNode(
		spec.Name,
		spec.Parent,
		spec.Summary,
		spec.Usage,
		spec.Flags,
		spec.Args,
		spec.Action,
	)

	node.Description = spec.Description
	node.Category = spec.Category
	return node
}
