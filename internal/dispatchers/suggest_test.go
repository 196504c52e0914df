package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func suggestTree() *DispatchNode {
	root := Root(RootSpec{Name: "slash"})
	for _, name := range []string{"exec", "repl", "history", "config", "version"} {
		Command(CommandSpec{Name: name, Parent: root, Action: func([]string, *ParsedFlags) error { return nil }})
	}
	return root
}

func TestFindSimilarCommands_ClosestFirst(t *testing.T) {
	got := FindSimilarCommands("exce", suggestTree(), 3)
	require.NotEmpty(t, got)
	require.Equal(t, "exec", got[0])
}

func TestFindSimilarCommands_ExcludesExactAndDistant(t *testing.T) {
	got := FindSimilarCommands("exec", suggestTree(), 3)
	require.NotContains(t, got, "exec")

	got = FindSimilarCommands("zzzzzzzzzz", suggestTree(), 3)
	require.Empty(t, got)
}

func TestFindSimilarCommands_RespectsLimit(t *testing.T) {
	got := FindSimilarCommands("rep", suggestTree(), 1)
	require.Len(t, got, 1)
}

func TestCollectAllCommands_IncludesNestedPaths(t *testing.T) {
	root := Root(RootSpec{Name: "slash"})
	cfg := Group(GroupSpec{Name: "config", Parent: root})
	Command(CommandSpec{Name: "get", Parent: cfg, Action: func([]string, *ParsedFlags) error { return nil }})

	got := CollectAllCommands(root, "")
	require.Contains(t, got, "config")
	require.Contains(t, got, "config get")
}
