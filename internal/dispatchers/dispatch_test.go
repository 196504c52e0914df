package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relay-tools/slashcmd/internal/usage"
)

func buildTestTree(executed *string) *DispatchNode {
	root := Root(RootSpec{
		Name:    "slash",
		Summary: "test tree",
		Usage:   "slash [command]",
		Flags: []FlagDescriptor{
			{Names: []string{"--help", "-h"}, Scope: FlagScopeGlobal},
			{Names: []string{"--no-color"}, Scope: FlagScopeGlobal},
		},
	})

	record := func(name string) CommandFunc {
		return func(args []string, flags *ParsedFlags) error {
			*executed = name
			return nil
		}
	}

	Command(CommandSpec{
		Name:    "exec",
		Parent:  root,
		Summary: "run a command",
		Usage:   "slash exec <command>",
		Args:    []ArgSpec{{Name: "command", Required: true}},
		Action:  record("exec"),
	})

	cfg := Group(GroupSpec{Name: "config", Parent: root, Summary: "configuration", Usage: "slash config <command>"})
	Command(CommandSpec{
		Name:    "get",
		Parent:  cfg,
		Summary: "get a value",
		Usage:   "slash config get <key>",
		Args:    []ArgSpec{{Name: "key", Required: true}},
		Action:  record("config get"),
	})
	Command(CommandSpec{
		Name:    "list",
		Parent:  cfg,
		Summary: "list values",
		Usage:   "slash config list",
		Flags:   []FlagDescriptor{{Names: []string{"--all"}, Scope: FlagScopeLocal}},
		Action:  record("config list"),
	})

	return root
}

func TestDispatch_ResolvesLeafWithArgs(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	res, err := Dispatch(root, []string{"exec", "/jira", "issue"}, NewParsedFlags(nil))
	require.NoError(t, err)
	require.Equal(t, []string{"/jira", "issue"}, res.Args)

	require.NoError(t, res.Execute(res.Args, res.Flags))
	require.Equal(t, "exec", executed)
}

func TestDispatch_ResolvesNestedCommand(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	res, err := Dispatch(root, []string{"config", "get", "locale"}, NewParsedFlags(nil))
	require.NoError(t, err)

	require.NoError(t, res.Execute(res.Args, res.Flags))
	require.Equal(t, "config get", executed)
}

func TestDispatch_UnknownTopLevelSuggestsSimilar(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	_, err := Dispatch(root, []string{"exce"}, NewParsedFlags(nil))
	require.Error(t, err)

	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Contains(t, ue.Message, "exce")
	require.Contains(t, ue.Message, "exec")
}

func TestDispatch_UnknownSubcommandOfGroupErrors(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	_, err := Dispatch(root, []string{"config", "bogus"}, NewParsedFlags(nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config bogus")
}

func TestDispatch_MissingRequiredArg(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	_, err := Dispatch(root, []string{"config", "get"}, NewParsedFlags(nil))
	require.Error(t, err)

	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, 2, ue.GetExitCode())
	require.Contains(t, ue.Message, "key")
}

func TestDispatch_InvalidFlagRejected(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	_, err := Dispatch(root, []string{"exec", "/x"}, NewParsedFlags([]string{"--bogus"}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "--bogus")
}

func TestDispatch_LocalFlagAcceptedOnItsCommand(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	res, err := Dispatch(root, []string{"config", "list"}, NewParsedFlags([]string{"--all"}))
	require.NoError(t, err)
	require.NoError(t, res.Execute(res.Args, res.Flags))
	require.Equal(t, "config list", executed)
}

func TestDispatch_GlobalFlagAcceptedEverywhere(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	_, err := Dispatch(root, []string{"exec", "/x"}, NewParsedFlags([]string{"--no-color"}))
	require.NoError(t, err)
}

func TestDispatch_RootWithNoTokensShowsHelpWithExitCode(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	res, err := Dispatch(root, nil, NewParsedFlags(nil))
	require.NoError(t, err)
	require.Equal(t, 1, res.ExitCode)
	require.NotNil(t, res.Execute)
}

func TestDispatch_HelpFlagResolvesToHelp(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	res, err := Dispatch(root, []string{"exec"}, NewParsedFlags([]string{"--help"}))
	require.NoError(t, err)
	require.NotNil(t, res.Execute)
	require.Equal(t, "exec", res.Node.Name)
}

func TestDispatch_HelpCommandTargetsFollowingTokens(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	res, err := Dispatch(root, []string{"help", "config", "get"}, NewParsedFlags(nil))
	require.NoError(t, err)
	require.Equal(t, "get", res.Node.Name)
}

func TestHelpAction_RendersRootCategories(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)

	var captured string
	SetPager(func(s string) { captured = s })
	defer SetPager(func(s string) {})

	require.NoError(t, HelpAction(root, root)(nil, NewParsedFlags(nil)))
	require.Contains(t, captured, "USAGE")
	require.Contains(t, captured, "exec")
	require.Contains(t, captured, "config get")
}

func TestHelpAction_RendersCommandFlagsAndArgs(t *testing.T) {
	var executed string
	root := buildTestTree(&executed)
	node := root.Children["config"].Children["list"]

	var captured string
	SetPager(func(s string) { captured = s })
	defer SetPager(func(s string) {})

	require.NoError(t, HelpAction(node, root)(nil, NewParsedFlags(nil)))
	require.Contains(t, captured, "slash config list")
	require.Contains(t, captured, "--all")
}
