package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_BasicAndComments(t *testing.T) {
	cfg := Parse([]string{
		"# slash configuration",
		"",
		"theme=dark",
		"enable_log=false # toggled off",
		"pager=\"less -FRSX\"",
		"not a key value line",
	})

	require.Equal(t, "dark", cfg["theme"])
	require.Equal(t, "false", cfg["enable_log"])
	require.Equal(t, "less -FRSX", cfg["pager"])
	require.Len(t, cfg, 3)
}

func TestParse_QuotedValueKeepsHash(t *testing.T) {
	cfg := Parse([]string{`pager="less -p#"`})
	require.Equal(t, "less -p#", cfg["pager"])
}

func TestSet_ReplacesAndPreservesInlineComment(t *testing.T) {
	lines := []string{"theme=default # current theme"}

	lines, replaced := Set(lines, "theme", "dark")
	require.True(t, replaced)
	require.Equal(t, "theme=dark # current theme", lines[0])
}

func TestSet_AppendsMissingKey(t *testing.T) {
	lines, replaced := Set([]string{"theme=default"}, "locale", "es")
	require.False(t, replaced)
	require.Equal(t, "locale=es", lines[len(lines)-1])
}

func TestUnset_RemovesOnlyMatchingKey(t *testing.T) {
	lines := []string{"# header", "theme=dark", "locale=en"}

	lines, removed := Unset(lines, "theme")
	require.True(t, removed)
	require.Equal(t, []string{"# header", "locale=en"}, lines)

	_, removed = Unset(lines, "missing")
	require.False(t, removed)
}

func TestKeys_HaveDefaults(t *testing.T) {
	for _, key := range Keys {
		_, ok := Defaults[key.Name]
		require.True(t, ok, "key %s has no default", key.Name)
	}
}
