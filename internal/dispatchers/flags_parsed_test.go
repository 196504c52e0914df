package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags_Has(t *testing.T) {
	f := NewParsedFlags([]string{"--no-color", "--limit=5"})

	require.True(t, f.Has("--no-color"))
	require.False(t, f.Has("--limit")) // value flags don't match Has
	require.False(t, f.Has("--missing"))
}

func TestParsedFlags_String(t *testing.T) {
	f := NewParsedFlags([]string{"--pager=less", "--schema=/tmp/s.json"})

	require.Equal(t, "less", f.String("--pager", "cat"))
	require.Equal(t, "/tmp/s.json", f.String("--schema", ""))
	require.Equal(t, "cat", f.String("--missing", "cat"))
}

func TestParsedFlags_Int(t *testing.T) {
	f := NewParsedFlags([]string{"--limit=25", "--bad=abc"})

	require.Equal(t, 25, f.Int("--limit", 10))
	require.Equal(t, 10, f.Int("--bad", 10))
	require.Equal(t, 10, f.Int("--missing", 10))
}
