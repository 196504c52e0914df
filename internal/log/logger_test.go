package log

import (
	"os"
	"path/filepath"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesLeveledLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slash.log")

	l, err := New(path, clog.DebugLevel)
	require.NoError(t, err)

	l.Info("parsed %s", "/jira")
	l.Error("boom")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "parsed /jira")
	require.Contains(t, string(data), "boom")
}

func TestNew_RespectsMinLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slash.log")

	l, err := New(path, clog.WarnLevel)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Warn("visible")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "visible")
}

func TestNew_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slash.log")

	l, err := New(path, clog.DebugLevel)
	require.NoError(t, err)
	defer l.Close()

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, clog.DebugLevel, ParseLevel("debug"))
	require.Equal(t, clog.ErrorLevel, ParseLevel("ERROR"))
	require.Equal(t, clog.WarnLevel, ParseLevel("nonsense"))
}

func TestNopLogger(t *testing.T) {
	var l NopLogger
	l.Debug("x")
	l.Info("x")
	require.NoError(t, l.Close())
}
