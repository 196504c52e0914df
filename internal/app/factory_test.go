package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relay-tools/slashcmd/internal/log"
)

type fakeConfig struct {
	values map[string]string
}

func (f *fakeConfig) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeConfig) GetAll() (map[string]string, error) { return f.values, nil }
func (f *fakeConfig) Set(string, string) error           { return nil }
func (f *fakeConfig) Unset(string) error                 { return nil }

func TestNewForTesting_WiresFixture(t *testing.T) {
	a := NewForTesting()

	require.NotNil(t, a.Schema)
	require.NotNil(t, a.Client)
	require.NotNil(t, a.Users)
	require.NotNil(t, a.Channels)
	require.NotEmpty(t, a.Schema.CommandBindings())
	require.NoError(t, Close(a))
}

func TestCallContext_ReadsConfiguredIDs(t *testing.T) {
	cfg := &fakeConfig{values: map[string]string{
		"team_id":    "t1",
		"channel_id": "c1",
	}}

	cc := CallContext(cfg)
	require.Equal(t, "t1", cc.TeamID)
	require.Equal(t, "c1", cc.ChannelID)
}

func TestLoadFixture_MissingPathFallsBackToEmbedded(t *testing.T) {
	f, err := loadFixture(filepath.Join(t.TempDir(), "nope.json"), log.NopLogger{})
	require.NoError(t, err)
	require.Equal(t, "jira", f.CommandBindings()[0].Label)
}

func TestLoadFixture_ReadsSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bindings": [{"label": "custom"}]}`), 0600))

	f, err := loadFixture(path, log.NopLogger{})
	require.NoError(t, err)
	require.Equal(t, "custom", f.CommandBindings()[0].Label)
}

func TestLoadFixture_BadSchemaFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bindings": []}`), 0600))

	_, err := loadFixture(path, log.NopLogger{})
	require.Error(t, err)
}
