package config

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relay-tools/slashcmd/internal/usage"
)

type fakeStore struct {
	values map[string]string
	sets   map[string]string
	unsets []string
}

func newFakeDeps(store *fakeStore, out *strings.Builder) Deps {
	return Deps{
		Get: func(key string) (string, bool) {
			v, ok := store.values[key]
			return v, ok
		},
		GetAll: func() (map[string]string, error) {
			return store.values, nil
		},
		Set: func(key, value string) error {
			store.sets[key] = value
			return nil
		},
		Unset: func(key string) error {
			store.unsets = append(store.unsets, key)
			return nil
		},
		Printf: func(format string, args ...any) (int, error) {
			return fmt.Fprintf(out, format, args...)
		},
		Println: func(args ...any) (int, error) {
			return fmt.Fprintln(out, args...)
		},
	}
}

func TestGet_PrintsValue(t *testing.T) {
	store := &fakeStore{values: map[string]string{"locale": "en"}, sets: map[string]string{}}
	var out strings.Builder

	err := get([]string{"locale"}, nil, newFakeDeps(store, &out))
	require.NoError(t, err)
	require.Equal(t, "en\n", out.String())
}

func TestGet_UnknownKeyErrors(t *testing.T) {
	store := &fakeStore{values: map[string]string{}, sets: map[string]string{}}
	var out strings.Builder

	err := get([]string{"bogus"}, nil, newFakeDeps(store, &out))
	require.Error(t, err)

	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, usage.ErrInvalidConfigKey, ue.Kind)
}

func TestGet_MissingArg(t *testing.T) {
	store := &fakeStore{values: map[string]string{}, sets: map[string]string{}}
	var out strings.Builder

	err := get(nil, nil, newFakeDeps(store, &out))
	require.Error(t, err)
}

func TestSet_StoresKnownKey(t *testing.T) {
	store := &fakeStore{values: map[string]string{}, sets: map[string]string{}}
	var out strings.Builder

	err := set([]string{"theme", "mono"}, nil, newFakeDeps(store, &out))
	require.NoError(t, err)
	require.Equal(t, "mono", store.sets["theme"])
}

func TestSet_RejectsUnknownKey(t *testing.T) {
	store := &fakeStore{values: map[string]string{}, sets: map[string]string{}}
	var out strings.Builder

	err := set([]string{"bogus", "x"}, nil, newFakeDeps(store, &out))
	require.Error(t, err)
	require.Empty(t, store.sets)
}

func TestSet_MissingValueArg(t *testing.T) {
	store := &fakeStore{values: map[string]string{}, sets: map[string]string{}}
	var out strings.Builder

	err := set([]string{"theme"}, nil, newFakeDeps(store, &out))
	require.Error(t, err)
	require.Contains(t, err.Error(), "value")
}

func TestUnset_RemovesKnownKey(t *testing.T) {
	store := &fakeStore{values: map[string]string{}, sets: map[string]string{}}
	var out strings.Builder

	err := unset([]string{"theme"}, nil, newFakeDeps(store, &out))
	require.NoError(t, err)
	require.Equal(t, []string{"theme"}, store.unsets)
}

func TestList_PrintsInDeclaredOrder(t *testing.T) {
	store := &fakeStore{values: map[string]string{
		"theme":  "mono",
		"locale": "en",
	}, sets: map[string]string{}}
	var out strings.Builder

	err := list(nil, nil, newFakeDeps(store, &out))
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "locale=en")
	require.Contains(t, text, "theme=mono")
	require.Less(t, strings.Index(text, "locale="), strings.Index(text, "theme="))
}
