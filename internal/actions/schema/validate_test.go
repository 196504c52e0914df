package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relay-tools/slashcmd/internal/client"
	"github.com/relay-tools/slashcmd/internal/usage"
)

func newValidateDeps(out *strings.Builder, configured string) Deps {
	return Deps{
		Load: client.LoadSchemaFile,
		ConfigGet: func(key string) (string, bool) {
			if key == "schema_path" && configured != "" {
				return configured, true
			}
			return "", false
		},
		Printf: func(format string, args ...any) (int, error) {
			return fmt.Fprintf(out, format, args...)
		},
	}
}

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestValidate_ReportsCounts(t *testing.T) {
	path := writeSchema(t, `{
		"bindings": [{"label": "a", "bindings": [{"label": "b"}]}],
		"lookups": {"f": [{"label": "X", "value": "x"}]},
		"users": [{"id": "u1", "username": "alice"}]
	}`)
	var out strings.Builder

	err := validate([]string{path}, nil, newValidateDeps(&out, ""))
	require.NoError(t, err)
	require.Contains(t, out.String(), "ok")
	require.Contains(t, out.String(), "bindings: 2")
	require.Contains(t, out.String(), "users:    1")
}

func TestValidate_FallsBackToConfiguredPath(t *testing.T) {
	path := writeSchema(t, `{"bindings": [{"label": "a"}]}`)
	var out strings.Builder

	err := validate(nil, nil, newValidateDeps(&out, path))
	require.NoError(t, err)
	require.Contains(t, out.String(), path)
}

func TestValidate_InvalidSchemaErrors(t *testing.T) {
	path := writeSchema(t, `{"bindings": []}`)
	var out strings.Builder

	err := validate([]string{path}, nil, newValidateDeps(&out, ""))
	require.Error(t, err)

	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, usage.ErrInvalidSchema, ue.Kind)
}

func TestValidate_NoPathAnywhere(t *testing.T) {
	var out strings.Builder

	err := validate(nil, nil, newValidateDeps(&out, ""))
	require.Error(t, err)
}
