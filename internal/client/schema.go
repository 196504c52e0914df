// Package client provides the fixture collaborator the host app runs
// against: a JSON-defined binding tree plus canned forms, lookup options,
// users, and channels. It implements the engine's SchemaSource, Client,
// UserSource, and ChannelSource contracts, so the engine is exercised end
// to end without a server.
package client

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/relay-tools/slashcmd/internal/domain"
)

//go:embed demo_schema.json
var demoSchema []byte

// SchemaFile is the decoded fixture document.
type SchemaFile struct {
	// Bindings is the top-level command tree.
	Bindings []domain.Binding `json:"bindings"`

	// Forms backs form-fetch calls, keyed by call path.
	Forms map[string]*domain.Form `json:"forms,omitempty"`

	// Lookups backs dynamic-select lookup calls, keyed by field name.
	Lookups map[string][]domain.SelectOption `json:"lookups,omitempty"`

	Users    []domain.User    `json:"users,omitempty"`
	Channels []domain.Channel `json:"channels,omitempty"`
}

// LoadSchemaFile reads and decodes a fixture document from disk.
func LoadSchemaFile(path string) (*SchemaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	return decodeSchema(data)
}

// LoadEmbedded decodes the built-in demo schema.
func LoadEmbedded() (*SchemaFile, error) {
	return decodeSchema(demoSchema)
}

func decodeSchema(data []byte) (*SchemaFile, error) {
	var sf SchemaFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	if len(sf.Bindings) == 0 {
		return nil, fmt.Errorf("schema has no bindings")
	}
	return &sf, nil
}
