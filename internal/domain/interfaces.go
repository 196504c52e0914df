package domain

import (
	"context"
	"io"
	"time"
)

// SchemaSource provides the top-level command bindings currently known.
// An empty result is valid and surfaces downstream as a "no bindings" error.
type SchemaSource interface {
	// CommandBindings returns all top-level bindings, grouped by owning app.
	CommandBindings() []Binding
}

// Client performs remote invocations against an app backend: form fetches,
// dynamic-select lookups, and form submissions.
type Client interface {
	// PerformCall executes the call in the given mode. A non-nil error means
	// the call itself failed; a response with Type "error" means the backend
	// rejected it.
	PerformCall(ctx context.Context, typ CallType, req CallRequest) (*CallResponse, error)
}

// UserSource resolves user-reference field values. Lookup methods consult
// locally known state; Fetch methods fall back to the backend.
type UserSource interface {
	LookupUserByID(id string) (*User, bool)
	LookupUserByUsername(username string) (*User, bool)
	FetchUserByID(ctx context.Context, id string) (*User, error)
	FetchUserByUsername(ctx context.Context, username string) (*User, error)
}

// ChannelSource resolves channel-reference field values, scoped to a team.
type ChannelSource interface {
	LookupChannelByID(id string) (*Channel, bool)
	LookupChannelByName(teamID, name string) (*Channel, bool)
	FetchChannelByID(ctx context.Context, id string) (*Channel, error)
	FetchChannelByName(ctx context.Context, teamID, name string) (*Channel, error)
}

// HistoryEntry records one submitted command and its outcome.
type HistoryEntry struct {
	ID        string
	Command   string
	CallPath  string
	Response  string
	Succeeded bool
	CreatedAt time.Time
}

// HistoryFilter narrows a history listing.
type HistoryFilter struct {
	Limit      int
	OnlyFailed bool
}

// HistoryStore persists submitted commands.
type HistoryStore interface {
	Insert(entry HistoryEntry) error
	List(filter HistoryFilter) ([]HistoryEntry, error)
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	Get(key string) (string, bool)
	GetAll() (map[string]string, error)
	Set(key, value string) error
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	Printf(format string, args ...any) (int, error)
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}

// Application bundles the wired dependencies of the host app.
type Application struct {
	Schema   SchemaSource
	Client   Client
	Users    UserSource
	Channels ChannelSource
	History  HistoryStore
	Config   ConfigProvider
	Logger   Logger
	Output   OutputWriter
	Styler   Styler
}
