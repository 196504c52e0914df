package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/relay-tools/slashcmd/internal/domain"
)

// Fixture serves calls and reference lookups from a SchemaFile. It stands in
// for the remote app backend; Swap replaces the document atomically so the
// repl can hot-reload a schema file without restarting.
type Fixture struct {
	mu sync.RWMutex
	sf *SchemaFile
}

// NewFixture creates a Fixture over the given document.
func NewFixture(sf *SchemaFile) *Fixture {
	return &Fixture{sf: sf}
}

// Swap replaces the fixture document.
func (f *Fixture) Swap(sf *SchemaFile) {
	f.mu.Lock()
	f.sf = sf
	f.mu.Unlock()
}

func (f *Fixture) doc() *SchemaFile {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.sf
}

// CommandBindings implements domain.SchemaSource.
func (f *Fixture) CommandBindings() []domain.Binding {
	return f.doc().Bindings
}

// PerformCall implements domain.Client against the fixture data: form
// fetches resolve from Forms by call path, lookups filter Lookups by the
// query, and submissions echo the resolved values as markdown.
func (f *Fixture) PerformCall(_ context.Context, typ domain.CallType, req domain.CallRequest) (*domain.CallResponse, error) {
	sf := f.doc()

	switch typ {
	case domain.CallTypeForm:
		form, ok := sf.Forms[req.Call.Path]
		if !ok {
			return &domain.CallResponse{
				Type:  domain.CallResponseTypeError,
				Error: fmt.Sprintf("no form at %s", req.Call.Path),
			}, nil
		}
		return &domain.CallResponse{Type: domain.CallResponseTypeForm, Form: form}, nil

	case domain.CallTypeLookup:
		options, ok := sf.Lookups[req.SelectedField]
		if !ok {
			return &domain.CallResponse{
				Type:  domain.CallResponseTypeError,
				Error: fmt.Sprintf("no options for field %s", req.SelectedField),
			}, nil
		}
		query := strings.ToLower(req.Query)
		var items []domain.SelectOption
		for _, opt := range options {
			if query == "" || strings.Contains(strings.ToLower(opt.Label), query) {
				items = append(items, opt)
			}
		}
		return &domain.CallResponse{Type: domain.CallResponseTypeOK, Items: items}, nil

	case domain.CallTypeSubmit:
		return &domain.CallResponse{
			Type:     domain.CallResponseTypeOK,
			Markdown: submitMarkdown(req),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported call type %q", typ)
	}
}

// submitMarkdown renders a deterministic summary of a submission.
func submitMarkdown(req domain.CallRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Submitted `%s`", req.Call.Path)

	if len(req.Values) == 0 {
		return b.String()
	}

	names := make([]string, 0, len(req.Values))
	for name := range req.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString(" with:")
	for _, name := range names {
		fmt.Fprintf(&b, "\n- %s: %s", name, renderValue(req.Values[name]))
	}
	return b.String()
}

func renderValue(v any) string {
	if opt, ok := v.(domain.SelectOption); ok {
		if opt.Label != "" && opt.Label != opt.Value {
			return fmt.Sprintf("%s (%s)", opt.Label, opt.Value)
		}
		return opt.Value
	}
	return fmt.Sprint(v)
}

// LookupUserByID implements domain.UserSource.
func (f *Fixture) LookupUserByID(id string) (*domain.User, bool) {
	for _, u := range f.doc().Users {
		if u.ID == id {
			user := u
			return &user, true
		}
	}
	return nil, false
}

// LookupUserByUsername implements domain.UserSource.
func (f *Fixture) LookupUserByUsername(username string) (*domain.User, bool) {
	for _, u := range f.doc().Users {
		if strings.EqualFold(u.Username, username) {
			user := u
			return &user, true
		}
	}
	return nil, false
}

// FetchUserByID implements domain.UserSource. The fixture has no remote
// side, so fetches consult the same document.
func (f *Fixture) FetchUserByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.LookupUserByID(id); ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s not found", id)
}

// FetchUserByUsername implements domain.UserSource.
func (f *Fixture) FetchUserByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := f.LookupUserByUsername(username); ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s not found", username)
}

// LookupChannelByID implements domain.ChannelSource.
func (f *Fixture) LookupChannelByID(id string) (*domain.Channel, bool) {
	for _, c := range f.doc().Channels {
		if c.ID == id {
			channel := c
			return &channel, true
		}
	}
	return nil, false
}

// LookupChannelByName implements domain.ChannelSource. An empty fixture
// team id matches any requested team.
func (f *Fixture) LookupChannelByName(teamID, name string) (*domain.Channel, bool) {
	for _, c := range f.doc().Channels {
		if !strings.EqualFold(c.Name, name) {
			continue
		}
		if c.TeamID != "" && teamID != "" && c.TeamID != teamID {
			continue
		}
		channel := c
		return &channel, true
	}
	return nil, false
}

// FetchChannelByID implements domain.ChannelSource.
func (f *Fixture) FetchChannelByID(_ context.Context, id string) (*domain.Channel, error) {
	if c, ok := f.LookupChannelByID(id); ok {
		return c, nil
	}
	return nil, fmt.Errorf("channel %s not found", id)
}

// FetchChannelByName implements domain.ChannelSource.
func (f *Fixture) FetchChannelByName(_ context.Context, teamID, name string) (*domain.Channel, error) {
	if c, ok := f.LookupChannelByName(teamID, name); ok {
		return c, nil
	}
	return nil, fmt.Errorf("channel %s not found", name)
}

var (
	_ domain.SchemaSource  = (*Fixture)(nil)
	_ domain.Client        = (*Fixture)(nil)
	_ domain.UserSource    = (*Fixture)(nil)
	_ domain.ChannelSource = (*Fixture)(nil)
)
