// Package command orchestrates slash-command parsing: it owns schema access
// with a per-session form cache, drives the tokenizer, resolves defaults and
// typed values, and turns parse state into either a ready-to-submit call
// request or a ranked suggestion list.
package command

import (
	"context"
	"strings"

	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/msg"
	"github.com/relay-tools/slashcmd/internal/parse"
)

// Parser composes calls and suggestions from raw command text. Each instance
// owns an append-only form cache: create a fresh Parser per edit session to
// refetch forms. Instances are not safe for concurrent use.
type Parser struct {
	schema   domain.SchemaSource
	client   domain.Client
	users    domain.UserSource
	channels domain.ChannelSource
	cc       domain.CallContext
	render   msg.Renderer
	logger   domain.Logger

	forms map[string]*domain.Form
}

// Option configures a Parser.
type Option func(*Parser)

// WithRenderer sets the message renderer used for all user-facing text.
func WithRenderer(r msg.Renderer) Option {
	return func(p *Parser) { p.render = r }
}

// WithLogger sets the logger.
func WithLogger(l domain.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// NewParser creates a Parser bound to the given collaborators and execution
// context. The context is passed explicitly so the engine is reusable
// without any ambient session state.
func NewParser(
	schema domain.SchemaSource,
	client domain.Client,
	users domain.UserSource,
	channels domain.ChannelSource,
	cc domain.CallContext,
	opts ...Option,
) *Parser {
	p := &Parser{
		schema:   schema,
		client:   client,
		users:    users,
		channels: channels,
		cc:       cc,
		render:   msg.Default,
		logger:   nopLogger{},
		forms:    make(map[string]*domain.Form),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render produces the display string for an engine error through the
// parser's renderer.
func (p *Parser) Render(err *msg.Error) string {
	return err.Render(p.render)
}

// IsAppCommand reports whether pretext unambiguously addresses a known
// top-level binding: lowercased, it must start with the binding's label
// followed by a space.
func (p *Parser) IsAppCommand(pretext string) bool {
	lower := strings.ToLower(pretext)
	for _, b := range p.schema.CommandBindings() {
		if b.Label == "" {
			continue
		}
		if strings.HasPrefix(lower, "/"+strings.ToLower(b.Label)+" ") {
			return true
		}
	}
	return false
}

// ComposeCallFromCommand parses the full command text in complete mode and
// returns the resolved call request, or an error suitable for direct user
// display. Field-level validation failures are joined into one error.
func (p *Parser) ComposeCallFromCommand(ctx context.Context, command string) (*domain.CallRequest, error) {
	parsed := parse.New(command).MatchBinding(p.schema.CommandBindings(), false)
	if parsed.State == parse.StateError {
		return nil, parsed.Err
	}

	form, ferr := p.getForm(ctx, parsed.Location, parsed.Binding)
	if ferr != nil {
		return nil, ferr
	}
	parsed.Form = form

	if parsed.ParseForm(false); parsed.State == parse.StateError {
		return nil, parsed.Err
	}

	call := resolveCall(form, parsed.Binding)
	if call == nil {
		return nil, msg.NewSchema(msg.ErrMissingCall, nil)
	}

	values, err := p.resolveValues(ctx, form, parsed.Values)
	if err != nil {
		return nil, err
	}

	return &domain.CallRequest{
		Call:       *call,
		Context:    p.callContext(parsed.Location, parsed.Binding.AppID),
		Values:     values,
		RawCommand: command,
	}, nil
}

// getForm returns the form for a binding, preferring the session cache, then
// the binding's inline form, then an external fetch. Only successful fetches
// are memoized, so a failed fetch is retried on the next access.
func (p *Parser) getForm(ctx context.Context, location string, binding *domain.Binding) (*domain.Form, *msg.Error) {
	if f, ok := p.forms[location]; ok {
		return f, nil
	}

	if binding.Form != nil {
		p.forms[location] = binding.Form
		return binding.Form, nil
	}

	if binding.Call == nil {
		return nil, msg.NewSchema(msg.ErrNoForm, map[string]any{"command": "/" + location})
	}

	req := domain.CallRequest{
		Call:    *binding.Call,
		Context: p.callContext(location, binding.AppID),
	}
	resp, err := p.client.PerformCall(ctx, domain.CallTypeForm, req)
	if err != nil {
		p.logger.Debug("command: form fetch failed for %s: %v", location, err)
		return nil, msg.NewTransport(msg.ErrCallFailed, map[string]any{"error": err.Error()})
	}

	switch resp.Type {
	case domain.CallResponseTypeForm:
		if resp.Form == nil {
			return nil, msg.NewTransport(msg.ErrUnexpectedResponse, map[string]any{"type": resp.Type})
		}
		p.forms[location] = resp.Form
		return resp.Form, nil
	case domain.CallResponseTypeError:
		return nil, msg.NewTransport(msg.ErrCallFailed, map[string]any{"error": resp.Error})
	default:
		// "ok" and "navigate" make no sense as a form fetch result.
		return nil, msg.NewTransport(msg.ErrUnexpectedResponse, map[string]any{"type": resp.Type})
	}
}

// resolveCall picks the invocation target: the form's own call wins over the
// binding's default.
func resolveCall(form *domain.Form, binding *domain.Binding) *domain.Call {
	if form != nil && form.Call != nil {
		return form.Call
	}
	if binding != nil {
		return binding.Call
	}
	return nil
}

func (p *Parser) callContext(location, appID string) domain.CallContext {
	cc := p.cc
	cc.Location = location
	if appID != "" {
		cc.AppID = appID
	}
	return cc
}

// nopLogger discards all messages.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Close() error         { return nil }
