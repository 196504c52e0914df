package command

import (
	"context"
	"strings"

	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/msg"
	"github.com/relay-tools/slashcmd/internal/parse"
)

// IconError marks error suggestions so the consumer can render them
// distinctly.
const IconError = "error"

// Suggestion is one autocomplete item, ready for direct rendering. Complete
// is the full replacement command string, not a delta: the consumer swaps
// the entire input for it.
type Suggestion struct {
	Complete    string
	Suggestion  string
	Hint        string
	Description string
	IconData    string
}

// GetSuggestions parses the partial command text in autocomplete mode and
// returns ranked suggestions: an execute-now entry when the command is
// already runnable, sub-command names, flag names, or field values depending
// on where the cursor stopped. Errors never escape; they come back as error
// suggestions. The result is only empty for user/channel reference fields
// with a partial token, where the mention autocompleter takes over.
func (p *Parser) GetSuggestions(ctx context.Context, pretext string) []Suggestion {
	bindings := p.schema.CommandBindings()
	parsed := parse.New(pretext).MatchBinding(bindings, true)
	if parsed.State == parse.StateError {
		return p.errorSuggestions(pretext, parsed.Err)
	}

	var suggestions []Suggestion
	if parsed.State == parse.StateCommand || parsed.State == parse.StateEndCommand {
		suggestions = append(suggestions, p.commandSuggestions(pretext, parsed)...)
	}

	// Only a leaf binding owns a form, so parameter suggestions apply
	// there. A token that matched no deeper binding may still be the
	// form's first positional argument, which is why both suggestion sets
	// can coexist.
	if parsed.Binding != nil && len(parsed.Binding.Bindings) == 0 {
		form, ferr := p.getForm(ctx, parsed.Location, parsed.Binding)
		switch {
		case ferr != nil:
			if len(suggestions) == 0 {
				return p.errorSuggestions(pretext, ferr)
			}
		default:
			parsed.Form = form
			if parsed.ParseForm(true); parsed.State == parse.StateError {
				if len(suggestions) == 0 {
					return p.errorSuggestions(pretext, parsed.Err)
				}
			} else {
				suggestions = append(suggestions, p.parameterSuggestions(ctx, pretext, parsed)...)
				if exec := p.executeSuggestion(pretext, parsed, form); exec != nil {
					suggestions = append([]Suggestion{*exec}, suggestions...)
				}
			}
		}
	}

	if len(suggestions) == 0 {
		if isReferenceField(parsed.Field) && parsed.Incomplete != "" {
			return []Suggestion{}
		}
		return []Suggestion{{
			Complete:   pretext,
			Suggestion: p.render(msg.SuggestNoMatches, nil),
		}}
	}
	return suggestions
}

func (p *Parser) errorSuggestions(pretext string, e *msg.Error) []Suggestion {
	return []Suggestion{{
		Complete:   pretext,
		Suggestion: e.Render(p.render),
		IconData:   IconError,
	}}
}

// commandSuggestions prefix-matches the partial token against the candidate
// child bindings. This is the only place prefix matching applies to labels;
// tree walking itself requires exact matches.
func (p *Parser) commandSuggestions(pretext string, parsed *parse.ParsedCommand) []Suggestion {
	base := pretext[:parsed.IncompleteStart]
	prefix := strings.ToLower(parsed.Incomplete)

	var out []Suggestion
	for _, b := range parsed.Children {
		if b.Label == "" || !strings.HasPrefix(strings.ToLower(b.Label), prefix) {
			continue
		}
		out = append(out, Suggestion{
			Complete:    base + b.Label,
			Suggestion:  b.Label,
			Hint:        b.Hint,
			Description: b.Description,
			IconData:    b.Icon,
		})
	}
	return out
}

func (p *Parser) parameterSuggestions(ctx context.Context, pretext string, parsed *parse.ParsedCommand) []Suggestion {
	base := pretext[:parsed.IncompleteStart]

	switch parsed.State {
	case parse.StateStartParameter, parse.StateParameterSeparator:
		var out []Suggestion
		if f := nextPositionalField(parsed); f != nil {
			parsed.Field = f
			out = append(out, p.valueSuggestions(ctx, pretext, base, parsed, f, "")...)
		}
		out = append(out, p.flagSuggestions(base, parsed, "", "--")...)
		return out

	case parse.StateFlag:
		// The dashes the user typed sit before the token start, so the
		// completion token is the bare label.
		return p.flagSuggestions(base, parsed, parsed.Incomplete, "")

	case parse.StateFlagValueSeparator, parse.StateStartValue, parse.StateNonspaceValue,
		parse.StateQuotedValue, parse.StateTickValue:
		return p.valueSuggestions(ctx, pretext, base, parsed, parsed.Field, parsed.Incomplete)
	}

	return nil
}

// flagSuggestions lists flags for fields that have no value yet, filtered by
// the partial flag name.
func (p *Parser) flagSuggestions(base string, parsed *parse.ParsedCommand, partial, dashPrefix string) []Suggestion {
	lower := strings.ToLower(partial)

	var out []Suggestion
	for _, f := range parsed.Form.ParsableFields() {
		if _, set := parsed.Values[f.Name]; set {
			continue
		}
		label := f.EffectiveLabel()
		if !strings.HasPrefix(strings.ToLower(label), lower) {
			continue
		}
		out = append(out, Suggestion{
			Complete:    base + dashPrefix + label,
			Suggestion:  "--" + label,
			Hint:        f.Hint,
			Description: f.Description,
		})
	}
	return out
}

func (p *Parser) valueSuggestions(ctx context.Context, pretext, base string, parsed *parse.ParsedCommand, f *domain.Field, partial string) []Suggestion {
	if f == nil {
		return nil
	}

	switch f.Type {
	case domain.FieldTypeBool:
		lower := strings.ToLower(partial)
		var out []Suggestion
		for _, tok := range []string{"true", "false"} {
			if strings.HasPrefix(tok, lower) {
				out = append(out, Suggestion{
					Complete:    base + tok,
					Suggestion:  tok,
					Hint:        f.Hint,
					Description: f.Description,
				})
			}
		}
		return out

	case domain.FieldTypeStaticSelect:
		lower := strings.ToLower(partial)
		var out []Suggestion
		for _, opt := range f.Options {
			if !strings.HasPrefix(strings.ToLower(opt.Label), lower) {
				continue
			}
			out = append(out, optionSuggestion(base, f, opt))
		}
		if len(out) == 0 {
			return []Suggestion{{
				Complete:   pretext,
				Suggestion: p.render(msg.SuggestNoOptions, nil),
			}}
		}
		return out

	case domain.FieldTypeDynamicSelect:
		return p.lookupSuggestions(ctx, pretext, base, parsed, f, partial)

	case domain.FieldTypeUser:
		if partial != "" {
			return nil
		}
		return []Suggestion{{
			Complete:    pretext,
			Suggestion:  p.render(msg.SuggestUserHint, nil),
			Hint:        f.Hint,
			Description: f.Description,
		}}

	case domain.FieldTypeChannel:
		if partial != "" {
			return nil
		}
		return []Suggestion{{
			Complete:    pretext,
			Suggestion:  p.render(msg.SuggestChannelHint, nil),
			Hint:        f.Hint,
			Description: f.Description,
		}}
	}

	return nil
}

// lookupSuggestions issues the dynamic-select lookup call, composing the
// call so far with the selected field and the partial token as the query.
func (p *Parser) lookupSuggestions(ctx context.Context, pretext, base string, parsed *parse.ParsedCommand, f *domain.Field, partial string) []Suggestion {
	call := resolveCall(parsed.Form, parsed.Binding)
	if call == nil {
		return p.errorSuggestions(pretext, msg.NewSchema(msg.ErrMissingCall, nil))
	}

	values := make(map[string]any, len(parsed.Values))
	for k, v := range parsed.Values {
		values[k] = v
	}
	req := domain.CallRequest{
		Call:          *call,
		Context:       p.callContext(parsed.Location, parsed.Binding.AppID),
		Values:        values,
		RawCommand:    pretext,
		SelectedField: f.Name,
		Query:         partial,
	}

	resp, err := p.client.PerformCall(ctx, domain.CallTypeLookup, req)
	if err != nil {
		p.logger.Debug("command: lookup failed for field %s: %v", f.Name, err)
		return []Suggestion{{
			Complete:   pretext,
			Suggestion: p.render(msg.SuggestLookupError, map[string]any{"error": err.Error()}),
			IconData:   IconError,
		}}
	}

	switch resp.Type {
	case domain.CallResponseTypeOK:
		if len(resp.Items) == 0 {
			return []Suggestion{{
				Complete:   pretext,
				Suggestion: p.render(msg.SuggestLookupEmpty, map[string]any{"query": partial}),
			}}
		}
		out := make([]Suggestion, 0, len(resp.Items))
		for _, opt := range resp.Items {
			out = append(out, optionSuggestion(base, f, opt))
		}
		return out
	case domain.CallResponseTypeError:
		return []Suggestion{{
			Complete:   pretext,
			Suggestion: p.render(msg.SuggestLookupError, map[string]any{"error": resp.Error}),
			IconData:   IconError,
		}}
	default:
		return []Suggestion{{
			Complete:   pretext,
			Suggestion: p.render(msg.SuggestLookupBadShape, nil),
			IconData:   IconError,
		}}
	}
}

// executeSuggestion decides whether an "execute now" entry belongs at the
// top of the list: the parse must have stopped at an executable point, a
// call target must resolve, and every required field must already be
// satisfied (counting the value being typed).
func (p *Parser) executeSuggestion(pretext string, parsed *parse.ParsedCommand, form *domain.Form) *Suggestion {
	switch parsed.State {
	case parse.StateStartParameter, parse.StateParameterSeparator:
		// Between parameters: nothing half-typed.
	case parse.StateNonspaceValue, parse.StateQuotedValue, parse.StateTickValue:
		if parsed.Incomplete == "" {
			return nil
		}
	default:
		return nil
	}

	if resolveCall(form, parsed.Binding) == nil {
		return nil
	}

	for _, f := range form.Fields {
		if f.Type == domain.FieldTypeMarkdown || !f.IsRequired {
			continue
		}
		if parsed.Values[f.Name] != "" {
			continue
		}
		if parsed.Field != nil && parsed.Field.Name == f.Name && parsed.Incomplete != "" {
			continue
		}
		if f.Value != nil {
			// A schema default will fill it at submission time.
			continue
		}
		return nil
	}

	return &Suggestion{
		Complete:   pretext,
		Suggestion: p.render(msg.SuggestExecute, nil),
		Hint:       p.render(msg.SuggestExecuteHint, nil),
	}
}

func nextPositionalField(parsed *parse.ParsedCommand) *domain.Field {
	fields := parsed.Form.ParsableFields()
	for i := range fields {
		if fields[i].Position == parsed.Position+1 {
			return &fields[i]
		}
	}
	return nil
}

func optionSuggestion(base string, f *domain.Field, opt domain.SelectOption) Suggestion {
	return Suggestion{
		Complete:    base + quoteToken(opt.Value),
		Suggestion:  opt.Label,
		Hint:        f.Hint,
		Description: f.Description,
		IconData:    opt.IconData,
	}
}

// quoteToken wraps a completion token so a multi-word value survives
// re-parsing: double quotes normally, backticks when the value itself
// contains a double quote.
func quoteToken(v string) string {
	if !strings.ContainsAny(v, " \t") {
		return v
	}
	if strings.Contains(v, `"`) {
		return "`" + v + "`"
	}
	return `"` + v + `"`
}

func isReferenceField(f *domain.Field) bool {
	return f != nil && (f.Type == domain.FieldTypeUser || f.Type == domain.FieldTypeChannel)
}
