// Package parse implements the character-level tokenizer that walks a raw
// slash command against a binding tree and a form definition.
//
// A ParsedCommand is the mutable cursor of one parse invocation. It runs in
// two phases: MatchBinding walks the input token-by-token to the deepest
// matching binding, then ParseForm re-scans the remainder against the
// resolved form's fields. Both phases run in either complete mode (full
// input, strict) or autocomplete mode (partial input, tolerant: incomplete
// tokens and unterminated quotes are clean stopping points).
//
// The automaton has no suspension points and performs no field resolution or
// schema fetching; the orchestrator supplies the form between the phases.
package parse

import (
	"strings"

	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/msg"
)

// ParsedCommand is the cursor state over one input string. It is owned by a
// single parse invocation and never shared across concurrent parses.
type ParsedCommand struct {
	// Command is the raw input, including the leading slash.
	Command string

	State State

	// Binding is the deepest matched binding; nil until EndCommand matches.
	Binding *domain.Binding

	// Children is the candidate binding set at the point the walk stopped:
	// the matched binding's children, or the top-level set if nothing
	// matched. Suggestion generation prefix-matches against it.
	Children []domain.Binding

	// Form must be set by the caller before ParseForm, either from the
	// binding itself or from a fetch keyed by Location.
	Form *domain.Form

	// Field is the field the cursor is currently binding a value to.
	Field *domain.Field

	// Location is the slash-joined path of matched binding labels.
	Location string

	// Position is the 1-based counter of consumed positional parameters.
	Position int

	// Values holds raw string values keyed by field name.
	Values map[string]string

	// Cursor is the byte offset of the scan.
	Cursor int

	// Incomplete is the token accumulator; IncompleteStart is the byte
	// offset the current token began at. In autocomplete mode a partial
	// token survives here when input runs out.
	Incomplete      string
	IncompleteStart int

	// Err is set when State is StateError.
	Err *msg.Error
}

// New creates a ParsedCommand over the given raw input.
func New(command string) *ParsedCommand {
	return &ParsedCommand{
		Command: command,
		State:   StateStart,
		Values:  make(map[string]string),
	}
}

func (p *ParsedCommand) charAt(i int) (byte, bool) {
	if i >= len(p.Command) {
		return 0, false
	}
	return p.Command[i], true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// peekWord returns the run of non-whitespace bytes starting at the cursor,
// for error reporting only.
func (p *ParsedCommand) peekWord() string {
	end := p.Cursor
	for end < len(p.Command) && !isSpace(p.Command[end]) {
		end++
	}
	return p.Command[p.Cursor:end]
}

func (p *ParsedCommand) asError(id msg.ID, args map[string]any) *ParsedCommand {
	p.State = StateError
	p.Err = msg.NewStructural(id, p.Cursor, args)
	return p
}

// MatchBinding walks the input to the deepest binding whose label matches
// successive whitespace-delimited tokens, descending into child bindings on
// each match. A token that matches no child stops the walk without error so
// it can later be consumed as the form's first positional parameter. In
// autocomplete mode, running out of input mid-token stops cleanly with the
// partial token preserved in Incomplete.
func (p *ParsedCommand) MatchBinding(commandBindings []domain.Binding, autocomplete bool) *ParsedCommand {
	if len(commandBindings) == 0 {
		p.State = StateError
		p.Err = msg.NewSchema(msg.ErrNoBindings, nil)
		return p
	}

	bindings := commandBindings
	done := false
	for !done && p.State != StateError {
		c, ok := p.charAt(p.Cursor)

		switch p.State {
		case StateStart:
			if c != '/' {
				return p.asError(msg.ErrNoSlash, nil)
			}
			p.Cursor++
			p.Incomplete = ""
			p.IncompleteStart = p.Cursor
			p.State = StateCommand

		case StateCommand:
			switch {
			case !ok:
				if autocomplete {
					done = true
				} else {
					p.State = StateEndCommand
				}
			case isSpace(c):
				p.State = StateEndCommand
			default:
				p.Incomplete += string(c)
				p.Cursor++
			}

		case StateEndCommand:
			b := domain.FindLabel(bindings, p.Incomplete)
			if b == nil {
				// Unmatched token: stop the walk and leave the token
				// to be consumed as the first positional parameter.
				done = true
				break
			}
			p.Binding = b
			if p.Location != "" {
				p.Location += "/"
			}
			p.Location += b.Label
			bindings = b.Bindings
			p.State = StateCommandSeparator

		case StateCommandSeparator:
			switch {
			case !ok:
				p.Incomplete = ""
				p.IncompleteStart = p.Cursor
				p.State = StateCommand
				done = true
			case isSpace(c):
				p.Cursor++
			default:
				p.Incomplete = ""
				p.IncompleteStart = p.Cursor
				p.State = StateCommand
			}

		default:
			done = true
		}
	}

	if p.State == StateError {
		return p
	}

	p.Children = bindings

	// A command that never matched a binding is only an error when the
	// input is final; a partial command still yields prefix suggestions.
	if p.Binding == nil && !autocomplete {
		args := map[string]any{"command": p.Incomplete}
		if similar := SimilarLabels(p.Incomplete, commandBindings, maxSimilar); len(similar) > 0 {
			args["suggestions"] = "`" + strings.Join(similar, "`, `") + "`"
			return p.asError(msg.ErrNoMatchSuggest, args)
		}
		return p.asError(msg.ErrNoMatch, args)
	}

	return p
}

// ParseForm re-scans from where binding matching left off, now against the
// form's fields. Markdown and readonly fields never participate. The caller
// must have set Form; a nil form or an error state is returned unchanged.
func (p *ParsedCommand) ParseForm(autocomplete bool) *ParsedCommand {
	if p.State == StateError || p.Form == nil {
		return p
	}

	fields := p.Form.ParsableFields()

	p.State = StateStartParameter
	p.Cursor = p.IncompleteStart
	flagEqualsUsed := false

	done := false
	for !done && p.State != StateError {
		c, ok := p.charAt(p.Cursor)

		switch p.State {
		case StateStartParameter:
			flagEqualsUsed = false
			switch {
			case !ok:
				done = true
			case c == '-':
				p.Cursor++
				p.State = StateFlag1
			default:
				p.Position++
				f := fieldAtPosition(fields, p.Position)
				if f == nil {
					return p.asError(msg.ErrUnmatchedPositional, map[string]any{"value": p.peekWord()})
				}
				p.Field = f
				p.State = StateStartValue
			}

		case StateParameterSeparator:
			p.IncompleteStart = p.Cursor
			switch {
			case !ok:
				done = true
			case isSpace(c):
				p.Cursor++
			default:
				p.State = StateStartParameter
			}

		case StateFlag1:
			// A second leading dash is accepted and stripped.
			if ok && c == '-' {
				p.Cursor++
			}
			p.Incomplete = ""
			p.IncompleteStart = p.Cursor
			p.State = StateFlag

		case StateFlag:
			switch {
			case !ok && autocomplete:
				done = true
			case !ok || isSpace(c) || c == '=':
				f := fieldByLabel(fields, p.Incomplete)
				if f == nil {
					return p.asError(msg.ErrUnknownFlag, map[string]any{"flag": p.Incomplete})
				}
				p.Field = f
				p.Incomplete = ""
				p.State = StateFlagValueSeparator
			default:
				p.Incomplete += string(c)
				p.Cursor++
			}

		case StateFlagValueSeparator:
			p.IncompleteStart = p.Cursor
			switch {
			case !ok:
				if autocomplete {
					done = true
				} else {
					p.State = StateStartValue
				}
			case isSpace(c):
				p.Cursor++
			case c == '=':
				if flagEqualsUsed {
					return p.asError(msg.ErrMultipleEquals, nil)
				}
				flagEqualsUsed = true
				p.Cursor++
			default:
				p.State = StateStartValue
			}

		case StateStartValue:
			p.Incomplete = ""
			p.IncompleteStart = p.Cursor
			switch {
			case ok && c == '"':
				p.Cursor++
				p.State = StateQuotedValue
			case ok && c == '`':
				p.Cursor++
				p.State = StateTickValue
			case ok && c == '=':
				return p.asError(msg.ErrMultipleEquals, nil)
			default:
				p.State = StateNonspaceValue
			}

		case StateNonspaceValue:
			switch {
			case !ok:
				if autocomplete {
					done = true
				} else {
					p.State = StateEndValue
				}
			case isSpace(c):
				p.State = StateEndValue
			default:
				p.Incomplete += string(c)
				p.Cursor++
			}

		case StateQuotedValue:
			switch {
			case !ok:
				if autocomplete {
					done = true
				} else {
					return p.asError(msg.ErrUnterminatedQuote, nil)
				}
			case c == '"':
				if p.Cursor == p.IncompleteStart+1 {
					return p.asError(msg.ErrEmptyValue, nil)
				}
				p.Cursor++
				p.State = StateEndQuotedValue
			case c == '\\':
				if next, nok := p.charAt(p.Cursor + 1); nok && next == '"' {
					p.Incomplete += `"`
					p.Cursor += 2
				} else {
					p.Incomplete += string(c)
					p.Cursor++
				}
			default:
				p.Incomplete += string(c)
				p.Cursor++
			}

		case StateTickValue:
			switch {
			case !ok:
				if autocomplete {
					done = true
				} else {
					return p.asError(msg.ErrUnterminatedTick, nil)
				}
			case c == '`':
				if p.Cursor == p.IncompleteStart+1 {
					return p.asError(msg.ErrEmptyValue, nil)
				}
				p.Cursor++
				p.State = StateEndTickedValue
			case c == '\\':
				if next, nok := p.charAt(p.Cursor + 1); nok && next == '`' {
					p.Incomplete += "`"
					p.Cursor += 2
				} else {
					p.Incomplete += string(c)
					p.Cursor++
				}
			default:
				p.Incomplete += string(c)
				p.Cursor++
			}

		case StateEndValue, StateEndQuotedValue, StateEndTickedValue:
			if p.Field.Type == domain.FieldTypeBool && !validBoolToken(p.Incomplete, autocomplete) {
				// Bare flag presence implies true: record the boolean and
				// backtrack so the token is re-read as the next parameter.
				p.Values[p.Field.Name] = "true"
				p.Cursor = p.IncompleteStart
				p.Incomplete = ""
				p.State = StateStartParameter
			} else {
				p.Values[p.Field.Name] = p.Incomplete
				p.Incomplete = ""
				p.IncompleteStart = p.Cursor
				p.State = StateParameterSeparator
			}

		default:
			done = true
		}
	}

	return p
}

// validBoolToken reports whether tok can stand as a boolean value. Complete
// mode requires exactly "true" or "false"; autocomplete mode accepts any
// prefix of either.
func validBoolToken(tok string, autocomplete bool) bool {
	if autocomplete {
		t := strings.ToLower(tok)
		return strings.HasPrefix("true", t) || strings.HasPrefix("false", t)
	}
	return tok == "true" || tok == "false"
}

func fieldAtPosition(fields []domain.Field, position int) *domain.Field {
	for i := range fields {
		if fields[i].Position == position {
			return &fields[i]
		}
	}
	return nil
}

func fieldByLabel(fields []domain.Field, label string) *domain.Field {
	for i := range fields {
		if strings.EqualFold(fields[i].EffectiveLabel(), label) {
			return &fields[i]
		}
	}
	return nil
}
