package command

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/msg"
)

type fieldResult struct {
	value any
	set   bool
	err   *msg.Error
}

// resolveValues turns the tokenizer's raw string values into the final typed
// value map: defaults and readonly values are filled in, required fields are
// verified, and each value is expanded to its submission shape. Every field
// resolves independently, so the work fans out per field and fans back into
// one merged map.
func (p *Parser) resolveValues(ctx context.Context, form *domain.Form, raw map[string]string) (map[string]any, error) {
	fields := make([]domain.Field, 0, len(form.Fields))
	for _, f := range form.Fields {
		if f.Type == domain.FieldTypeMarkdown {
			continue
		}
		fields = append(fields, f)
	}

	results := make([]fieldResult, len(fields))
	var wg sync.WaitGroup
	for i := range fields {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.resolveField(ctx, &fields[i], raw[fields[i].Name])
		}(i)
	}
	wg.Wait()

	// Required-ness is checked before expansion errors are reported, so a
	// command missing a required field always says so first.
	var missing []string
	for i := range fields {
		if fields[i].IsRequired && !results[i].set && results[i].err == nil {
			missing = append(missing, fields[i].EffectiveLabel())
		}
	}
	if len(missing) > 0 {
		return nil, msg.NewValidation(msg.ErrMissingRequired, map[string]any{
			"fields": strings.Join(missing, ", "),
		})
	}

	out := make(map[string]any, len(fields))
	var errs []error
	for i := range fields {
		r := results[i]
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		if r.set {
			out[fields[i].Name] = r.value
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// resolveField resolves one field: a supplied raw value is expanded to its
// typed shape; otherwise the schema default (or readonly value) is resolved.
// Default resolution failures are swallowed, leaving the field unset, since
// a broken default must not block otherwise-valid input.
func (p *Parser) resolveField(ctx context.Context, f *domain.Field, raw string) fieldResult {
	if raw != "" {
		v, err := p.expandValue(ctx, f, raw)
		if err != nil {
			return fieldResult{err: err}
		}
		return fieldResult{value: v, set: true}
	}

	if f.Value == nil {
		return fieldResult{}
	}
	if v, ok := p.resolveDefault(ctx, f); ok {
		return fieldResult{value: v, set: true}
	}
	return fieldResult{}
}

// expandValue turns a raw string into the field's submission shape.
func (p *Parser) expandValue(ctx context.Context, f *domain.Field, raw string) (any, *msg.Error) {
	switch f.Type {
	case domain.FieldTypeDynamicSelect:
		// The label is resolved server-side.
		return domain.SelectOption{Label: "", Value: raw}, nil

	case domain.FieldTypeStaticSelect:
		for _, opt := range f.Options {
			if opt.Value == raw {
				return opt, nil
			}
		}
		return nil, msg.NewValidation(msg.ErrUnknownOption, map[string]any{
			"field": f.EffectiveLabel(),
			"value": raw,
		})

	case domain.FieldTypeUser:
		username := strings.TrimPrefix(raw, "@")
		if u, ok := p.users.LookupUserByUsername(username); ok {
			return domain.SelectOption{Label: u.Username, Value: u.ID}, nil
		}
		if u, err := p.users.FetchUserByUsername(ctx, username); err == nil && u != nil {
			return domain.SelectOption{Label: u.Username, Value: u.ID}, nil
		}
		return nil, msg.NewValidation(msg.ErrUnknownUser, map[string]any{"username": username})

	case domain.FieldTypeChannel:
		name := strings.TrimPrefix(raw, "~")
		if c, ok := p.channels.LookupChannelByName(p.cc.TeamID, name); ok {
			return domain.SelectOption{Label: c.DisplayName, Value: c.ID}, nil
		}
		if c, err := p.channels.FetchChannelByName(ctx, p.cc.TeamID, name); err == nil && c != nil {
			return domain.SelectOption{Label: c.DisplayName, Value: c.ID}, nil
		}
		return nil, msg.NewValidation(msg.ErrUnknownChannel, map[string]any{"channel": name})

	default:
		// Text and boolean values are submitted as their literal strings.
		return raw, nil
	}
}

// resolveDefault resolves a schema-supplied default or readonly value.
func (p *Parser) resolveDefault(ctx context.Context, f *domain.Field) (any, bool) {
	switch f.Type {
	case domain.FieldTypeBool:
		switch v := f.Value.(type) {
		case bool:
			if v {
				return "true", true
			}
			return "false", true
		case string:
			if v == "true" || v == "false" {
				return v, true
			}
		}
		return nil, false

	case domain.FieldTypeStaticSelect:
		// Re-resolving an already-expanded option against the fixed list
		// keeps expansion idempotent.
		if opt, ok := optionFromAny(f.Value); ok {
			return canonicalOption(f, opt.Value)
		}
		if s, ok := f.Value.(string); ok {
			return canonicalOption(f, s)
		}
		return nil, false

	case domain.FieldTypeDynamicSelect:
		if opt, ok := optionFromAny(f.Value); ok {
			return opt, true
		}
		if s, ok := f.Value.(string); ok {
			return domain.SelectOption{Label: "", Value: s}, true
		}
		return nil, false

	case domain.FieldTypeUser:
		id, ok := f.Value.(string)
		if !ok {
			return nil, false
		}
		if u, lok := p.users.LookupUserByID(id); lok {
			return domain.SelectOption{Label: u.Username, Value: u.ID}, true
		}
		if u, err := p.users.FetchUserByID(ctx, id); err == nil && u != nil {
			return domain.SelectOption{Label: u.Username, Value: u.ID}, true
		}
		return nil, false

	case domain.FieldTypeChannel:
		id, ok := f.Value.(string)
		if !ok {
			return nil, false
		}
		if c, lok := p.channels.LookupChannelByID(id); lok {
			return domain.SelectOption{Label: c.DisplayName, Value: c.ID}, true
		}
		if c, err := p.channels.FetchChannelByID(ctx, id); err == nil && c != nil {
			return domain.SelectOption{Label: c.DisplayName, Value: c.ID}, true
		}
		return nil, false

	default:
		if s, ok := f.Value.(string); ok {
			return s, true
		}
		return nil, false
	}
}

func canonicalOption(f *domain.Field, value string) (any, bool) {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return nil, false
}

// optionFromAny recognizes an already-expanded select option, either as the
// native struct or as the decoded JSON shape.
func optionFromAny(v any) (domain.SelectOption, bool) {
	switch t := v.(type) {
	case domain.SelectOption:
		return t, true
	case map[string]any:
		value, _ := t["value"].(string)
		if value == "" {
			return domain.SelectOption{}, false
		}
		label, _ := t["label"].(string)
		return domain.SelectOption{Label: label, Value: value}, true
	}
	return domain.SelectOption{}, false
}
