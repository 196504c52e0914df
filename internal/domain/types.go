package domain

import "strings"

// FieldType enumerates the argument kinds a form field can take.
type FieldType string

const (
	FieldTypeText          FieldType = "text"
	FieldTypeBool          FieldType = "bool"
	FieldTypeUser          FieldType = "user"
	FieldTypeChannel       FieldType = "channel"
	FieldTypeStaticSelect  FieldType = "static_select"
	FieldTypeDynamicSelect FieldType = "dynamic_select"
	FieldTypeMarkdown      FieldType = "markdown"
)

// SelectOption is a single choice of a select field. Dynamic selects carry
// placeholder options whose label is resolved server-side.
type SelectOption struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	IconData string `json:"icon_data,omitempty"`
}

// Field is one typed argument slot (positional or flag) within a form.
// Position 0 means the field is addressed by flag only; positional fields
// carry unique, dense 1-based positions.
type Field struct {
	Name        string         `json:"name"`
	Label       string         `json:"label,omitempty"`
	Type        FieldType      `json:"type"`
	Description string         `json:"description,omitempty"`
	Hint        string         `json:"hint,omitempty"`
	Position    int            `json:"position,omitempty"`
	IsRequired  bool           `json:"is_required,omitempty"`
	ReadOnly    bool           `json:"readonly,omitempty"`
	Value       any            `json:"value,omitempty"`
	Options     []SelectOption `json:"options,omitempty"`
	Refresh     bool           `json:"refresh,omitempty"`
}

// EffectiveLabel returns the user-facing token for the field: the label if
// set, the submission name otherwise.
func (f *Field) EffectiveLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Form is the field schema and submit target for a resolved (sub)command.
type Form struct {
	Fields        []Field `json:"fields,omitempty"`
	Header        string  `json:"header,omitempty"`
	Call          *Call   `json:"call,omitempty"`
	SubmitButtons string  `json:"submit_buttons,omitempty"`
}

// ParsableFields returns the fields that participate in tokenizing.
// Markdown fields are display-only and readonly fields take their value
// from the schema, so neither can be addressed on the command line.
func (f *Form) ParsableFields() []Field {
	out := make([]Field, 0, len(f.Fields))
	for _, field := range f.Fields {
		if field.Type == FieldTypeMarkdown || field.ReadOnly {
			continue
		}
		out = append(out, field)
	}
	return out
}

// FieldByName returns the field with the given submission name.
func (f *Form) FieldByName(name string) *Field {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i]
		}
	}
	return nil
}

// Binding is a named node in the command tree, optionally owning a form.
// A leaf binding must resolve to exactly one form, either inline or fetched
// by its location path. Bindings are immutable once loaded.
type Binding struct {
	AppID       string    `json:"app_id,omitempty"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`
	Hint        string    `json:"hint,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Call        *Call     `json:"call,omitempty"`
	Form        *Form     `json:"form,omitempty"`
	Bindings    []Binding `json:"bindings,omitempty"`
}

// FindLabel returns the child binding whose label matches token
// case-insensitively. The match is exact, never a prefix.
func FindLabel(bindings []Binding, token string) *Binding {
	if token == "" {
		return nil
	}
	for i := range bindings {
		if strings.EqualFold(bindings[i].Label, token) {
			return &bindings[i]
		}
	}
	return nil
}

// User is the resolvable target of a user-reference field.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Channel is the resolvable target of a channel-reference field.
type Channel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	TeamID      string `json:"team_id,omitempty"`
}
