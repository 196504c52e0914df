package domain

// CallType selects which invocation mode a remote call uses.
type CallType string

const (
	// CallTypeSubmit submits a completed form.
	CallTypeSubmit CallType = "submit"

	// CallTypeForm fetches the form definition for a binding.
	CallTypeForm CallType = "form"

	// CallTypeLookup fetches options for a dynamic-select field.
	CallTypeLookup CallType = "lookup"
)

// Call is an invocation target supplied by the schema.
type Call struct {
	Path  string         `json:"path"`
	State map[string]any `json:"state,omitempty"`
}

// CallContext carries the execution context a call is made in. It is passed
// explicitly into the parser rather than pulled from ambient session state.
type CallContext struct {
	AppID     string `json:"app_id,omitempty"`
	Location  string `json:"location,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
	RootID    string `json:"root_id,omitempty"`
}

// CallRequest is the fully-resolved payload handed to the remote invocation
// collaborator: the call target, the execution context, and the expanded
// value map.
type CallRequest struct {
	Call          Call           `json:"call"`
	Context       CallContext    `json:"context"`
	Values        map[string]any `json:"values,omitempty"`
	RawCommand    string         `json:"raw_command,omitempty"`
	SelectedField string         `json:"selected_field,omitempty"`
	Query         string         `json:"query,omitempty"`
}

// CallResponseType classifies a remote call response.
type CallResponseType string

const (
	CallResponseTypeOK       CallResponseType = "ok"
	CallResponseTypeForm     CallResponseType = "form"
	CallResponseTypeNavigate CallResponseType = "navigate"
	CallResponseTypeError    CallResponseType = "error"
)

// CallResponse is what the remote invocation collaborator returns. Which
// response types are acceptable depends on the call site: form fetches accept
// only "form", lookups only "ok".
type CallResponse struct {
	Type     CallResponseType `json:"type"`
	Markdown string           `json:"markdown,omitempty"`
	Form     *Form            `json:"form,omitempty"`
	Items    []SelectOption   `json:"items,omitempty"`
	Error    string           `json:"error,omitempty"`
}
