package msg

// Kind classifies a user-facing error.
type Kind int

const (
	// KindStructural covers malformed syntax: unknown binding, flag or
	// positional, unterminated quotes, repeated equals signs. Structural
	// errors always carry the byte offset at which parsing failed.
	KindStructural Kind = iota

	// KindSchema covers missing schema pieces: no bindings, no form, no
	// call target.
	KindSchema

	// KindValidation covers missing required fields and unresolvable
	// option, user, or channel values.
	KindValidation

	// KindTransport covers failed external calls and unexpected response
	// kinds.
	KindTransport
)

// Error is a user-facing error value. It is rendered lazily so the host can
// substitute its own locale; Error() renders with the default catalog.
type Error struct {
	Kind   Kind
	ID     ID
	Args   map[string]any
	Offset int // byte offset at failure; -1 when not positional
}

// Error implements the error interface using the default catalog.
func (e *Error) Error() string {
	return e.Render(Default)
}

// Render produces the display string through the given renderer. Structural
// errors are wrapped with the failing position.
func (e *Error) Render(r Renderer) string {
	text := r(e.ID, e.Args)
	if e.Kind == KindStructural && e.Offset >= 0 {
		return r(ErrorAtPosition, map[string]any{
			"message":  text,
			"position": e.Offset + 1,
		})
	}
	return text
}

// NewStructural creates a structural parse error at the given byte offset.
func NewStructural(id ID, offset int, args map[string]any) *Error {
	return &Error{Kind: KindStructural, ID: id, Args: args, Offset: offset}
}

// NewSchema creates a schema error.
func NewSchema(id ID, args map[string]any) *Error {
	return &Error{Kind: KindSchema, ID: id, Args: args, Offset: -1}
}

// NewValidation creates a validation error.
func NewValidation(id ID, args map[string]any) *Error {
	return &Error{Kind: KindValidation, ID: id, Args: args, Offset: -1}
}

// NewTransport creates a transport error.
func NewTransport(id ID, args map[string]any) *Error {
	return &Error{Kind: KindTransport, ID: id, Args: args, Offset: -1}
}

var _ error = (*Error)(nil)
