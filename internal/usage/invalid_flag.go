package usage

import "fmt"

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("slash: invalid flag '%s'", flag),
	}
}
