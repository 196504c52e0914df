package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when a command token does not resolve. Similar
// command names may be attached as a "did you mean" hint.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("slash: '%s' is not a slash command. See 'slash --help'.", command)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("\n\nDid you mean: %s?", strings.Join(suggestions, ", "))
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
