// Package msg renders all user-visible text produced by the command engine.
//
// Nothing in the engine emits hard-coded display strings. Every message is
// identified by an ID and rendered through a Renderer with named template
// values, so the host application controls the locale by supplying its own
// Renderer. The built-in catalog is English.
package msg

import (
	"fmt"
	"strings"
)

// ID identifies a user-facing message.
type ID string

// Message IDs. The catalog below holds the English template for each.
const (
	ErrNoSlash             ID = "parse.error.no_slash"
	ErrNoMatch             ID = "parse.error.no_match"
	ErrNoMatchSuggest      ID = "parse.error.no_match_suggest"
	ErrUnmatchedPositional ID = "parse.error.unmatched_positional"
	ErrUnknownFlag         ID = "parse.error.unknown_flag"
	ErrMultipleEquals      ID = "parse.error.multiple_equals"
	ErrEmptyValue          ID = "parse.error.empty_value"
	ErrUnterminatedQuote   ID = "parse.error.unterminated_quote"
	ErrUnterminatedTick    ID = "parse.error.unterminated_tick"

	ErrNoBindings  ID = "schema.error.no_bindings"
	ErrNoForm      ID = "schema.error.no_form"
	ErrMissingCall ID = "schema.error.missing_call"

	ErrMissingRequired ID = "validate.error.missing_required"
	ErrUnknownOption   ID = "validate.error.unknown_option"
	ErrUnknownUser     ID = "validate.error.unknown_user"
	ErrUnknownChannel  ID = "validate.error.unknown_channel"

	ErrCallFailed         ID = "transport.error.call_failed"
	ErrUnexpectedResponse ID = "transport.error.unexpected_response"

	SuggestExecute        ID = "suggest.execute"
	SuggestExecuteHint    ID = "suggest.execute.hint"
	SuggestNoMatches      ID = "suggest.no_matches"
	SuggestNoOptions      ID = "suggest.no_options"
	SuggestUserHint       ID = "suggest.user_hint"
	SuggestChannelHint    ID = "suggest.channel_hint"
	SuggestLookupError    ID = "suggest.lookup_error"
	SuggestLookupBadShape ID = "suggest.lookup_bad_shape"
	SuggestLookupEmpty    ID = "suggest.lookup_empty"

	ErrorAtPosition ID = "parse.error.at_position"
)

// catalog holds the built-in English templates. Placeholders use {name}
// syntax and are replaced by the values passed to the Renderer.
var catalog = map[ID]string{
	ErrNoSlash:             "Command must start with a /.",
	ErrNoMatch:             "Did not find a matching command: `{command}`.",
	ErrNoMatchSuggest:      "Did not find a matching command: `{command}`. Did you mean {suggestions}?",
	ErrUnmatchedPositional: "Unable to identify argument: `{value}`.",
	ErrUnknownFlag:         "Command does not accept flag `{flag}`.",
	ErrMultipleEquals:      "Multiple `=` signs are not allowed.",
	ErrEmptyValue:          "Empty values are not allowed.",
	ErrUnterminatedQuote:   "Matching double quote expected before end of input.",
	ErrUnterminatedTick:    "Matching tick quote expected before end of input.",

	ErrNoBindings:  "No command bindings available.",
	ErrNoForm:      "No form available for `{command}`.",
	ErrMissingCall: "This command cannot be executed: no call target.",

	ErrMissingRequired: "Required fields missing: {fields}.",
	ErrUnknownOption:   "Unknown option for field `{field}`: `{value}`.",
	ErrUnknownUser:     "Unknown user: `{username}`.",
	ErrUnknownChannel:  "Unknown channel: `{channel}`.",

	ErrCallFailed:         "Call failed: {error}.",
	ErrUnexpectedResponse: "Unexpected response type from server: `{type}`.",

	SuggestExecute:        "Execute current command",
	SuggestExecuteHint:    "Press Enter to execute",
	SuggestNoMatches:      "No matching suggestions.",
	SuggestNoOptions:      "No matching options.",
	SuggestUserHint:       "@username",
	SuggestChannelHint:    "~channelname",
	SuggestLookupError:    "Error getting options: {error}.",
	SuggestLookupBadShape: "Received unexpected options from server.",
	SuggestLookupEmpty:    "No options matched `{query}`.",

	ErrorAtPosition: "{message} (at character {position})",
}

// Renderer maps a message ID and named template values to a display string.
// The host supplies its own Renderer to control the locale.
type Renderer func(id ID, args map[string]any) string

// Default renders from the built-in English catalog. Unknown IDs render as
// the raw ID so a missing catalog entry is visible rather than silent.
func Default(id ID, args map[string]any) string {
	tmpl, ok := catalog[id]
	if !ok {
		return string(id)
	}
	return expand(tmpl, args)
}

func expand(tmpl string, args map[string]any) string {
	if len(args) == 0 {
		return tmpl
	}
	var b strings.Builder
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			b.WriteString(tmpl)
			break
		}
		close := strings.IndexByte(tmpl[open:], '}')
		if close < 0 {
			b.WriteString(tmpl)
			break
		}
		name := tmpl[open+1 : open+close]
		b.WriteString(tmpl[:open])
		if v, ok := args[name]; ok {
			b.WriteString(fmt.Sprint(v))
		} else {
			b.WriteString(tmpl[open : open+close+1])
		}
		tmpl = tmpl[open+close+1:]
	}
	return b.String()
}
