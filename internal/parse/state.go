package parse

// State identifies where the tokenizer cursor is in the command grammar.
// Start is the initial state; Error is terminal. Any other state can be a
// valid stopping point when input runs out.
type State int

const (
	StateStart State = iota
	StateCommand
	StateEndCommand
	StateCommandSeparator
	StateStartParameter
	StateParameterSeparator
	StateFlag1
	StateFlag
	StateFlagValueSeparator
	StateStartValue
	StateNonspaceValue
	StateQuotedValue
	StateTickValue
	StateEndValue
	StateEndQuotedValue
	StateEndTickedValue
	StateError
)

var stateNames = map[State]string{
	StateStart:              "start",
	StateCommand:            "command",
	StateEndCommand:         "end-command",
	StateCommandSeparator:   "command-separator",
	StateStartParameter:     "start-parameter",
	StateParameterSeparator: "parameter-separator",
	StateFlag1:              "flag1",
	StateFlag:               "flag",
	StateFlagValueSeparator: "flag-value-separator",
	StateStartValue:         "start-value",
	StateNonspaceValue:      "nonspace-value",
	StateQuotedValue:        "quoted-value",
	StateTickValue:          "tick-value",
	StateEndValue:           "end-value",
	StateEndQuotedValue:     "end-quoted-value",
	StateEndTickedValue:     "end-ticked-value",
	StateError:              "error",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
