package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryInteractive                   // The repl
	CategoryRun                           // One-shot command execution
	CategoryInspect                       // History, schema, version
	CategoryConfig                        // Configuration
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryInteractive:
		return "interactive"
	case CategoryRun:
		return "run commands"
	case CategoryInspect:
		return "inspect state"
	case CategoryConfig:
		return "configure slash"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryInteractive,
	CategoryRun,
	CategoryInspect,
	CategoryConfig,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
