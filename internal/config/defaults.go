package config

import "github.com/relay-tools/slashcmd/internal/paths"

// Defaults maps keys to their default values. Some defaults are dynamic.
var Defaults = map[string]func() string{
	"locale":      func() string { return "en" },
	"theme":       func() string { return "default" },
	"enable_log":  func() string { return "true" },
	"log_level":   func() string { return "warn" },
	"pager":       func() string { return "less -FRSX" },
	"schema_path": func() string { return paths.SchemaFilePath() },
	"team_id":     func() string { return "" },
	"channel_id":  func() string { return "" },
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	cfg := Parse(lines)

	if value, exists := cfg[key]; exists {
		return value, true
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil // Return defaults on error
	}

	for key, value := range Parse(lines) {
		result[key] = value
	}

	return result, nil
}
