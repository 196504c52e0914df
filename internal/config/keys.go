// Package config reads and writes the key=value config file (~/.slashrc).
// Comments and unknown keys are preserved on write; the file is created with
// commented defaults on first read.
package config

// Key describes one configuration key.
type Key struct {
	Name        string
	Default     string
	Description string

	// HideIfEmpty keys are written commented out, as optional overrides.
	HideIfEmpty bool
}

// Keys lists every supported configuration key, in file order.
var Keys = []Key{
	{Name: "locale", Default: "en", Description: "Message catalog locale"},
	{Name: "theme", Default: "default", Description: "Color theme (default, mono, contrast)"},
	{Name: "enable_log", Default: "true", Description: "Write a log file"},
	{Name: "log_level", Default: "warn", Description: "Minimum log level (debug, info, warn, error)"},
	{Name: "pager", Default: "less -FRSX", Description: "Pager command for long output"},
	{Name: "display_date", Description: "Date format (dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd, or a Go layout)", HideIfEmpty: true},
	{Name: "display_time", Description: "Time format (12h or 24h)", HideIfEmpty: true},
	{Name: "schema_path", Description: "Command schema file", HideIfEmpty: true},
	{Name: "team_id", Description: "Team id used in call context", HideIfEmpty: true},
	{Name: "channel_id", Description: "Channel id used in call context", HideIfEmpty: true},
}
