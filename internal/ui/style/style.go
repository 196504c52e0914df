// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss styles are created. All
// styling is semantic (Success, Error, Selected, etc.) rather than visual.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	// Pre-created styles, only used when enabled is true.
	successStyle  lipgloss.Style
	warningStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	infoStyle     lipgloss.Style
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	promptStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	hintStyle     lipgloss.Style
)

// Init initializes the style package with the given enabled state and config.
// It also respects the NO_COLOR and SLASH_NO_COLOR environment variables;
// if either is set to any non-empty value, styling is disabled regardless
// of the enabled parameter.
//
// The cfg parameter supplies the color theme and individual color overrides.
// If cfg is nil, default colors are used.
//
// This function should be called once from main before any output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("SLASH_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// GetColors returns the current color configuration.
// Returns an empty config if styling is not enabled.
func GetColors() ColorConfig {
	return colors
}

// initStyles creates the lipgloss styles from the given color configuration.
// Uses the ANSI 256-color palette to support both basic and extended colors.
func initStyles(colors ColorConfig) {
	// Force lipgloss to use ANSI256 colors regardless of TTY detection.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
	promptStyle = makeStyle(colors.Prompt)
	selectedStyle = makeStyle(colors.Selected).Reverse(true)
	hintStyle = makeStyle(colors.Hint)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational messages.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}

// Prompt styles the interactive input prompt.
func Prompt(text string) string {
	if !enabled {
		return text
	}
	return promptStyle.Render(text)
}

// Selected styles the highlighted row in a suggestion list.
func Selected(text string) string {
	if !enabled {
		return text
	}
	return selectedStyle.Render(text)
}

// Hint styles inline argument hints next to suggestions.
func Hint(text string) string {
	if !enabled {
		return text
	}
	return hintStyle.Render(text)
}
