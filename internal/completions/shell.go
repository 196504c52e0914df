package completions

import (
	"os"
	"path/filepath"
	"strings"
)

// Shell identifies a supported shell.
type Shell string

const (
	ShellBash    Shell = "bash"
	ShellZsh     Shell = "zsh"
	ShellFish    Shell = "fish"
	ShellUnknown Shell = ""
)

// ParseShell maps a user-supplied name to a Shell.
func ParseShell(name string) Shell {
	switch strings.ToLower(name) {
	case "bash":
		return ShellBash
	case "zsh":
		return ShellZsh
	case "fish":
		return ShellFish
	default:
		return ShellUnknown
	}
}

// DetectShell guesses the current shell from $SHELL.
func DetectShell() Shell {
	return ParseShell(filepath.Base(os.Getenv("SHELL")))
}

// IsBashCompletionInstalled reports whether the bash-completion package
// appears to be present, which is required for auto-loading.
func IsBashCompletionInstalled() bool {
	candidates := []string{
		"/usr/share/bash-completion/bash_completion",
		"/usr/local/share/bash-completion/bash_completion",
		"/opt/homebrew/share/bash-completion/bash_completion",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}
