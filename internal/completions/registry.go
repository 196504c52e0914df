package completions

import (
	"os"
	"path/filepath"

	"github.com/relay-tools/slashcmd/internal/dispatchers"
)

var commandTree *dispatchers.DispatchNode
var binaryPath string
var binaryName string

// RegisterCommandTree stores the command tree for the completion generators.
// Called from main after the tree is built.
func RegisterCommandTree(root *dispatchers.DispatchNode) {
	commandTree = root

	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			binaryPath = resolved
		} else {
			binaryPath = exe
		}
		binaryName = filepath.Base(binaryPath)
	} else if len(os.Args) > 0 {
		binaryPath = os.Args[0]
		binaryName = filepath.Base(os.Args[0])
	}

	if binaryName == "" {
		binaryName = "slash"
		binaryPath = "slash"
	}
}

// GetCommandTree returns the registered command tree.
func GetCommandTree() *dispatchers.DispatchNode {
	return commandTree
}

// GetBinaryName returns the name of the installed binary.
func GetBinaryName() string {
	if binaryName == "" {
		return "slash"
	}
	return binaryName
}

// GetBinaryPath returns the full path to the binary.
func GetBinaryPath() string {
	if binaryPath == "" {
		return "slash"
	}
	return binaryPath
}
