package pathutils

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	tildePrefixConstant  = "~"
	forwardSlashConstant = "/"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander converts leading tilde shortcuts to absolute paths.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: provider}
}

// Expand resolves a leading "~" or "~/" prefix to the user's home directory.
// Named-user shortcuts ("~builder") and paths whose home directory cannot be
// resolved are returned unchanged.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if !strings.HasPrefix(candidatePath, tildePrefixConstant) {
		return candidatePath
	}

	homeDirectory, homeError := expander.homeDirectoryProvider()
	if homeError != nil || len(homeDirectory) == 0 {
		return candidatePath
	}

	if candidatePath == tildePrefixConstant {
		return homeDirectory
	}

	remainder := strings.TrimPrefix(candidatePath, tildePrefixConstant)
	separators := forwardSlashConstant + string(os.PathSeparator)
	if strings.ContainsAny(remainder[:1], separators) {
		return filepath.Join(homeDirectory, strings.TrimLeft(remainder, separators))
	}
	return candidatePath
}
