package pathutils

import (
	"os"
	"path/filepath"
	"strings"
)

// TargetPathResolver normalizes user-supplied file and directory paths consistently across commands.
type TargetPathResolver struct {
	homeExpander     *HomeExpander
	workingDirectory func() (string, error)
}

// NewTargetPathResolver constructs a TargetPathResolver using the operating system lookups.
func NewTargetPathResolver() *TargetPathResolver {
	return NewTargetPathResolverWithProviders(nil, os.Getwd)
}

// NewTargetPathResolverWithProviders constructs a TargetPathResolver with custom providers.
func NewTargetPathResolverWithProviders(homeExpander *HomeExpander, workingDirectoryProvider func() (string, error)) *TargetPathResolver {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	resolvedWorkingDirectoryProvider := workingDirectoryProvider
	if resolvedWorkingDirectoryProvider == nil {
		resolvedWorkingDirectoryProvider = os.Getwd
	}

	return &TargetPathResolver{
		homeExpander:     resolvedExpander,
		workingDirectory: resolvedWorkingDirectoryProvider,
	}
}

// Resolve trims whitespace, expands the user's home directory, and absolutizes the candidate path.
// An empty candidate resolves to the current working directory.
func (resolver *TargetPathResolver) Resolve(candidatePath string) (string, error) {
	trimmedCandidate := strings.TrimSpace(candidatePath)
	if len(trimmedCandidate) == 0 {
		return resolver.workingDirectory()
	}

	expandedCandidate := resolver.homeExpander.Expand(trimmedCandidate)
	if filepath.IsAbs(expandedCandidate) {
		return filepath.Clean(expandedCandidate), nil
	}

	currentDirectory, workingDirectoryError := resolver.workingDirectory()
	if workingDirectoryError != nil {
		return "", workingDirectoryError
	}
	return filepath.Join(currentDirectory, expandedCandidate), nil
}
