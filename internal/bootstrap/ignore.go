package bootstrap

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const (
	ignoreFileNameConstant        = ".gitignore"
	ignoreFilePermissionsConstant = fs.FileMode(0o644)

	genericIgnoreBlockConstant = `# General
.DS_Store
Thumbs.db
*.log
*.tmp
.env
.env.local
.idea/
.vscode/
`

	nodeIgnoreBlockConstant = `
# Node.js
node_modules/
npm-debug.log*
yarn-error.log*
dist/
`

	goIgnoreBlockConstant = `
# Go
bin/
*.test
*.out
vendor/
`

	pythonIgnoreBlockConstant = `
# Python
__pycache__/
*.py[cod]
.venv/
venv/
*.egg-info/
`

	rustIgnoreBlockConstant = `
# Rust
target/
Cargo.lock
`
)

var ignoreHeuristics = []struct {
	markerFiles []string
	block       string
}{
	{markerFiles: []string{"package.json"}, block: nodeIgnoreBlockConstant},
	{markerFiles: []string{"go.mod"}, block: goIgnoreBlockConstant},
	{markerFiles: []string{"requirements.txt", "pyproject.toml"}, block: pythonIgnoreBlockConstant},
	{markerFiles: []string{"Cargo.toml"}, block: rustIgnoreBlockConstant},
}

// IgnoreFileSynthesizer appends heuristic ignore patterns to a directory's ignore file.
type IgnoreFileSynthesizer struct {
	fileSystem FileSystem
}

// NewIgnoreFileSynthesizer constructs a synthesizer over the provided filesystem.
func NewIgnoreFileSynthesizer(fileSystem FileSystem) *IgnoreFileSynthesizer {
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}
	return &IgnoreFileSynthesizer{fileSystem: fileSystem}
}

// BuildPatterns assembles the generic block plus every block whose marker file
// is present in the directory.
func (synthesizer *IgnoreFileSynthesizer) BuildPatterns(directoryPath string) string {
	patternBuilder := strings.Builder{}
	patternBuilder.WriteString(genericIgnoreBlockConstant)

	for _, heuristic := range ignoreHeuristics {
		for _, markerFile := range heuristic.markerFiles {
			if synthesizer.fileExists(filepath.Join(directoryPath, markerFile)) {
				patternBuilder.WriteString(heuristic.block)
				break
			}
		}
	}

	return patternBuilder.String()
}

// Synthesize appends the assembled patterns to the directory's ignore file,
// preserving any existing content. Previously appended blocks are not
// deduplicated; repeated runs concatenate.
func (synthesizer *IgnoreFileSynthesizer) Synthesize(directoryPath string) error {
	ignoreFilePath := filepath.Join(directoryPath, ignoreFileNameConstant)

	existingContent := ""
	if content, readError := synthesizer.fileSystem.ReadFile(ignoreFilePath); readError == nil {
		existingContent = string(content)
	}

	if len(existingContent) > 0 && !strings.HasSuffix(existingContent, "\n") {
		existingContent += "\n"
	}

	mergedContent := existingContent + synthesizer.BuildPatterns(directoryPath)
	return synthesizer.fileSystem.WriteFile(ignoreFilePath, []byte(mergedContent), ignoreFilePermissionsConstant)
}

func (synthesizer *IgnoreFileSynthesizer) fileExists(path string) bool {
	fileInfo, statError := synthesizer.fileSystem.Stat(path)
	if statError != nil {
		return false
	}
	return !fileInfo.IsDir()
}
