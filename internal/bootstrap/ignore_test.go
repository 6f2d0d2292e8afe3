package bootstrap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIgnoreFileSynthesizerBuildPatterns(testInstance *testing.T) {
	testCases := []struct {
		name             string
		markerFiles      []string
		expectedSections []string
		excludedSections []string
	}{
		{
			name:             "generic_only",
			expectedSections: []string{"# General"},
			excludedSections: []string{"# Node.js", "# Go", "# Python", "# Rust"},
		},
		{
			name:             "node_project",
			markerFiles:      []string{"package.json"},
			expectedSections: []string{"# General", "# Node.js", "node_modules/"},
			excludedSections: []string{"# Go", "# Python", "# Rust"},
		},
		{
			name:             "go_project",
			markerFiles:      []string{"go.mod"},
			expectedSections: []string{"# General", "# Go", "vendor/"},
			excludedSections: []string{"# Node.js"},
		},
		{
			name:             "python_project_via_pyproject",
			markerFiles:      []string{"pyproject.toml"},
			expectedSections: []string{"# Python", "__pycache__/"},
		},
		{
			name:             "rust_project",
			markerFiles:      []string{"Cargo.toml"},
			expectedSections: []string{"# Rust", "target/"},
		},
		{
			name:             "mixed_project",
			markerFiles:      []string{"package.json", "go.mod"},
			expectedSections: []string{"# Node.js", "# Go"},
			excludedSections: []string{"# Python", "# Rust"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			fileSystem := newFakeFileSystem()
			for _, markerFile := range testCase.markerFiles {
				fileSystem.files["/workspace/widget/"+markerFile] = []byte("{}")
			}
			synthesizer := NewIgnoreFileSynthesizer(fileSystem)

			patterns := synthesizer.BuildPatterns("/workspace/widget")

			for _, expectedSection := range testCase.expectedSections {
				require.Contains(subtestInstance, patterns, expectedSection)
			}
			for _, excludedSection := range testCase.excludedSections {
				require.NotContains(subtestInstance, patterns, excludedSection)
			}
		})
	}
}

func TestIgnoreFileSynthesizerPreservesExistingContent(testInstance *testing.T) {
	fileSystem := newFakeFileSystem()
	fileSystem.files["/workspace/widget/.gitignore"] = []byte("custom-pattern")
	synthesizer := NewIgnoreFileSynthesizer(fileSystem)

	require.NoError(testInstance, synthesizer.Synthesize("/workspace/widget"))

	writtenContent := string(fileSystem.writtenFiles["/workspace/widget/.gitignore"])
	require.True(testInstance, strings.HasPrefix(writtenContent, "custom-pattern\n"))
	require.Contains(testInstance, writtenContent, "# General")
}

func TestIgnoreFileSynthesizerRepeatedRunsConcatenate(testInstance *testing.T) {
	fileSystem := newFakeFileSystem()
	synthesizer := NewIgnoreFileSynthesizer(fileSystem)

	require.NoError(testInstance, synthesizer.Synthesize("/workspace/widget"))
	fileSystem.files["/workspace/widget/.gitignore"] = fileSystem.writtenFiles["/workspace/widget/.gitignore"]
	require.NoError(testInstance, synthesizer.Synthesize("/workspace/widget"))

	writtenContent := string(fileSystem.writtenFiles["/workspace/widget/.gitignore"])
	require.Equal(testInstance, 2, strings.Count(writtenContent, "# General"))
}

func TestIgnoreFileSynthesizerIgnoresMarkerDirectories(testInstance *testing.T) {
	fileSystem := newFakeFileSystem()
	fileSystem.directories["/workspace/widget/package.json"] = true
	synthesizer := NewIgnoreFileSynthesizer(fileSystem)

	patterns := synthesizer.BuildPatterns("/workspace/widget")

	require.NotContains(testInstance, patterns, "# Node.js")
}
