package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateProjectName(testInstance *testing.T) {
	testCases := []struct {
		name          string
		projectName   string
		expectFailure bool
	}{
		{name: "simple_name", projectName: "widget"},
		{name: "single_character", projectName: "a"},
		{name: "dotted_name", projectName: "widget.io"},
		{name: "dashed_and_underscored", projectName: "my-widget_kit"},
		{name: "leading_dash", projectName: "-widget", expectFailure: true},
		{name: "trailing_dot", projectName: "widget.", expectFailure: true},
		{name: "double_dot", projectName: "widget..kit", expectFailure: true},
		{name: "embedded_space", projectName: "my widget", expectFailure: true},
		{name: "path_separator", projectName: "owner/widget", expectFailure: true},
		{name: "empty_name", projectName: "", expectFailure: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			validationError := ValidateProjectName(testCase.projectName)
			if testCase.expectFailure {
				var nameFailure InvalidProjectNameError
				require.ErrorAs(subtestInstance, validationError, &nameFailure)
				require.Equal(subtestInstance, testCase.projectName, nameFailure.ProjectName)
				return
			}
			require.NoError(subtestInstance, validationError)
		})
	}
}

func TestResolveProjectName(testInstance *testing.T) {
	testCases := []struct {
		name             string
		candidateName    string
		workingDirectory string
		expectedName     string
		expectFailure    bool
	}{
		{name: "explicit_name", candidateName: "widget", workingDirectory: "/workspace/other", expectedName: "widget"},
		{name: "blank_falls_back_to_directory", candidateName: "", workingDirectory: "/workspace/widget", expectedName: "widget"},
		{name: "whitespace_falls_back_to_directory", candidateName: "   ", workingDirectory: "/workspace/widget", expectedName: "widget"},
		{name: "trailing_separator_ignored", candidateName: "", workingDirectory: "/workspace/widget/", expectedName: "widget"},
		{name: "invalid_directory_name", candidateName: "", workingDirectory: "/workspace/my widget", expectFailure: true},
		{name: "invalid_explicit_name", candidateName: "bad name", workingDirectory: "/workspace/widget", expectFailure: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			resolvedName, resolutionError := ResolveProjectName(testCase.candidateName, testCase.workingDirectory)
			if testCase.expectFailure {
				require.Error(subtestInstance, resolutionError)
				return
			}
			require.NoError(subtestInstance, resolutionError)
			require.Equal(subtestInstance, testCase.expectedName, resolvedName)
		})
	}
}
