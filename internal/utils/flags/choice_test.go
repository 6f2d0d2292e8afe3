package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(t *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "DefaultFirstChoice",
			defaultChoice:  "public",
			choices:        []string{"public", "private"},
			description:    "Visibility of the created repository.",
			expectedOutput: "`<PUBLIC|private>` Visibility of the created repository.",
		},
		{
			name:           "DefaultSecondChoice",
			defaultChoice:  "private",
			choices:        []string{"public", "private"},
			description:    "Visibility of the created repository.",
			expectedOutput: "`<public|PRIVATE>` Visibility of the created repository.",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "alpha",
			choices:        []string{"alpha", "beta"},
			description:    "",
			expectedOutput: "`<ALPHA|beta>`",
		},
		{
			name:           "DuplicateChoicesIgnored",
			defaultChoice:  "beta",
			choices:        []string{"beta", "beta", "alpha", "alpha"},
			description:    "Select between options.",
			expectedOutput: "`<BETA|alpha>` Select between options.",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			actual := FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description)
			require.Equal(t, testCase.expectedOutput, actual)
		})
	}
}

func TestParseChoice(t *testing.T) {
	testCases := []struct {
		name          string
		rawValue      string
		choices       []string
		expectedValue string
		expectFailure bool
	}{
		{
			name:          "ExactMatch",
			rawValue:      "private",
			choices:       []string{"public", "private"},
			expectedValue: "private",
		},
		{
			name:          "CaseAndWhitespaceNormalized",
			rawValue:      " Public ",
			choices:       []string{"public", "private"},
			expectedValue: "public",
		},
		{
			name:          "UnknownValueRejected",
			rawValue:      "internal",
			choices:       []string{"public", "private"},
			expectFailure: true,
		},
		{
			name:          "EmptyValueRejected",
			rawValue:      "",
			choices:       []string{"public", "private"},
			expectFailure: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			parsedValue, parseError := ParseChoice(testCase.rawValue, testCase.choices)
			if testCase.expectFailure {
				require.Error(t, parseError)
				return
			}
			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedValue, parsedValue)
		})
	}
}
