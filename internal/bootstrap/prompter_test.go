package bootstrap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIOConfirmationPrompterConfirm(testInstance *testing.T) {
	testCases := []struct {
		name            string
		input           string
		expectedOutcome bool
	}{
		{name: "lowercase_yes", input: "y\n", expectedOutcome: true},
		{name: "full_yes", input: "yes\n", expectedOutcome: true},
		{name: "uppercase_yes", input: "YES\n", expectedOutcome: true},
		{name: "padded_yes", input: "  y  \n", expectedOutcome: true},
		{name: "no", input: "n\n", expectedOutcome: false},
		{name: "blank_defaults_to_no", input: "\n", expectedOutcome: false},
		{name: "end_of_input_defaults_to_no", input: "", expectedOutcome: false},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			outputBuffer := &bytes.Buffer{}
			prompter := NewIOConfirmationPrompter(strings.NewReader(testCase.input), outputBuffer)

			confirmed, confirmError := prompter.Confirm("Continue? [y/N]: ")

			require.NoError(subtestInstance, confirmError)
			require.Equal(subtestInstance, testCase.expectedOutcome, confirmed)
			require.Equal(subtestInstance, "Continue? [y/N]: ", outputBuffer.String())
		})
	}
}

func TestIOStringPrompterPromptString(testInstance *testing.T) {
	testCases := []struct {
		name           string
		input          string
		defaultValue   string
		expectedAnswer string
	}{
		{name: "explicit_answer", input: "gadget\n", defaultValue: "widget", expectedAnswer: "gadget"},
		{name: "padded_answer_trimmed", input: "  gadget  \n", defaultValue: "widget", expectedAnswer: "gadget"},
		{name: "blank_uses_default", input: "\n", defaultValue: "widget", expectedAnswer: "widget"},
		{name: "end_of_input_uses_default", input: "", defaultValue: "widget", expectedAnswer: "widget"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			outputBuffer := &bytes.Buffer{}
			prompter := NewIOStringPrompter(strings.NewReader(testCase.input), outputBuffer)

			answer, promptError := prompter.PromptString("Project name [widget]: ", testCase.defaultValue)

			require.NoError(subtestInstance, promptError)
			require.Equal(subtestInstance, testCase.expectedAnswer, answer)
			require.Equal(subtestInstance, "Project name [widget]: ", outputBuffer.String())
		})
	}
}
