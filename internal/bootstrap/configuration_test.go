package bootstrap

import (
	"strings"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
)

func TestCommandConfigurationSanitize(testInstance *testing.T) {
	testCases := []struct {
		name          string
		configuration CommandConfiguration
		expected      CommandConfiguration
	}{
		{
			name:          "blank_values_restore_defaults",
			configuration: CommandConfiguration{},
			expected:      DefaultCommandConfiguration(),
		},
		{
			name: "values_trimmed_and_visibility_lowercased",
			configuration: CommandConfiguration{
				RemoteName:    "  upstream  ",
				Visibility:    " Private ",
				CommitMessage: "  First light  ",
				AssumeYes:     true,
			},
			expected: CommandConfiguration{
				RemoteName:    "upstream",
				Visibility:    "private",
				CommitMessage: "First light",
				AssumeYes:     true,
			},
		},
		{
			name: "whitespace_only_values_restore_defaults",
			configuration: CommandConfiguration{
				RemoteName:    "   ",
				Visibility:    "   ",
				CommitMessage: "   ",
			},
			expected: DefaultCommandConfiguration(),
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			require.Equal(subtestInstance, testCase.expected, testCase.configuration.Sanitize())
		})
	}
}

func TestDefaultConfigurationValues(testInstance *testing.T) {
	defaults := DefaultConfigurationValues("tools.bootstrap")

	require.Equal(testInstance, "origin", defaults["tools.bootstrap.remote_name"])
	require.Equal(testInstance, "", defaults["tools.bootstrap.visibility"])
	require.Equal(testInstance, "Initial commit", defaults["tools.bootstrap.commit_message"])
	require.Equal(testInstance, false, defaults["tools.bootstrap.assume_yes"])
}

func TestDefaultConfigurationValuesDecodeIntoConfiguration(testInstance *testing.T) {
	flattenedDefaults := map[string]any{}
	for configurationKey, configurationValue := range DefaultConfigurationValues("tools.bootstrap") {
		flattenedDefaults[strings.TrimPrefix(configurationKey, "tools.bootstrap.")] = configurationValue
	}

	var decodedConfiguration CommandConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "mapstructure",
		Result:  &decodedConfiguration,
	})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(flattenedDefaults))

	require.Equal(testInstance, DefaultCommandConfiguration(), decodedConfiguration)
}
