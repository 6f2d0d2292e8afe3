package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testConfigurationFileNameConstant   = "config.yaml"
	testBootstrapCommandNameConstant    = "bootstrap"
	testPathExtendCommandNameConstant   = "path-extend"
	testConfigurationContentConstant    = "common:\n  log_level: debug\n  log_format: console\ntools:\n  bootstrap:\n    remote_name: upstream\n    commit_message: First light\n  path_extend:\n    profile_path: ~/.zprofile\n"
	testLogLevelEnvironmentNameConstant = "REPOINIT_COMMON_LOG_LEVEL"
)

func changeTestWorkingDirectory(testInstance *testing.T, directoryPath string) {
	testInstance.Helper()
	originalDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	require.NoError(testInstance, os.Chdir(directoryPath))
	testInstance.Cleanup(func() { _ = os.Chdir(originalDirectory) })
}

func writeTestConfiguration(testInstance *testing.T) string {
	testInstance.Helper()
	configurationPath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(testConfigurationContentConstant), 0o600))
	return configurationPath
}

func TestNewApplicationRegistersCommands(testInstance *testing.T) {
	application := NewApplication()

	registeredCommandNames := map[string]bool{}
	for _, registeredCommand := range application.rootCommand.Commands() {
		registeredCommandNames[registeredCommand.Name()] = true
	}

	require.True(testInstance, registeredCommandNames[testBootstrapCommandNameConstant])
	require.True(testInstance, registeredCommandNames[testPathExtendCommandNameConstant])
}

func TestInitializeConfigurationAppliesFileValues(testInstance *testing.T) {
	application := NewApplication()
	application.configurationFilePath = writeTestConfiguration(testInstance)

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, "debug", application.configuration.Common.LogLevel)
	require.Equal(testInstance, "console", application.configuration.Common.LogFormat)
	require.True(testInstance, application.humanReadableLoggingEnabled())
	require.Equal(testInstance, "upstream", application.configuration.Tools.Bootstrap.RemoteName)
	require.Equal(testInstance, "First light", application.configuration.Tools.Bootstrap.CommitMessage)
	require.Equal(testInstance, "~/.zprofile", application.configuration.Tools.PathExtend.ProfilePath)
	require.Equal(testInstance, application.configurationFilePath, application.configurationMetadata.ConfigFileUsed)
}

func TestInitializeConfigurationDefaultsWithoutFile(testInstance *testing.T) {
	changeTestWorkingDirectory(testInstance, testInstance.TempDir())
	application := NewApplication()

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, "info", application.configuration.Common.LogLevel)
	require.Equal(testInstance, "structured", application.configuration.Common.LogFormat)
	require.False(testInstance, application.humanReadableLoggingEnabled())
	require.Equal(testInstance, "origin", application.configuration.Tools.Bootstrap.RemoteName)
	require.Equal(testInstance, "Initial commit", application.configuration.Tools.Bootstrap.CommitMessage)
}

func TestInitializeConfigurationEnvironmentOverride(testInstance *testing.T) {
	changeTestWorkingDirectory(testInstance, testInstance.TempDir())
	testInstance.Setenv(testLogLevelEnvironmentNameConstant, "error")
	application := NewApplication()

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, "error", application.configuration.Common.LogLevel)
}

func TestInitializeConfigurationFlagOverridesFile(testInstance *testing.T) {
	application := NewApplication()
	application.configurationFilePath = writeTestConfiguration(testInstance)
	require.NoError(testInstance, application.rootCommand.PersistentFlags().Set(logFormatFlagNameConstant, "structured"))

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, "structured", application.configuration.Common.LogFormat)
	require.False(testInstance, application.humanReadableLoggingEnabled())
}

func TestApplicationExecuteShowsHelpWithoutArguments(testInstance *testing.T) {
	changeTestWorkingDirectory(testInstance, testInstance.TempDir())
	application := NewApplication()
	outputBuffer := &bytes.Buffer{}
	application.rootCommand.SetOut(outputBuffer)
	application.rootCommand.SetErr(outputBuffer)
	application.rootCommand.SetArgs([]string{})

	require.NoError(testInstance, application.Execute())
	require.Contains(testInstance, outputBuffer.String(), testBootstrapCommandNameConstant)
}

func TestInitializeConfigurationRejectsUnknownLogLevel(testInstance *testing.T) {
	changeTestWorkingDirectory(testInstance, testInstance.TempDir())
	application := NewApplication()
	require.NoError(testInstance, application.rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, "verbose"))

	require.Error(testInstance, application.initializeConfiguration(application.rootCommand))
}
