package pathenv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/repokit/repoinit/internal/utils/path"
)

func newCommandTestBuilder(fileSystem *fakeProfileFileSystem, configuration CommandConfiguration) *CommandBuilder {
	return &CommandBuilder{
		ConfigurationProvider: func() CommandConfiguration { return configuration },
		ServiceProvider: func(dependencies ServiceDependencies) (*Service, error) {
			return NewService(ServiceDependencies{
				Logger:                 dependencies.Logger,
				FileSystem:             fileSystem,
				EnvironmentLookup:      newTestEnvironment(defaultTestEnvironment()),
				ExecutablePathProvider: func() (string, error) { return testExecutablePathConstant, nil },
				PathResolver: pathutils.NewTargetPathResolverWithProviders(
					pathutils.NewHomeExpanderWithProvider(func() (string, error) { return testHomeDirectoryConstant, nil }),
					func() (string, error) { return testToolDirectoryConstant, nil },
				),
			})
		},
	}
}

func TestCommandBuilderBuildConfiguresCommand(testInstance *testing.T) {
	builder := newCommandTestBuilder(newFakeProfileFileSystem(), CommandConfiguration{})

	command, buildError := builder.Build()

	require.NoError(testInstance, buildError)
	require.Equal(testInstance, "path-extend", command.Name())
	require.NotNil(testInstance, command.Flags().Lookup("profile"))
	require.True(testInstance, command.SilenceUsage)
	require.True(testInstance, command.SilenceErrors)
}

func TestCommandAppendsDirectoryFromArgument(testInstance *testing.T) {
	fileSystem := newFakeProfileFileSystem()
	builder := newCommandTestBuilder(fileSystem, CommandConfiguration{})

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{testToolDirectoryConstant})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, string(fileSystem.writtenFiles[testProfilePathConstant]), testExportLineConstant)
}

func TestCommandProfileFlagOverridesConfiguration(testInstance *testing.T) {
	fileSystem := newFakeProfileFileSystem()
	builder := newCommandTestBuilder(fileSystem, CommandConfiguration{ProfilePath: "/home/builder/.config/profile"})

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{testToolDirectoryConstant, "--profile", "/home/builder/.zprofile"})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, fileSystem.writtenFiles, "/home/builder/.zprofile")
	require.NotContains(testInstance, fileSystem.writtenFiles, "/home/builder/.config/profile")
}
