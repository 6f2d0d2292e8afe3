package pathenv

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/repokit/repoinit/internal/utils/flags"
)

const (
	commandUseConstant              = "path-extend [directory]"
	commandShortDescriptionConstant = "Persistently add a directory to PATH"
	commandLongDescriptionConstant  = "path-extend appends an export statement for the given directory (default: the directory containing this executable) to the shell profile, skipping profiles that already export it."
	commandExecutionErrorTemplate   = "path-extend failed: %w"
	serviceCreationErrorTemplate    = "unable to construct path extension service: %w"

	pathExtendCompletedMessageConstant = "PATH extension completed"
	resultFieldProfileConstant         = "profile"
	resultFieldDirectoryConstant       = "directory"
	resultFieldModifiedConstant        = "modified"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ServiceProvider constructs a path extension service from dependencies.
type ServiceProvider func(dependencies ServiceDependencies) (*Service, error)

// CommandBuilder assembles the path-extend Cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ServiceProvider       ServiceProvider
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the path-extend command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.MaximumNArgs(1),
		RunE:          builder.runPathExtend,
	}

	command.Flags().String(flags.ProfileFlagName, "", flags.ProfileFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) runPathExtend(command *cobra.Command, arguments []string) error {
	options := Options{ProfilePath: builder.resolveConfiguration().ProfilePath}
	if len(arguments) > 0 {
		options.DirectoryPath = strings.TrimSpace(arguments[0])
	}
	if command.Flags().Changed(flags.ProfileFlagName) {
		flagValue, _ := command.Flags().GetString(flags.ProfileFlagName)
		options.ProfilePath = strings.TrimSpace(flagValue)
	}

	logger := builder.resolveLogger()

	service, serviceError := builder.resolveService(ServiceDependencies{Logger: logger})
	if serviceError != nil {
		return fmt.Errorf(serviceCreationErrorTemplate, serviceError)
	}

	result, executionError := service.Execute(options)
	if executionError != nil {
		return fmt.Errorf(commandExecutionErrorTemplate, executionError)
	}

	logger.Info(
		pathExtendCompletedMessageConstant,
		zap.String(resultFieldProfileConstant, result.ProfilePath),
		zap.String(resultFieldDirectoryConstant, result.DirectoryPath),
		zap.Bool(resultFieldModifiedConstant, result.Modified),
	)
	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveService(dependencies ServiceDependencies) (*Service, error) {
	if builder.ServiceProvider != nil {
		return builder.ServiceProvider(dependencies)
	}
	return NewService(dependencies)
}
