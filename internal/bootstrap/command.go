package bootstrap

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/repokit/repoinit/internal/execshell"
	"github.com/repokit/repoinit/internal/githubcli"
	"github.com/repokit/repoinit/internal/gitrepo"
	"github.com/repokit/repoinit/internal/ui"
	"github.com/repokit/repoinit/internal/utils/flags"
	pathutils "github.com/repokit/repoinit/internal/utils/path"
)

const (
	commandUseConstant                      = "bootstrap [project-name]"
	commandShortDescriptionConstant         = "Create a local repository and its GitHub remote"
	commandLongDescriptionConstant          = "bootstrap initializes the working directory as a Git repository, creates or adopts a GitHub repository with the same name, synthesizes a .gitignore, commits the current content, and pushes to the remote default branch."
	commandExecutionErrorTemplateConstant   = "bootstrap failed: %w"
	visibilityFlagDescriptionConstant       = "Visibility of the created repository"
	executorCreationErrorTemplateConstant   = "unable to construct shell executor: %w"
	repositoryManagerCreationErrorTemplate  = "unable to construct repository manager: %w"
	githubClientCreationErrorTemplate       = "unable to construct GitHub client: %w"
	serviceCreationErrorTemplateConstant    = "unable to construct bootstrap service: %w"
	workingDirectoryResolutionErrorTemplate = "unable to resolve working directory: %w"
	bootstrapCompletedMessageConstant       = "Repository bootstrap completed"
	resultFieldRepositoryConstant           = "repository"
	resultFieldRemoteCreatedConstant        = "remote_created"
	resultFieldLocalInitializedConstant     = "local_initialized"
	resultFieldRemoteBoundConstant          = "remote_bound"
	resultFieldDefaultBranchConstant        = "default_branch"
	resultFieldPushedConstant               = "pushed"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ServiceProvider constructs a bootstrap service from dependencies.
type ServiceProvider func(dependencies ServiceDependencies) (*Service, error)

type commandOptions struct {
	projectName      string
	workingDirectory string
	remoteName       string
	visibility       string
	visibilitySet    bool
	commitMessage    string
	assumeYes        bool
}

// CommandBuilder assembles the bootstrap Cobra command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	CommandRunner                execshell.CommandRunner
	ServiceProvider              ServiceProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration

	assumeYesFlagValue bool
}

// Build constructs the bootstrap command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.MaximumNArgs(1),
		RunE:          builder.runBootstrap,
	}

	defaults := builder.resolveConfiguration()
	command.Flags().String(
		flags.VisibilityFlagName,
		defaults.Visibility,
		flags.FormatChoiceUsage(defaultVisibilityConstant, []string{string(githubcli.RepositoryVisibilityPublic), string(githubcli.RepositoryVisibilityPrivate)}, visibilityFlagDescriptionConstant),
	)
	command.Flags().String(flags.RemoteFlagName, defaults.RemoteName, flags.RemoteFlagUsage)
	command.Flags().String(flags.DirectoryFlagName, "", flags.DirectoryFlagUsage)
	flags.AddToggleFlag(command.Flags(), &builder.assumeYesFlagValue, flags.AssumeYesFlagName, flags.AssumeYesFlagShorthand, defaults.AssumeYes, flags.AssumeYesFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) runBootstrap(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()
	humanReadableLogging := builder.humanReadableLoggingEnabled()

	executor, executorError := builder.resolveExecutor(logger, humanReadableLogging)
	if executorError != nil {
		return fmt.Errorf(executorCreationErrorTemplateConstant, executorError)
	}

	repositoryManager, managerError := gitrepo.NewRepositoryManager(executor)
	if managerError != nil {
		return fmt.Errorf(repositoryManagerCreationErrorTemplate, managerError)
	}

	githubClient, githubClientError := githubcli.NewClient(executor)
	if githubClientError != nil {
		return fmt.Errorf(githubClientCreationErrorTemplate, githubClientError)
	}

	service, serviceError := builder.resolveService(ServiceDependencies{
		Logger:               logger,
		RepositoryManager:    repositoryManager,
		GitHubClient:         githubClient,
		FileSystem:           OSFileSystem{},
		ConfirmationPrompter: NewIOConfirmationPrompter(command.InOrStdin(), command.OutOrStdout()),
		StringPrompter:       NewIOStringPrompter(command.InOrStdin(), command.OutOrStdout()),
	})
	if serviceError != nil {
		return fmt.Errorf(serviceCreationErrorTemplateConstant, serviceError)
	}

	serviceOptions := Options{
		ProjectName:      options.projectName,
		WorkingDirectory: options.workingDirectory,
		RemoteName:       options.remoteName,
		CommitMessage:    options.commitMessage,
		AssumeYes:        options.assumeYes,
	}
	if options.visibilitySet {
		serviceOptions.Visibility = githubcli.RepositoryVisibility(options.visibility)
	}

	result, executionError := service.Execute(command.Context(), serviceOptions)
	if executionError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, executionError)
	}

	logger.Info(
		bootstrapCompletedMessageConstant,
		zap.String(resultFieldRepositoryConstant, result.RepositoryIdentifier),
		zap.Bool(resultFieldRemoteCreatedConstant, result.RemoteCreated),
		zap.Bool(resultFieldLocalInitializedConstant, result.LocalInitialized),
		zap.Bool(resultFieldRemoteBoundConstant, result.RemoteBound),
		zap.String(resultFieldDefaultBranchConstant, result.DefaultBranch),
		zap.Bool(resultFieldPushedConstant, result.Pushed),
	)
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (commandOptions, error) {
	configuration := builder.resolveConfiguration()

	options := commandOptions{
		remoteName:    configuration.RemoteName,
		visibility:    configuration.Visibility,
		commitMessage: configuration.CommitMessage,
		assumeYes:     configuration.AssumeYes,
	}

	if len(arguments) > 0 {
		options.projectName = strings.TrimSpace(arguments[0])
	}

	if command != nil {
		if command.Flags().Changed(flags.VisibilityFlagName) {
			flagValue, _ := command.Flags().GetString(flags.VisibilityFlagName)
			parsedVisibility, parseError := flags.ParseChoice(flagValue, []string{
				string(githubcli.RepositoryVisibilityPublic),
				string(githubcli.RepositoryVisibilityPrivate),
			})
			if parseError != nil {
				return commandOptions{}, parseError
			}
			options.visibility = parsedVisibility
			options.visibilitySet = true
		}
		if command.Flags().Changed(flags.RemoteFlagName) {
			flagValue, _ := command.Flags().GetString(flags.RemoteFlagName)
			options.remoteName = strings.TrimSpace(flagValue)
		}
		if command.Flags().Changed(flags.AssumeYesFlagName) {
			options.assumeYes = builder.assumeYesFlagValue
		}
	}

	directoryFlagValue := ""
	if command != nil {
		directoryFlagValue, _ = command.Flags().GetString(flags.DirectoryFlagName)
	}
	workingDirectory, directoryError := pathutils.NewTargetPathResolver().Resolve(directoryFlagValue)
	if directoryError != nil {
		return commandOptions{}, fmt.Errorf(workingDirectoryResolutionErrorTemplate, directoryError)
	}
	options.workingDirectory = workingDirectory

	// Any configured visibility counts as the explicit choice; interactive
	// selection only covers the blank case.
	if !options.visibilitySet && len(options.visibility) > 0 {
		options.visibilitySet = true
	}

	return options, nil
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

func (builder *CommandBuilder) humanReadableLoggingEnabled() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger, humanReadableLogging bool) (*execshell.ShellExecutor, error) {
	commandRunner := builder.CommandRunner
	if commandRunner == nil {
		commandRunner = execshell.NewOSCommandRunner()
	}

	executor, creationError := execshell.NewShellExecutor(logger, commandRunner, humanReadableLogging)
	if creationError != nil {
		return nil, creationError
	}
	if humanReadableLogging {
		executor.RegisterObserver(ui.NewConsoleCommandEventLogger(logger))
	}
	return executor, nil
}

func (builder *CommandBuilder) resolveService(dependencies ServiceDependencies) (*Service, error) {
	if builder.ServiceProvider != nil {
		return builder.ServiceProvider(dependencies)
	}
	return NewService(dependencies)
}
