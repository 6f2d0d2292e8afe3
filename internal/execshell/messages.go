package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	gitInitSubcommandNameConstant      = "init"
	gitAddSubcommandNameConstant       = "add"
	gitCommitSubcommandNameConstant    = "commit"
	gitBranchSubcommandNameConstant    = "branch"
	gitRemoteSubcommandNameConstant    = "remote"
	gitPushSubcommandNameConstant      = "push"
	gitConfigSubcommandNameConstant    = "config"
	gitMessageFlagConstant             = "-m"
	gitBranchMoveFlagConstant          = "-m"
	gitBranchListFlagConstant          = "--list"
	gitRemoteAddSubcommandConstant     = "add"
	gitRemoteGetURLSubcommandConstant  = "get-url"
	gitSafeDirectoryOptionConstant     = "safe.directory"
	githubRepoSubcommandNameConstant   = "repo"
	githubViewSubcommandNameConstant   = "view"
	githubCreateSubcommandNameConstant = "create"
	githubAuthSubcommandNameConstant   = "auth"
	githubLoginSubcommandNameConstant  = "login"
	githubStatusSubcommandNameConstant = "status"
	githubAPISubcommandNameConstant    = "api"
)

const (
	gitInitStartTemplateConstant            = "Initializing repository in %s"
	gitInitSuccessTemplateConstant          = "Initialized repository in %s"
	gitInitFailureTemplateConstant          = "Failed to initialize repository in %s (exit code %d%s)"
	gitAddStartTemplateConstant             = "Staging %s in %s"
	gitAddSuccessTemplateConstant           = "Staged %s in %s"
	gitAddFailureTemplateConstant           = "Failed to stage %s in %s (exit code %d%s)"
	gitCommitStartTemplateConstant          = "Creating commit in %s with message %q"
	gitCommitSuccessTemplateConstant        = "Created commit in %s with message %q"
	gitCommitFailureTemplateConstant        = "Failed to create commit in %s with message %q (exit code %d%s)"
	gitBranchListStartTemplateConstant      = "Checking for branch %s in %s"
	gitBranchListSuccessTemplateConstant    = "Checked for branch %s in %s"
	gitBranchListFailureTemplateConstant    = "Failed to check for branch %s in %s (exit code %d%s)"
	gitBranchRenameStartTemplateConstant    = "Renaming current branch to %s in %s"
	gitBranchRenameSuccessTemplateConstant  = "Renamed current branch to %s in %s"
	gitBranchRenameFailureTemplateConstant  = "Failed to rename current branch to %s in %s (exit code %d%s)"
	gitBranchCreateStartTemplateConstant    = "Creating branch %s in %s"
	gitBranchCreateSuccessTemplateConstant  = "Created branch %s in %s"
	gitBranchCreateFailureTemplateConstant  = "Failed to create branch %s in %s (exit code %d%s)"
	gitRemoteAddStartTemplateConstant       = "Registering remote %s in %s"
	gitRemoteAddSuccessTemplateConstant     = "Registered remote %s in %s"
	gitRemoteAddFailureTemplateConstant     = "Failed to register remote %s in %s (exit code %d%s)"
	gitRemoteListStartTemplateConstant      = "Listing remotes in %s"
	gitRemoteListSuccessTemplateConstant    = "Listed remotes in %s"
	gitRemoteListFailureTemplateConstant    = "Failed to list remotes in %s (exit code %d%s)"
	gitRemoteGetURLStartTemplateConstant    = "Reading URL of remote %s in %s"
	gitRemoteGetURLSuccessTemplateConstant  = "Read URL of remote %s in %s"
	gitRemoteGetURLFailureTemplateConstant  = "Failed to read URL of remote %s in %s (exit code %d%s)"
	gitPushStartTemplateConstant            = "Pushing %s to %s from %s"
	gitPushSuccessTemplateConstant          = "Pushed %s to %s from %s"
	gitPushFailureTemplateConstant          = "Failed to push %s to %s from %s (exit code %d%s)"
	gitSafeDirectoryStartTemplateConstant   = "Marking %s as a safe repository directory"
	gitSafeDirectorySuccessTemplateConstant = "Marked %s as a safe repository directory"
	gitSafeDirectoryFailureTemplateConstant = "Failed to mark %s as a safe repository directory (exit code %d%s)"
	githubRepoViewStartTemplateConstant     = "Checking GitHub repository %s"
	githubRepoViewSuccessTemplateConstant   = "Checked GitHub repository %s"
	githubRepoViewFailureTemplateConstant   = "GitHub repository %s is not accessible (exit code %d%s)"
	githubRepoCreateStartTemplateConstant   = "Creating GitHub repository %s"
	githubRepoCreateSuccessTemplateConstant = "Created GitHub repository %s"
	githubRepoCreateFailureTemplateConstant = "Failed to create GitHub repository %s (exit code %d%s)"
	githubAuthStatusStartTemplateConstant   = "Checking GitHub CLI authentication"
	githubAuthStatusSuccessTemplateConstant = "GitHub CLI authentication confirmed"
	githubAuthStatusFailureTemplateConstant = "GitHub CLI authentication missing (exit code %d%s)"
	githubAuthLoginStartTemplateConstant    = "Starting interactive GitHub CLI login"
	githubAuthLoginSuccessTemplateConstant  = "Completed interactive GitHub CLI login"
	githubAuthLoginFailureTemplateConstant  = "Interactive GitHub CLI login failed (exit code %d%s)"
	githubAPIUserStartTemplateConstant      = "Resolving authenticated GitHub user"
	githubAPIUserSuccessTemplateConstant    = "Resolved authenticated GitHub user"
	githubAPIUserFailureTemplateConstant    = "Failed to resolve authenticated GitHub user (exit code %d%s)"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch command.Name {
	case CommandGit:
		return formatter.describeGitMessage(command, result, failure, stage)
	case CommandGitHub:
		return formatter.describeGitHubMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	workingDirectory := formatter.describeWorkingDirectory(command)
	arguments := command.Details.Arguments

	switch strings.TrimSpace(arguments[0]) {
	case gitInitSubcommandNameConstant:
		return formatter.renderStageMessage(stage, result, failure, command,
			fmt.Sprintf(gitInitStartTemplateConstant, workingDirectory),
			fmt.Sprintf(gitInitSuccessTemplateConstant, workingDirectory),
			gitInitFailureTemplateConstant, []any{workingDirectory})
	case gitAddSubcommandNameConstant:
		target := formatter.ensureValue(formatter.firstNonFlagArgument(arguments[1:]))
		return formatter.renderStageMessage(stage, result, failure, command,
			fmt.Sprintf(gitAddStartTemplateConstant, target, workingDirectory),
			fmt.Sprintf(gitAddSuccessTemplateConstant, target, workingDirectory),
			gitAddFailureTemplateConstant, []any{target, workingDirectory})
	case gitCommitSubcommandNameConstant:
		commitMessage := formatter.flagValue(arguments, gitMessageFlagConstant)
		return formatter.renderStageMessage(stage, result, failure, command,
			fmt.Sprintf(gitCommitStartTemplateConstant, workingDirectory, commitMessage),
			fmt.Sprintf(gitCommitSuccessTemplateConstant, workingDirectory, commitMessage),
			gitCommitFailureTemplateConstant, []any{workingDirectory, commitMessage})
	case gitBranchSubcommandNameConstant:
		return formatter.describeGitBranchMessage(command, result, failure, stage, workingDirectory)
	case gitRemoteSubcommandNameConstant:
		return formatter.describeGitRemoteMessage(command, result, failure, stage, workingDirectory)
	case gitPushSubcommandNameConstant:
		remoteArgumentIndex := formatter.pushRemoteIndex(arguments)
		remoteName := formatter.ensureValue(formatter.argumentAtIndex(arguments, remoteArgumentIndex))
		branchName := formatter.ensureValue(formatter.argumentAtIndex(arguments, remoteArgumentIndex+1))
		return formatter.renderStageMessage(stage, result, failure, command,
			fmt.Sprintf(gitPushStartTemplateConstant, branchName, remoteName, workingDirectory),
			fmt.Sprintf(gitPushSuccessTemplateConstant, branchName, remoteName, workingDirectory),
			gitPushFailureTemplateConstant, []any{branchName, remoteName, workingDirectory})
	case gitConfigSubcommandNameConstant:
		if containsArgument(arguments, gitSafeDirectoryOptionConstant) {
			directory := formatter.ensureValue(formatter.argumentAtIndex(arguments, len(arguments)-1))
			return formatter.renderStageMessage(stage, result, failure, command,
				fmt.Sprintf(gitSafeDirectoryStartTemplateConstant, directory),
				fmt.Sprintf(gitSafeDirectorySuccessTemplateConstant, directory),
				gitSafeDirectoryFailureTemplateConstant, []any{directory})
		}
		return formatter.buildGenericMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitBranchMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage, workingDirectory string) string {
	arguments := command.Details.Arguments
	branchName := formatter.ensureValue(formatter.lastNonFlagArgument(arguments[1:]))

	switch {
	case containsArgument(arguments, gitBranchListFlagConstant):
		return formatter.renderStageMessage(stage, result, failure, command,
			fmt.Sprintf(gitBranchListStartTemplateConstant, branchName, workingDirectory),
			fmt.Sprintf(gitBranchListSuccessTemplateConstant, branchName, workingDirectory),
			gitBranchListFailureTemplateConstant, []any{branchName, workingDirectory})
	case containsArgument(arguments[1:], gitBranchMoveFlagConstant):
		return formatter.renderStageMessage(stage, result, failure, command,
			fmt.Sprintf(gitBranchRenameStartTemplateConstant, branchName, workingDirectory),
			fmt.Sprintf(gitBranchRenameSuccessTemplateConstant, branchName, workingDirectory),
			gitBranchRenameFailureTemplateConstant, []any{branchName, workingDirectory})
	default:
		return formatter.renderStageMessage(stage, result, failure, command,
			fmt.Sprintf(gitBranchCreateStartTemplateConstant, branchName, workingDirectory),
			fmt.Sprintf(gitBranchCreateSuccessTemplateConstant, branchName, workingDirectory),
			gitBranchCreateFailureTemplateConstant, []any{branchName, workingDirectory})
	}
}

func (formatter CommandMessageFormatter) describeGitRemoteMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage, workingDirectory string) string {
	arguments := command.Details.Arguments
	if len(arguments) > 1 && strings.TrimSpace(arguments[1]) == gitRemoteAddSubcommandConstant {
		remoteName := formatter.ensureValue(formatter.argumentAtIndex(arguments, 2))
		return formatter.renderStageMessage(stage, result, failure, command,
			fmt.Sprintf(gitRemoteAddStartTemplateConstant, remoteName, workingDirectory),
			fmt.Sprintf(gitRemoteAddSuccessTemplateConstant, remoteName, workingDirectory),
			gitRemoteAddFailureTemplateConstant, []any{remoteName, workingDirectory})
	}
	if len(arguments) > 1 && strings.TrimSpace(arguments[1]) == gitRemoteGetURLSubcommandConstant {
		remoteName := formatter.ensureValue(formatter.argumentAtIndex(arguments, 2))
		return formatter.renderStageMessage(stage, result, failure, command,
			fmt.Sprintf(gitRemoteGetURLStartTemplateConstant, remoteName, workingDirectory),
			fmt.Sprintf(gitRemoteGetURLSuccessTemplateConstant, remoteName, workingDirectory),
			gitRemoteGetURLFailureTemplateConstant, []any{remoteName, workingDirectory})
	}
	return formatter.renderStageMessage(stage, result, failure, command,
		fmt.Sprintf(gitRemoteListStartTemplateConstant, workingDirectory),
		fmt.Sprintf(gitRemoteListSuccessTemplateConstant, workingDirectory),
		gitRemoteListFailureTemplateConstant, []any{workingDirectory})
}

func (formatter CommandMessageFormatter) describeGitHubMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	switch strings.TrimSpace(arguments[0]) {
	case githubRepoSubcommandNameConstant:
		if len(arguments) < 3 {
			return formatter.buildGenericMessage(command, result, failure, stage)
		}
		repository := formatter.ensureValue(arguments[2])
		switch strings.TrimSpace(arguments[1]) {
		case githubViewSubcommandNameConstant:
			return formatter.renderStageMessage(stage, result, failure, command,
				fmt.Sprintf(githubRepoViewStartTemplateConstant, repository),
				fmt.Sprintf(githubRepoViewSuccessTemplateConstant, repository),
				githubRepoViewFailureTemplateConstant, []any{repository})
		case githubCreateSubcommandNameConstant:
			return formatter.renderStageMessage(stage, result, failure, command,
				fmt.Sprintf(githubRepoCreateStartTemplateConstant, repository),
				fmt.Sprintf(githubRepoCreateSuccessTemplateConstant, repository),
				githubRepoCreateFailureTemplateConstant, []any{repository})
		default:
			return formatter.buildGenericMessage(command, result, failure, stage)
		}
	case githubAuthSubcommandNameConstant:
		if len(arguments) < 2 {
			return formatter.buildGenericMessage(command, result, failure, stage)
		}
		switch strings.TrimSpace(arguments[1]) {
		case githubStatusSubcommandNameConstant:
			return formatter.renderStageMessage(stage, result, failure, command,
				githubAuthStatusStartTemplateConstant,
				githubAuthStatusSuccessTemplateConstant,
				githubAuthStatusFailureTemplateConstant, nil)
		case githubLoginSubcommandNameConstant:
			return formatter.renderStageMessage(stage, result, failure, command,
				githubAuthLoginStartTemplateConstant,
				githubAuthLoginSuccessTemplateConstant,
				githubAuthLoginFailureTemplateConstant, nil)
		default:
			return formatter.buildGenericMessage(command, result, failure, stage)
		}
	case githubAPISubcommandNameConstant:
		return formatter.renderStageMessage(stage, result, failure, command,
			githubAPIUserStartTemplateConstant,
			githubAPIUserSuccessTemplateConstant,
			githubAPIUserFailureTemplateConstant, nil)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) renderStageMessage(stage messageStage, result ExecutionResult, failure error, command ShellCommand, startMessage string, successMessage string, failureTemplate string, failureArguments []any) string {
	switch stage {
	case messageStageStart:
		return startMessage
	case messageStageSuccess:
		return successMessage
	case messageStageFailure:
		formatArguments := append(append([]any{}, failureArguments...), result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		return fmt.Sprintf(failureTemplate, formatArguments...)
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, startMessage, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	workingDirectorySuffix := formatter.formatWorkingDirectorySuffix(command)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) argumentAtIndex(arguments []string, index int) string {
	if index >= 0 && index < len(arguments) {
		return arguments[index]
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) firstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, "-") {
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) lastNonFlagArgument(arguments []string) string {
	for index := len(arguments) - 1; index >= 0; index-- {
		trimmed := strings.TrimSpace(arguments[index])
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, "-") {
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) pushRemoteIndex(arguments []string) int {
	for index := 1; index < len(arguments); index++ {
		trimmed := strings.TrimSpace(arguments[index])
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, "-") {
			continue
		}
		return index
	}
	return len(arguments)
}

func (formatter CommandMessageFormatter) flagValue(arguments []string, flag string) string {
	for index := 0; index < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == flag && index+1 < len(arguments) {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return fallbackUnknownValueLabelConstant
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}
