package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/repokit/repoinit/internal/execshell"
)

const (
	managerExecutorNotConfiguredConstant  = "git executor not configured"
	gitVersionSubcommandConstant          = "--version"
	gitInitSubcommandConstant             = "init"
	gitAddSubcommandConstant              = "add"
	gitAddAllArgumentConstant             = "."
	gitCommitSubcommandConstant           = "commit"
	gitCommitMessageFlagConstant          = "-m"
	gitBranchSubcommandConstant           = "branch"
	gitBranchShowCurrentFlagConstant      = "--show-current"
	gitBranchListFlagConstant             = "--list"
	gitBranchMoveFlagConstant             = "-m"
	gitRemoteSubcommandConstant           = "remote"
	gitRemoteAddSubcommandConstant        = "add"
	gitRemoteGetURLSubcommandConstant     = "get-url"
	gitPushSubcommandConstant             = "push"
	gitPushSetUpstreamFlagConstant        = "-u"
	gitConfigSubcommandConstant           = "config"
	gitConfigGlobalFlagConstant           = "--global"
	gitConfigAddFlagConstant              = "--add"
	gitConfigSafeDirectoryKeyConstant     = "safe.directory"
	gitStatusSubcommandConstant           = "status"
	gitStatusPorcelainFlagConstant        = "--porcelain"
	repositoryPathRequiredMessageConstant = "repository path is required"
	commitMessageRequiredMessageConstant  = "commit message is required"
	branchNameRequiredMessageConstant     = "branch name is required"
	remoteNameRequiredMessageConstant     = "remote name is required"
	remoteURLRequiredMessageConstant      = "remote url is required"
	safeDirectoryRequiredMessageConstant  = "safe directory path is required"
)

// ErrGitExecutorNotConfigured indicates the manager was constructed without an executor.
var ErrGitExecutorNotConfigured = errors.New(managerExecutorNotConfiguredConstant)

// GitExecutor runs git commands on behalf of the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager performs git operations against a working directory.
type RepositoryManager struct {
	gitExecutor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager backed by the provided executor.
func NewRepositoryManager(gitExecutor GitExecutor) (*RepositoryManager, error) {
	if gitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RepositoryManager{gitExecutor: gitExecutor}, nil
}

// CheckGitAvailable verifies the git binary can be invoked.
func (manager *RepositoryManager) CheckGitAvailable(executionContext context.Context) error {
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{gitVersionSubcommandConstant},
	})
	return executionError
}

// InitializeRepository creates a new repository in the provided directory.
func (manager *RepositoryManager) InitializeRepository(executionContext context.Context, repositoryPath string) error {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return validationError
	}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitInitSubcommandConstant},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// StageAllChanges stages every modification in the provided repository.
func (manager *RepositoryManager) StageAllChanges(executionContext context.Context, repositoryPath string) error {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return validationError
	}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitAddSubcommandConstant, gitAddAllArgumentConstant},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CreateCommit records a commit with the provided message.
func (manager *RepositoryManager) CreateCommit(executionContext context.Context, repositoryPath string, commitMessage string) error {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return validationError
	}
	if validationError := requireValue(commitMessage, commitMessageRequiredMessageConstant); validationError != nil {
		return validationError
	}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCommitSubcommandConstant, gitCommitMessageFlagConstant, commitMessage},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// HasUncommittedChanges reports whether the repository working tree holds staged or unstaged changes.
func (manager *RepositoryManager) HasUncommittedChanges(executionContext context.Context, repositoryPath string) (bool, error) {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return false, validationError
	}
	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitStatusSubcommandConstant, gitStatusPorcelainFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return false, executionError
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) > 0, nil
}

// GetCurrentBranch reports the checked-out branch name, or an empty string on an unborn branch.
func (manager *RepositoryManager) GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return "", validationError
	}
	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, gitBranchShowCurrentFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// BranchExists reports whether a local branch with the provided name exists.
func (manager *RepositoryManager) BranchExists(executionContext context.Context, repositoryPath string, branchName string) (bool, error) {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return false, validationError
	}
	if validationError := requireValue(branchName, branchNameRequiredMessageConstant); validationError != nil {
		return false, validationError
	}
	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, gitBranchListFlagConstant, branchName},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return false, executionError
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) > 0, nil
}

// CreateBranch creates a local branch with the provided name.
func (manager *RepositoryManager) CreateBranch(executionContext context.Context, repositoryPath string, branchName string) error {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return validationError
	}
	if validationError := requireValue(branchName, branchNameRequiredMessageConstant); validationError != nil {
		return validationError
	}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// RenameCurrentBranch renames the checked-out branch to the provided name.
func (manager *RepositoryManager) RenameCurrentBranch(executionContext context.Context, repositoryPath string, branchName string) error {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return validationError
	}
	if validationError := requireValue(branchName, branchNameRequiredMessageConstant); validationError != nil {
		return validationError
	}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, gitBranchMoveFlagConstant, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// ListRemotes reports the names of configured remotes.
func (manager *RepositoryManager) ListRemotes(executionContext context.Context, repositoryPath string) ([]string, error) {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return nil, validationError
	}
	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return nil, executionError
	}

	remoteNames := make([]string, 0)
	for _, remoteLine := range strings.Split(executionResult.StandardOutput, "\n") {
		trimmedRemoteName := strings.TrimSpace(remoteLine)
		if len(trimmedRemoteName) > 0 {
			remoteNames = append(remoteNames, trimmedRemoteName)
		}
	}
	return remoteNames, nil
}

// GetRemoteURL reports the fetch URL configured for the named remote.
func (manager *RepositoryManager) GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error) {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return "", validationError
	}
	if validationError := requireValue(remoteName, remoteNameRequiredMessageConstant); validationError != nil {
		return "", validationError
	}
	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteGetURLSubcommandConstant, remoteName},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// AddRemote registers a named remote pointing at the provided URL.
func (manager *RepositoryManager) AddRemote(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return validationError
	}
	if validationError := requireValue(remoteName, remoteNameRequiredMessageConstant); validationError != nil {
		return validationError
	}
	if validationError := requireValue(remoteURL, remoteURLRequiredMessageConstant); validationError != nil {
		return validationError
	}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteAddSubcommandConstant, remoteName, remoteURL},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// PushBranch pushes the provided branch to the named remote and records it as upstream.
func (manager *RepositoryManager) PushBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error {
	if validationError := requireValue(repositoryPath, repositoryPathRequiredMessageConstant); validationError != nil {
		return validationError
	}
	if validationError := requireValue(remoteName, remoteNameRequiredMessageConstant); validationError != nil {
		return validationError
	}
	if validationError := requireValue(branchName, branchNameRequiredMessageConstant); validationError != nil {
		return validationError
	}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitPushSubcommandConstant, gitPushSetUpstreamFlagConstant, remoteName, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// AddGlobalSafeDirectory registers the provided path in the user's global safe.directory list.
func (manager *RepositoryManager) AddGlobalSafeDirectory(executionContext context.Context, directoryPath string) error {
	if validationError := requireValue(directoryPath, safeDirectoryRequiredMessageConstant); validationError != nil {
		return validationError
	}
	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{gitConfigSubcommandConstant, gitConfigGlobalFlagConstant, gitConfigAddFlagConstant, gitConfigSafeDirectoryKeyConstant, directoryPath},
	})
	return executionError
}

func requireValue(value string, message string) error {
	if len(strings.TrimSpace(value)) == 0 {
		return errors.New(message)
	}
	return nil
}
