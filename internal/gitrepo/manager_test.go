package gitrepo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repokit/repoinit/internal/execshell"
	"github.com/repokit/repoinit/internal/gitrepo"
)

const (
	testRepositoryPathConstant    = "/tmp/project"
	testRemoteNameConstant        = "origin"
	testRemoteURLConstant         = "git@github.com:octocat/project.git"
	testBranchNameConstant        = "main"
	testCommitMessageConstant     = "Initial commit"
	testSafeDirectoryPathConstant = "/srv/projects/project"
)

type recordingGitExecutor struct {
	executionResult  execshell.ExecutionResult
	executionError   error
	recordedCommands []execshell.CommandDetails
}

func (executor *recordingGitExecutor) ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, details)
	return executor.executionResult, executor.executionError
}

func TestNewRepositoryManagerRequiresExecutor(testInstance *testing.T) {
	manager, creationError := gitrepo.NewRepositoryManager(nil)
	require.ErrorIs(testInstance, creationError, gitrepo.ErrGitExecutorNotConfigured)
	require.Nil(testInstance, manager)
}

func TestRepositoryManagerCommandComposition(testInstance *testing.T) {
	testCases := []struct {
		name                     string
		invoke                   func(manager *gitrepo.RepositoryManager, executor *recordingGitExecutor) error
		expectedArguments        []string
		expectedWorkingDirectory string
	}{
		{
			name: "check_git_available",
			invoke: func(manager *gitrepo.RepositoryManager, executor *recordingGitExecutor) error {
				return manager.CheckGitAvailable(context.Background())
			},
			expectedArguments: []string{"--version"},
		},
		{
			name: "initialize_repository",
			invoke: func(manager *gitrepo.RepositoryManager, executor *recordingGitExecutor) error {
				return manager.InitializeRepository(context.Background(), testRepositoryPathConstant)
			},
			expectedArguments:        []string{"init"},
			expectedWorkingDirectory: testRepositoryPathConstant,
		},
		{
			name: "stage_all_changes",
			invoke: func(manager *gitrepo.RepositoryManager, executor *recordingGitExecutor) error {
				return manager.StageAllChanges(context.Background(), testRepositoryPathConstant)
			},
			expectedArguments:        []string{"add", "."},
			expectedWorkingDirectory: testRepositoryPathConstant,
		},
		{
			name: "create_commit",
			invoke: func(manager *gitrepo.RepositoryManager, executor *recordingGitExecutor) error {
				return manager.CreateCommit(context.Background(), testRepositoryPathConstant, testCommitMessageConstant)
			},
			expectedArguments:        []string{"commit", "-m", testCommitMessageConstant},
			expectedWorkingDirectory: testRepositoryPathConstant,
		},
		{
			name: "create_branch",
			invoke: func(manager *gitrepo.RepositoryManager, executor *recordingGitExecutor) error {
				return manager.CreateBranch(context.Background(), testRepositoryPathConstant, testBranchNameConstant)
			},
			expectedArguments:        []string{"branch", testBranchNameConstant},
			expectedWorkingDirectory: testRepositoryPathConstant,
		},
		{
			name: "rename_current_branch",
			invoke: func(manager *gitrepo.RepositoryManager, executor *recordingGitExecutor) error {
				return manager.RenameCurrentBranch(context.Background(), testRepositoryPathConstant, testBranchNameConstant)
			},
			expectedArguments:        []string{"branch", "-m", testBranchNameConstant},
			expectedWorkingDirectory: testRepositoryPathConstant,
		},
		{
			name: "add_remote",
			invoke: func(manager *gitrepo.RepositoryManager, executor *recordingGitExecutor) error {
				return manager.AddRemote(context.Background(), testRepositoryPathConstant, testRemoteNameConstant, testRemoteURLConstant)
			},
			expectedArguments:        []string{"remote", "add", testRemoteNameConstant, testRemoteURLConstant},
			expectedWorkingDirectory: testRepositoryPathConstant,
		},
		{
			name: "get_remote_url",
			invoke: func(manager *gitrepo.RepositoryManager, executor *recordingGitExecutor) error {
				_, executionError := manager.GetRemoteURL(context.Background(), testRepositoryPathConstant, testRemoteNameConstant)
				return executionError
			},
			expectedArguments:        []string{"remote", "get-url", testRemoteNameConstant},
			expectedWorkingDirectory: testRepositoryPathConstant,
		},
		{
			name: "push_branch",
			invoke: func(manager *gitrepo.RepositoryManager, executor *recordingGitExecutor) error {
				return manager.PushBranch(context.Background(), testRepositoryPathConstant, testRemoteNameConstant, testBranchNameConstant)
			},
			expectedArguments:        []string{"push", "-u", testRemoteNameConstant, testBranchNameConstant},
			expectedWorkingDirectory: testRepositoryPathConstant,
		},
		{
			name: "add_global_safe_directory",
			invoke: func(manager *gitrepo.RepositoryManager, executor *recordingGitExecutor) error {
				return manager.AddGlobalSafeDirectory(context.Background(), testSafeDirectoryPathConstant)
			},
			expectedArguments: []string{"config", "--global", "--add", "safe.directory", testSafeDirectoryPathConstant},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			recordingExecutor := &recordingGitExecutor{}
			manager, creationError := gitrepo.NewRepositoryManager(recordingExecutor)
			require.NoError(testInstance, creationError)

			invocationError := testCase.invoke(manager, recordingExecutor)
			require.NoError(testInstance, invocationError)
			require.Len(testInstance, recordingExecutor.recordedCommands, 1)
			recordedCommand := recordingExecutor.recordedCommands[0]
			require.Equal(testInstance, testCase.expectedArguments, recordedCommand.Arguments)
			require.Equal(testInstance, testCase.expectedWorkingDirectory, recordedCommand.WorkingDirectory)
		})
	}
}

func TestRepositoryManagerQueryParsing(testInstance *testing.T) {
	testCases := []struct {
		name           string
		standardOutput string
		invoke         func(manager *gitrepo.RepositoryManager) (any, error)
		expectedValue  any
	}{
		{
			name:           "current_branch_trimmed",
			standardOutput: "main\n",
			invoke: func(manager *gitrepo.RepositoryManager) (any, error) {
				return manager.GetCurrentBranch(context.Background(), testRepositoryPathConstant)
			},
			expectedValue: "main",
		},
		{
			name:           "current_branch_unborn",
			standardOutput: "\n",
			invoke: func(manager *gitrepo.RepositoryManager) (any, error) {
				return manager.GetCurrentBranch(context.Background(), testRepositoryPathConstant)
			},
			expectedValue: "",
		},
		{
			name:           "branch_exists",
			standardOutput: "  main\n",
			invoke: func(manager *gitrepo.RepositoryManager) (any, error) {
				return manager.BranchExists(context.Background(), testRepositoryPathConstant, testBranchNameConstant)
			},
			expectedValue: true,
		},
		{
			name:           "branch_missing",
			standardOutput: "",
			invoke: func(manager *gitrepo.RepositoryManager) (any, error) {
				return manager.BranchExists(context.Background(), testRepositoryPathConstant, testBranchNameConstant)
			},
			expectedValue: false,
		},
		{
			name:           "remotes_parsed",
			standardOutput: "origin\nupstream\n",
			invoke: func(manager *gitrepo.RepositoryManager) (any, error) {
				return manager.ListRemotes(context.Background(), testRepositoryPathConstant)
			},
			expectedValue: []string{"origin", "upstream"},
		},
		{
			name:           "no_remotes",
			standardOutput: "\n",
			invoke: func(manager *gitrepo.RepositoryManager) (any, error) {
				return manager.ListRemotes(context.Background(), testRepositoryPathConstant)
			},
			expectedValue: []string{},
		},
		{
			name:           "remote_url_trimmed",
			standardOutput: testRemoteURLConstant + "\n",
			invoke: func(manager *gitrepo.RepositoryManager) (any, error) {
				return manager.GetRemoteURL(context.Background(), testRepositoryPathConstant, testRemoteNameConstant)
			},
			expectedValue: testRemoteURLConstant,
		},
		{
			name:           "uncommitted_changes_present",
			standardOutput: " M main.go\n?? notes.txt\n",
			invoke: func(manager *gitrepo.RepositoryManager) (any, error) {
				return manager.HasUncommittedChanges(context.Background(), testRepositoryPathConstant)
			},
			expectedValue: true,
		},
		{
			name:           "clean_working_tree",
			standardOutput: "",
			invoke: func(manager *gitrepo.RepositoryManager) (any, error) {
				return manager.HasUncommittedChanges(context.Background(), testRepositoryPathConstant)
			},
			expectedValue: false,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			recordingExecutor := &recordingGitExecutor{
				executionResult: execshell.ExecutionResult{StandardOutput: testCase.standardOutput},
			}
			manager, creationError := gitrepo.NewRepositoryManager(recordingExecutor)
			require.NoError(testInstance, creationError)

			observedValue, invocationError := testCase.invoke(manager)
			require.NoError(testInstance, invocationError)
			require.Equal(testInstance, testCase.expectedValue, observedValue)
		})
	}
}

func TestRepositoryManagerValidatesInputs(testInstance *testing.T) {
	recordingExecutor := &recordingGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(recordingExecutor)
	require.NoError(testInstance, creationError)

	testCases := []struct {
		name   string
		invoke func() error
	}{
		{
			name: "blank_repository_path",
			invoke: func() error {
				return manager.InitializeRepository(context.Background(), "   ")
			},
		},
		{
			name: "blank_commit_message",
			invoke: func() error {
				return manager.CreateCommit(context.Background(), testRepositoryPathConstant, "")
			},
		},
		{
			name: "blank_branch_name",
			invoke: func() error {
				return manager.RenameCurrentBranch(context.Background(), testRepositoryPathConstant, "")
			},
		},
		{
			name: "blank_remote_url",
			invoke: func() error {
				return manager.AddRemote(context.Background(), testRepositoryPathConstant, testRemoteNameConstant, "")
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			invocationError := testCase.invoke()
			require.Error(testInstance, invocationError)
			require.Empty(testInstance, recordingExecutor.recordedCommands)
		})
	}
}

func TestRepositoryManagerBranchListUsesPattern(testInstance *testing.T) {
	recordingExecutor := &recordingGitExecutor{
		executionResult: execshell.ExecutionResult{StandardOutput: "  main\n"},
	}
	manager, creationError := gitrepo.NewRepositoryManager(recordingExecutor)
	require.NoError(testInstance, creationError)

	branchExists, invocationError := manager.BranchExists(context.Background(), testRepositoryPathConstant, testBranchNameConstant)
	require.NoError(testInstance, invocationError)
	require.True(testInstance, branchExists)
	require.Len(testInstance, recordingExecutor.recordedCommands, 1)
	require.True(testInstance, strings.HasSuffix(strings.Join(recordingExecutor.recordedCommands[0].Arguments, " "), "--list "+testBranchNameConstant))
}
