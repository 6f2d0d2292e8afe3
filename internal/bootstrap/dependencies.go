package bootstrap

import (
	"context"
	"io/fs"
	"os"

	"github.com/repokit/repoinit/internal/githubcli"
)

// GitRepositoryService captures the git operations the bootstrap workflow performs.
type GitRepositoryService interface {
	CheckGitAvailable(executionContext context.Context) error
	InitializeRepository(executionContext context.Context, repositoryPath string) error
	StageAllChanges(executionContext context.Context, repositoryPath string) error
	CreateCommit(executionContext context.Context, repositoryPath string, commitMessage string) error
	HasUncommittedChanges(executionContext context.Context, repositoryPath string) (bool, error)
	GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	BranchExists(executionContext context.Context, repositoryPath string, branchName string) (bool, error)
	CreateBranch(executionContext context.Context, repositoryPath string, branchName string) error
	RenameCurrentBranch(executionContext context.Context, repositoryPath string, branchName string) error
	ListRemotes(executionContext context.Context, repositoryPath string) ([]string, error)
	GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error)
	AddRemote(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error
	PushBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error
	AddGlobalSafeDirectory(executionContext context.Context, directoryPath string) error
}

// GitHubService captures the hosted repository operations the bootstrap workflow performs.
type GitHubService interface {
	CheckCLIAvailable(executionContext context.Context) error
	CheckAuthStatus(executionContext context.Context) (bool, error)
	InteractiveLogin(executionContext context.Context) error
	GetAuthenticatedUser(executionContext context.Context) (string, error)
	RepositoryExists(executionContext context.Context, repository string) (bool, error)
	CreateRepository(executionContext context.Context, repository string, visibility githubcli.RepositoryVisibility) error
	ResolveDefaultBranch(executionContext context.Context, repository string) (string, error)
}

// ConfirmationPrompter asks the user yes/no questions.
type ConfirmationPrompter interface {
	Confirm(prompt string) (bool, error)
}

// StringPrompter asks the user for free-form answers with a default.
type StringPrompter interface {
	PromptString(prompt string, defaultValue string) (string, error)
}

// FileSystem abstracts the filesystem operations the bootstrap workflow performs.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, permissions fs.FileMode) error
}

// OSFileSystem implements FileSystem against the host operating system.
type OSFileSystem struct{}

// Stat proxies os.Stat.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir proxies os.ReadDir.
func (OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// ReadFile proxies os.ReadFile.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile proxies os.WriteFile.
func (OSFileSystem) WriteFile(path string, content []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, content, permissions)
}
