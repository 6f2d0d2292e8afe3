package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/repokit/repoinit/internal/githubcli"
	"github.com/repokit/repoinit/internal/gitrepo"
)

const (
	gitMetadataDirectoryNameConstant        = ".git"
	fallbackDefaultBranchNameConstant       = "main"
	repositoryIdentifierTemplateConstant    = "%s/%s"
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	githubClientMissingMessageConstant      = "GitHub client not configured"
	confirmationPrompterMissingMessage      = "confirmation prompter not configured"
	stringPrompterMissingMessageConstant    = "string prompter not configured"
	workingDirectoryMissingMessageConstant  = "working directory not configured"
	identityEmptyMessageConstant            = "authenticated user login is empty"
	branchConflictMessageTemplateConstant   = "local branch %s already exists; refusing to rename %s onto it"
	directoryEnumerationErrorTemplate       = "unable to enumerate working directory %s: %w"
	remoteMismatchMessageTemplateConstant   = "remote %s already points at %s/%s; expected %s/%s"
	gitHubHostNameConstant                  = "github.com"

	existingRemotePromptTemplateConstant = "Remote repository %s already exists. Continue using it? [y/N]: "
	emptyDirectoryPromptConstant         = "The directory contains no files to commit. Continue anyway? [y/N]: "
	projectNamePromptTemplateConstant    = "Project name [%s]: "
	visibilityPromptTemplateConstant     = "Repository visibility (public/private) [%s]: "

	logMessageDependenciesVerifiedConstant  = "Required tools are available"
	logMessageAuthenticationMissingConstant = "GitHub CLI is not authenticated; starting interactive login"
	logMessageIdentityResolvedConstant      = "Resolved authenticated GitHub user"
	logMessageSafeDirectorySkippedConstant  = "Could not register safe.directory entry"
	logMessageRemoteCreatedConstant         = "Created remote repository"
	logMessageRemoteAdoptedConstant         = "Using existing remote repository"
	logMessageLocalInitializedConstant      = "Initialized local repository"
	logMessageLocalExistsConstant           = "Local repository already initialized"
	logMessageIgnoreFileWrittenConstant     = "Wrote ignore file"
	logMessageCommitCreatedConstant         = "Created commit"
	logMessageRemoteBoundConstant           = "Registered remote"
	logMessageRemoteAlreadyBoundConstant    = "Remote already registered"
	logMessageDefaultBranchFallbackConstant = "Could not resolve remote default branch; falling back"
	logMessageBranchAlignedConstant         = "Aligned local branch with remote default"
	logMessageBranchMatchesConstant         = "Local branch already matches remote default"
	logMessagePushCompletedConstant         = "Pushed branch with upstream tracking"

	logFieldProjectNameConstant    = "project_name"
	logFieldRepositoryConstant     = "repository"
	logFieldGitHubUserConstant     = "github_user"
	logFieldRemoteNameConstant     = "remote_name"
	logFieldBranchNameConstant     = "branch"
	logFieldDirectoryConstant      = "directory"
	logFieldVisibilityConstant     = "visibility"
	logFieldIgnoreFilePathConstant = "ignore_file"
)

// ServiceDependencies describes required collaborators for bootstrapping.
type ServiceDependencies struct {
	Logger               *zap.Logger
	RepositoryManager    GitRepositoryService
	GitHubClient         GitHubService
	FileSystem           FileSystem
	ConfirmationPrompter ConfirmationPrompter
	StringPrompter       StringPrompter
}

// Options configures a single bootstrap run.
type Options struct {
	ProjectName      string
	WorkingDirectory string
	RemoteName       string
	Visibility       githubcli.RepositoryVisibility
	CommitMessage    string
	AssumeYes        bool
}

// Result captures the observable outcomes of a bootstrap run.
type Result struct {
	ProjectName          string
	RepositoryIdentifier string
	RemoteCreated        bool
	LocalInitialized     bool
	RemoteBound          bool
	DefaultBranch        string
	BranchAligned        bool
	Pushed               bool
}

// Service orchestrates the repository bootstrap workflow.
type Service struct {
	logger               *zap.Logger
	repositoryManager    GitRepositoryService
	gitHubClient         GitHubService
	fileSystem           FileSystem
	confirmationPrompter ConfirmationPrompter
	stringPrompter       StringPrompter
	ignoreSynthesizer    *IgnoreFileSynthesizer
}

var (
	errRepositoryManagerMissing    = errors.New(repositoryManagerMissingMessageConstant)
	errGitHubClientMissing         = errors.New(githubClientMissingMessageConstant)
	errConfirmationPrompterMissing = errors.New(confirmationPrompterMissingMessage)
	errStringPrompterMissing       = errors.New(stringPrompterMissingMessageConstant)
	errWorkingDirectoryMissing     = errors.New(workingDirectoryMissingMessageConstant)
)

// NewService constructs a Service with the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, errRepositoryManagerMissing
	}
	if dependencies.GitHubClient == nil {
		return nil, errGitHubClientMissing
	}
	if dependencies.ConfirmationPrompter == nil {
		return nil, errConfirmationPrompterMissing
	}
	if dependencies.StringPrompter == nil {
		return nil, errStringPrompterMissing
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	fileSystem := dependencies.FileSystem
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}

	return &Service{
		logger:               logger,
		repositoryManager:    dependencies.RepositoryManager,
		gitHubClient:         dependencies.GitHubClient,
		fileSystem:           fileSystem,
		confirmationPrompter: dependencies.ConfirmationPrompter,
		stringPrompter:       dependencies.StringPrompter,
		ignoreSynthesizer:    NewIgnoreFileSynthesizer(fileSystem),
	}, nil
}

// Execute runs the bootstrap workflow and reports what it changed.
func (service *Service) Execute(executionContext context.Context, options Options) (Result, error) {
	if len(strings.TrimSpace(options.WorkingDirectory)) == 0 {
		return Result{}, errWorkingDirectoryMissing
	}

	projectName, nameError := service.resolveProjectName(options)
	if nameError != nil {
		return Result{}, nameError
	}

	result := Result{ProjectName: projectName}

	if dependencyError := service.verifyDependencies(executionContext); dependencyError != nil {
		return result, dependencyError
	}

	if authenticationError := service.ensureAuthenticated(executionContext); authenticationError != nil {
		return result, authenticationError
	}

	githubUser, identityError := service.resolveIdentity(executionContext)
	if identityError != nil {
		return result, identityError
	}

	repositoryIdentifier := fmt.Sprintf(repositoryIdentifierTemplateConstant, githubUser, projectName)
	result.RepositoryIdentifier = repositoryIdentifier

	service.registerSafeDirectory(executionContext, options.WorkingDirectory)

	remoteCreated, remoteError := service.ensureRemoteRepository(executionContext, repositoryIdentifier, options)
	if remoteError != nil {
		return result, remoteError
	}
	result.RemoteCreated = remoteCreated

	localInitialized, localError := service.ensureLocalRepository(executionContext, options.WorkingDirectory)
	if localError != nil {
		return result, localError
	}
	result.LocalInitialized = localInitialized

	if contentError := service.confirmDirectoryContent(options); contentError != nil {
		return result, contentError
	}

	if ignoreError := service.synthesizeIgnoreFile(options.WorkingDirectory); ignoreError != nil {
		return result, ignoreError
	}

	if commitError := service.stageAndCommit(executionContext, options); commitError != nil {
		return result, commitError
	}

	remoteBound, bindingError := service.ensureRemoteBinding(executionContext, githubUser, projectName, options)
	if bindingError != nil {
		return result, bindingError
	}
	result.RemoteBound = remoteBound

	defaultBranch := service.resolveDefaultBranch(executionContext, repositoryIdentifier)
	result.DefaultBranch = defaultBranch

	branchAligned, alignmentError := service.alignBranch(executionContext, options.WorkingDirectory, defaultBranch)
	if alignmentError != nil {
		return result, alignmentError
	}
	result.BranchAligned = branchAligned

	if pushError := service.repositoryManager.PushBranch(executionContext, options.WorkingDirectory, options.RemoteName, defaultBranch); pushError != nil {
		return result, BootstrapError{Kind: ErrorKindPushFailed, Cause: pushError}
	}
	result.Pushed = true
	service.logger.Info(
		logMessagePushCompletedConstant,
		zap.String(logFieldRemoteNameConstant, options.RemoteName),
		zap.String(logFieldBranchNameConstant, defaultBranch),
	)

	return result, nil
}

func (service *Service) resolveProjectName(options Options) (string, error) {
	candidateName := strings.TrimSpace(options.ProjectName)
	if len(candidateName) == 0 && !options.AssumeYes {
		defaultName, defaultNameError := ResolveProjectName("", options.WorkingDirectory)
		if defaultNameError != nil {
			defaultName = ""
		}
		promptedName, promptError := service.stringPrompter.PromptString(
			fmt.Sprintf(projectNamePromptTemplateConstant, defaultName),
			defaultName,
		)
		if promptError != nil {
			return "", promptError
		}
		candidateName = promptedName
	}
	return ResolveProjectName(candidateName, options.WorkingDirectory)
}

func (service *Service) verifyDependencies(executionContext context.Context) error {
	if gitError := service.repositoryManager.CheckGitAvailable(executionContext); gitError != nil {
		return BootstrapError{Kind: ErrorKindDependencyMissing, Cause: gitError}
	}
	if cliError := service.gitHubClient.CheckCLIAvailable(executionContext); cliError != nil {
		return BootstrapError{Kind: ErrorKindDependencyMissing, Cause: cliError}
	}
	service.logger.Debug(logMessageDependenciesVerifiedConstant)
	return nil
}

func (service *Service) ensureAuthenticated(executionContext context.Context) error {
	authenticated, statusError := service.gitHubClient.CheckAuthStatus(executionContext)
	if statusError != nil {
		return BootstrapError{Kind: ErrorKindAuthenticationFailed, Cause: statusError}
	}
	if authenticated {
		return nil
	}

	service.logger.Info(logMessageAuthenticationMissingConstant)
	if loginError := service.gitHubClient.InteractiveLogin(executionContext); loginError != nil {
		return BootstrapError{Kind: ErrorKindAuthenticationFailed, Cause: loginError}
	}

	authenticated, statusError = service.gitHubClient.CheckAuthStatus(executionContext)
	if statusError != nil {
		return BootstrapError{Kind: ErrorKindAuthenticationFailed, Cause: statusError}
	}
	if !authenticated {
		return BootstrapError{Kind: ErrorKindAuthenticationFailed}
	}
	return nil
}

func (service *Service) resolveIdentity(executionContext context.Context) (string, error) {
	githubUser, lookupError := service.gitHubClient.GetAuthenticatedUser(executionContext)
	if lookupError != nil {
		return "", BootstrapError{Kind: ErrorKindIdentityUnresolved, Cause: lookupError}
	}
	if len(githubUser) == 0 {
		return "", BootstrapError{Kind: ErrorKindIdentityUnresolved, Cause: errors.New(identityEmptyMessageConstant)}
	}
	service.logger.Debug(logMessageIdentityResolvedConstant, zap.String(logFieldGitHubUserConstant, githubUser))
	return githubUser, nil
}

func (service *Service) registerSafeDirectory(executionContext context.Context, workingDirectory string) {
	if safeDirectoryError := service.repositoryManager.AddGlobalSafeDirectory(executionContext, workingDirectory); safeDirectoryError != nil {
		service.logger.Warn(
			logMessageSafeDirectorySkippedConstant,
			zap.String(logFieldDirectoryConstant, workingDirectory),
			zap.Error(safeDirectoryError),
		)
	}
}

func (service *Service) ensureRemoteRepository(executionContext context.Context, repositoryIdentifier string, options Options) (bool, error) {
	remoteExists, lookupError := service.gitHubClient.RepositoryExists(executionContext, repositoryIdentifier)
	if lookupError != nil {
		return false, BootstrapError{Kind: ErrorKindRemoteCreateFailed, Cause: lookupError}
	}

	if remoteExists {
		if !options.AssumeYes {
			confirmed, confirmError := service.confirmationPrompter.Confirm(
				fmt.Sprintf(existingRemotePromptTemplateConstant, repositoryIdentifier),
			)
			if confirmError != nil {
				return false, confirmError
			}
			if !confirmed {
				return false, ErrUserCancelled
			}
		}
		service.logger.Info(logMessageRemoteAdoptedConstant, zap.String(logFieldRepositoryConstant, repositoryIdentifier))
		return false, nil
	}

	visibility, visibilityError := service.resolveVisibility(options)
	if visibilityError != nil {
		return false, visibilityError
	}

	if createError := service.gitHubClient.CreateRepository(executionContext, repositoryIdentifier, visibility); createError != nil {
		return false, BootstrapError{Kind: ErrorKindRemoteCreateFailed, Cause: createError}
	}
	service.logger.Info(
		logMessageRemoteCreatedConstant,
		zap.String(logFieldRepositoryConstant, repositoryIdentifier),
		zap.String(logFieldVisibilityConstant, string(visibility)),
	)
	return true, nil
}

func (service *Service) resolveVisibility(options Options) (githubcli.RepositoryVisibility, error) {
	if options.AssumeYes || len(options.Visibility) > 0 {
		visibility := options.Visibility
		if len(visibility) == 0 {
			visibility = githubcli.RepositoryVisibility(defaultVisibilityConstant)
		}
		return visibility, nil
	}

	response, promptError := service.stringPrompter.PromptString(
		fmt.Sprintf(visibilityPromptTemplateConstant, defaultVisibilityConstant),
		defaultVisibilityConstant,
	)
	if promptError != nil {
		return "", promptError
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case string(githubcli.RepositoryVisibilityPrivate):
		return githubcli.RepositoryVisibilityPrivate, nil
	default:
		return githubcli.RepositoryVisibilityPublic, nil
	}
}

func (service *Service) ensureLocalRepository(executionContext context.Context, workingDirectory string) (bool, error) {
	if service.localRepositoryExists(workingDirectory) {
		service.logger.Info(logMessageLocalExistsConstant, zap.String(logFieldDirectoryConstant, workingDirectory))
		return false, nil
	}

	if initializeError := service.repositoryManager.InitializeRepository(executionContext, workingDirectory); initializeError != nil {
		return false, BootstrapError{Kind: ErrorKindLocalInitFailed, Cause: initializeError}
	}
	service.logger.Info(logMessageLocalInitializedConstant, zap.String(logFieldDirectoryConstant, workingDirectory))
	return true, nil
}

func (service *Service) localRepositoryExists(workingDirectory string) bool {
	metadataInfo, statError := service.fileSystem.Stat(filepath.Join(workingDirectory, gitMetadataDirectoryNameConstant))
	if statError != nil {
		return false
	}
	return metadataInfo.IsDir()
}

func (service *Service) confirmDirectoryContent(options Options) error {
	directoryEntries, readError := service.fileSystem.ReadDir(options.WorkingDirectory)
	if readError != nil {
		return fmt.Errorf(directoryEnumerationErrorTemplate, options.WorkingDirectory, readError)
	}

	eligibleFileCount := 0
	for _, directoryEntry := range directoryEntries {
		if directoryEntry.Name() == gitMetadataDirectoryNameConstant || directoryEntry.Name() == ignoreFileNameConstant {
			continue
		}
		eligibleFileCount++
	}

	if eligibleFileCount > 0 || options.AssumeYes {
		return nil
	}

	confirmed, confirmError := service.confirmationPrompter.Confirm(emptyDirectoryPromptConstant)
	if confirmError != nil {
		return confirmError
	}
	if !confirmed {
		return ErrUserCancelled
	}
	return nil
}

func (service *Service) synthesizeIgnoreFile(workingDirectory string) error {
	if synthesizeError := service.ignoreSynthesizer.Synthesize(workingDirectory); synthesizeError != nil {
		return BootstrapError{Kind: ErrorKindIgnoreWriteFailed, Cause: synthesizeError}
	}
	service.logger.Info(
		logMessageIgnoreFileWrittenConstant,
		zap.String(logFieldIgnoreFilePathConstant, filepath.Join(workingDirectory, ignoreFileNameConstant)),
	)
	return nil
}

func (service *Service) stageAndCommit(executionContext context.Context, options Options) error {
	if stageError := service.repositoryManager.StageAllChanges(executionContext, options.WorkingDirectory); stageError != nil {
		return BootstrapError{Kind: ErrorKindStageFailed, Cause: stageError}
	}

	hasChanges, statusError := service.repositoryManager.HasUncommittedChanges(executionContext, options.WorkingDirectory)
	if statusError != nil {
		return BootstrapError{Kind: ErrorKindCommitFailed, Cause: statusError}
	}
	if !hasChanges {
		return BootstrapError{Kind: ErrorKindCommitFailed, Cause: ErrNothingToCommit}
	}

	if commitError := service.repositoryManager.CreateCommit(executionContext, options.WorkingDirectory, options.CommitMessage); commitError != nil {
		return BootstrapError{Kind: ErrorKindCommitFailed, Cause: commitError}
	}
	service.logger.Info(logMessageCommitCreatedConstant, zap.String(logFieldProjectNameConstant, options.ProjectName))
	return nil
}

func (service *Service) ensureRemoteBinding(executionContext context.Context, githubUser string, projectName string, options Options) (bool, error) {
	remoteNames, listError := service.repositoryManager.ListRemotes(executionContext, options.WorkingDirectory)
	if listError != nil {
		return false, BootstrapError{Kind: ErrorKindRemoteAddFailed, Cause: listError}
	}
	for _, remoteName := range remoteNames {
		if remoteName != options.RemoteName {
			continue
		}
		if verificationError := service.verifyRemoteTarget(executionContext, githubUser, projectName, options); verificationError != nil {
			return false, verificationError
		}
		service.logger.Info(logMessageRemoteAlreadyBoundConstant, zap.String(logFieldRemoteNameConstant, options.RemoteName))
		return false, nil
	}

	remoteURL, formatError := gitrepo.RepositoryReference{
		Host:  gitHubHostNameConstant,
		Owner: githubUser,
		Name:  projectName,
	}.HTTPSRemoteURL()
	if formatError != nil {
		return false, BootstrapError{Kind: ErrorKindRemoteAddFailed, Cause: formatError}
	}

	if addError := service.repositoryManager.AddRemote(executionContext, options.WorkingDirectory, options.RemoteName, remoteURL); addError != nil {
		return false, BootstrapError{Kind: ErrorKindRemoteAddFailed, Cause: addError}
	}
	service.logger.Info(
		logMessageRemoteBoundConstant,
		zap.String(logFieldRemoteNameConstant, options.RemoteName),
		zap.String(logFieldRepositoryConstant, remoteURL),
	)
	return true, nil
}

func (service *Service) verifyRemoteTarget(executionContext context.Context, githubUser string, projectName string, options Options) error {
	existingURL, urlError := service.repositoryManager.GetRemoteURL(executionContext, options.WorkingDirectory, options.RemoteName)
	if urlError != nil {
		return BootstrapError{Kind: ErrorKindRemoteAddFailed, Cause: urlError}
	}
	reference, parseError := gitrepo.ParseRemoteURL(existingURL)
	if parseError != nil {
		return BootstrapError{Kind: ErrorKindRemoteAddFailed, Cause: parseError}
	}
	if !strings.EqualFold(reference.Owner, githubUser) || !strings.EqualFold(reference.Name, projectName) {
		mismatchError := fmt.Errorf(remoteMismatchMessageTemplateConstant, options.RemoteName, reference.Owner, reference.Name, githubUser, projectName)
		return BootstrapError{Kind: ErrorKindRemoteAddFailed, Cause: mismatchError}
	}
	return nil
}

func (service *Service) resolveDefaultBranch(executionContext context.Context, repositoryIdentifier string) string {
	defaultBranch, resolveError := service.gitHubClient.ResolveDefaultBranch(executionContext, repositoryIdentifier)
	if resolveError != nil || len(strings.TrimSpace(defaultBranch)) == 0 {
		service.logger.Warn(
			logMessageDefaultBranchFallbackConstant,
			zap.String(logFieldBranchNameConstant, fallbackDefaultBranchNameConstant),
			zap.Error(resolveError),
		)
		return fallbackDefaultBranchNameConstant
	}
	return strings.TrimSpace(defaultBranch)
}

func (service *Service) alignBranch(executionContext context.Context, workingDirectory string, defaultBranch string) (bool, error) {
	currentBranch, currentBranchError := service.repositoryManager.GetCurrentBranch(executionContext, workingDirectory)
	if currentBranchError != nil {
		return false, BootstrapError{Kind: ErrorKindBranchRenameFailed, Cause: currentBranchError}
	}

	if currentBranch == defaultBranch {
		service.logger.Debug(logMessageBranchMatchesConstant, zap.String(logFieldBranchNameConstant, defaultBranch))
		return false, nil
	}

	if len(currentBranch) == 0 {
		if createError := service.repositoryManager.CreateBranch(executionContext, workingDirectory, defaultBranch); createError != nil {
			return false, BootstrapError{Kind: ErrorKindBranchRenameFailed, Cause: createError}
		}
		service.logger.Info(logMessageBranchAlignedConstant, zap.String(logFieldBranchNameConstant, defaultBranch))
		return true, nil
	}

	branchExists, existsError := service.repositoryManager.BranchExists(executionContext, workingDirectory, defaultBranch)
	if existsError != nil {
		return false, BootstrapError{Kind: ErrorKindBranchRenameFailed, Cause: existsError}
	}
	if branchExists {
		conflictError := fmt.Errorf(branchConflictMessageTemplateConstant, defaultBranch, currentBranch)
		return false, BootstrapError{Kind: ErrorKindBranchRenameFailed, Cause: conflictError}
	}

	if renameError := service.repositoryManager.RenameCurrentBranch(executionContext, workingDirectory, defaultBranch); renameError != nil {
		return false, BootstrapError{Kind: ErrorKindBranchRenameFailed, Cause: renameError}
	}
	service.logger.Info(logMessageBranchAlignedConstant, zap.String(logFieldBranchNameConstant, defaultBranch))
	return true, nil
}
