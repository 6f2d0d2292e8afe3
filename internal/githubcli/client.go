package githubcli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/repokit/repoinit/internal/execshell"
)

const (
	repoSubcommandConstant                  = "repo"
	viewSubcommandConstant                  = "view"
	createSubcommandConstant                = "create"
	authSubcommandConstant                  = "auth"
	statusSubcommandConstant                = "status"
	loginSubcommandConstant                 = "login"
	apiSubcommandConstant                   = "api"
	versionFlagConstant                     = "--version"
	jsonFlagConstant                        = "--json"
	publicVisibilityFlagConstant            = "--public"
	privateVisibilityFlagConstant           = "--private"
	userEndpointConstant                    = "user"
	repositoryFieldNameConstant             = "repository"
	visibilityFieldNameConstant             = "visibility"
	requiredValueMessageConstant            = "value required"
	unsupportedVisibilityMessageConstant    = "unsupported visibility"
	executorNotConfiguredMessageConstant    = "github cli executor not configured"
	repoViewDefaultBranchJSONFieldConstant  = "defaultBranchRef"
	operationErrorMessageTemplateConstant   = "%s operation failed"
	operationErrorWithCauseTemplateConstant = "%s operation failed: %s"
	responseDecodingErrorTemplateConstant   = "%s response decoding failed: %s"
	invalidInputErrorTemplateConstant       = "%s: %s"
	checkCLIOperationNameConstant           = OperationName("CheckCLIAvailable")
	checkAuthOperationNameConstant          = OperationName("CheckAuthStatus")
	interactiveLoginOperationNameConstant   = OperationName("InteractiveLogin")
	authenticatedUserOperationNameConstant  = OperationName("GetAuthenticatedUser")
	repositoryExistsOperationNameConstant   = OperationName("RepositoryExists")
	createRepositoryOperationNameConstant   = OperationName("CreateRepository")
	resolveDefaultBranchOperationName       = OperationName("ResolveDefaultBranch")
)

// OperationName describes a named GitHub CLI workflow supported by the client.
type OperationName string

// RepositoryVisibility enumerates supported repository visibilities.
type RepositoryVisibility string

// Supported repository visibilities.
const (
	RepositoryVisibilityPublic  RepositoryVisibility = "public"
	RepositoryVisibilityPrivate RepositoryVisibility = "private"
)

// GitHubCommandExecutor is the minimal interface required from execshell.ShellExecutor.
type GitHubCommandExecutor interface {
	ExecuteGitHubCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Client coordinates GitHub CLI invocations through execshell.
type Client struct {
	executor GitHubCommandExecutor
}

// ErrExecutorNotConfigured indicates the client was constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// OperationError wraps execution issues for GitHub CLI operations.
type OperationError struct {
	Operation OperationName
	Cause     error
}

// Error describes the operation failure.
func (operationError OperationError) Error() string {
	if operationError.Cause == nil {
		return fmt.Sprintf(operationErrorMessageTemplateConstant, operationError.Operation)
	}
	return fmt.Sprintf(operationErrorWithCauseTemplateConstant, operationError.Operation, operationError.Cause)
}

// Unwrap exposes the underlying cause.
func (operationError OperationError) Unwrap() error {
	return operationError.Cause
}

// ResponseDecodingError indicates JSON decoding failures.
type ResponseDecodingError struct {
	Operation OperationName
	Cause     error
}

// Error describes the decoding failure.
func (decodingError ResponseDecodingError) Error() string {
	return fmt.Sprintf(responseDecodingErrorTemplateConstant, decodingError.Operation, decodingError.Cause)
}

// Unwrap exposes the underlying JSON error.
func (decodingError ResponseDecodingError) Unwrap() error {
	return decodingError.Cause
}

// NewClient constructs a GitHub CLI client.
func NewClient(executor GitHubCommandExecutor) (*Client, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Client{executor: executor}, nil
}

// CheckCLIAvailable verifies the gh binary can be invoked.
func (client *Client) CheckCLIAvailable(executionContext context.Context) error {
	commandDetails := execshell.CommandDetails{Arguments: []string{versionFlagConstant}}
	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return OperationError{Operation: checkCLIOperationNameConstant, Cause: executionError}
	}
	return nil
}

// CheckAuthStatus reports whether the GitHub CLI holds valid credentials.
func (client *Client) CheckAuthStatus(executionContext context.Context) (bool, error) {
	commandDetails := execshell.CommandDetails{Arguments: []string{authSubcommandConstant, statusSubcommandConstant}}
	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		var commandFailure execshell.CommandFailedError
		if errors.As(executionError, &commandFailure) {
			return false, nil
		}
		return false, OperationError{Operation: checkAuthOperationNameConstant, Cause: executionError}
	}
	return true, nil
}

// InteractiveLogin launches the GitHub CLI login flow on the user's terminal.
func (client *Client) InteractiveLogin(executionContext context.Context) error {
	commandDetails := execshell.CommandDetails{
		Arguments:              []string{authSubcommandConstant, loginSubcommandConstant},
		InheritStandardStreams: true,
	}
	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return OperationError{Operation: interactiveLoginOperationNameConstant, Cause: executionError}
	}
	return nil
}

// GetAuthenticatedUser resolves the login of the authenticated GitHub account.
func (client *Client) GetAuthenticatedUser(executionContext context.Context) (string, error) {
	commandDetails := execshell.CommandDetails{Arguments: []string{apiSubcommandConstant, userEndpointConstant}}

	executionResult, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return "", OperationError{Operation: authenticatedUserOperationNameConstant, Cause: executionError}
	}

	var response struct {
		Login string `json:"login"`
	}
	if decodeError := json.Unmarshal([]byte(executionResult.StandardOutput), &response); decodeError != nil {
		return "", ResponseDecodingError{Operation: authenticatedUserOperationNameConstant, Cause: decodeError}
	}

	return strings.TrimSpace(response.Login), nil
}

// RepositoryExists reports whether the named repository is visible to the authenticated account.
func (client *Client) RepositoryExists(executionContext context.Context, repository string) (bool, error) {
	repositoryIdentifier := strings.TrimSpace(repository)
	if len(repositoryIdentifier) == 0 {
		return false, InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{repoSubcommandConstant, viewSubcommandConstant, repositoryIdentifier},
	}

	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		var commandFailure execshell.CommandFailedError
		if errors.As(executionError, &commandFailure) {
			return false, nil
		}
		return false, OperationError{Operation: repositoryExistsOperationNameConstant, Cause: executionError}
	}
	return true, nil
}

// CreateRepository creates the named repository with the requested visibility.
func (client *Client) CreateRepository(executionContext context.Context, repository string, visibility RepositoryVisibility) error {
	repositoryIdentifier := strings.TrimSpace(repository)
	if len(repositoryIdentifier) == 0 {
		return InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}

	var visibilityFlag string
	switch visibility {
	case RepositoryVisibilityPublic:
		visibilityFlag = publicVisibilityFlagConstant
	case RepositoryVisibilityPrivate:
		visibilityFlag = privateVisibilityFlagConstant
	default:
		return InvalidInputError{FieldName: visibilityFieldNameConstant, Message: unsupportedVisibilityMessageConstant}
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{repoSubcommandConstant, createSubcommandConstant, repositoryIdentifier, visibilityFlag},
	}

	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return OperationError{Operation: createRepositoryOperationNameConstant, Cause: executionError}
	}
	return nil
}

// ResolveDefaultBranch resolves the remote default branch name, or an empty
// string when the repository has no default branch yet.
func (client *Client) ResolveDefaultBranch(executionContext context.Context, repository string) (string, error) {
	repositoryIdentifier := strings.TrimSpace(repository)
	if len(repositoryIdentifier) == 0 {
		return "", InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			repoSubcommandConstant,
			viewSubcommandConstant,
			repositoryIdentifier,
			jsonFlagConstant,
			repoViewDefaultBranchJSONFieldConstant,
		},
	}

	executionResult, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return "", OperationError{Operation: resolveDefaultBranchOperationName, Cause: executionError}
	}

	var response struct {
		DefaultBranchRef struct {
			Name string `json:"name"`
		} `json:"defaultBranchRef"`
	}
	if decodeError := json.Unmarshal([]byte(executionResult.StandardOutput), &response); decodeError != nil {
		return "", ResponseDecodingError{Operation: resolveDefaultBranchOperationName, Cause: decodeError}
	}

	return strings.TrimSpace(response.DefaultBranchRef.Name), nil
}
