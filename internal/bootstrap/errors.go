package bootstrap

import (
	"errors"
	"fmt"
)

const (
	bootstrapErrorTemplateConstant          = "%s: %s"
	bootstrapErrorWithoutCauseConstant      = "%s"
	userCancelledMessageConstant            = "operation cancelled by user"
	nothingToCommitMessageConstant          = "nothing to commit; working tree is clean"
	invalidProjectNameTemplateConstant      = "invalid project name %q"
	invalidProjectNameRuleTemplateConstant  = "invalid project name %q: %s"
	projectNameDoubleDotRuleMessageConstant = "must not contain \"..\""
	projectNameTrailingDotRuleMessage       = "must not end with \".\""
	projectNamePatternRuleMessageConstant   = "must start and end with an alphanumeric character and contain only alphanumerics, dashes, dots, and underscores"
)

// BootstrapErrorKind labels the step a bootstrap failure originated from.
type BootstrapErrorKind string

// Bootstrap failure kinds.
const (
	ErrorKindDependencyMissing    BootstrapErrorKind = "DependencyMissing"
	ErrorKindAuthenticationFailed BootstrapErrorKind = "AuthenticationFailed"
	ErrorKindIdentityUnresolved   BootstrapErrorKind = "IdentityUnresolved"
	ErrorKindRemoteCreateFailed   BootstrapErrorKind = "RemoteCreateFailed"
	ErrorKindLocalInitFailed      BootstrapErrorKind = "LocalInitFailed"
	ErrorKindIgnoreWriteFailed    BootstrapErrorKind = "IgnoreWriteFailed"
	ErrorKindStageFailed          BootstrapErrorKind = "StageFailed"
	ErrorKindCommitFailed         BootstrapErrorKind = "CommitFailed"
	ErrorKindRemoteAddFailed      BootstrapErrorKind = "RemoteAddFailed"
	ErrorKindBranchRenameFailed   BootstrapErrorKind = "BranchRenameFailed"
	ErrorKindPushFailed           BootstrapErrorKind = "PushFailed"
)

// ErrUserCancelled indicates the user declined a confirmation prompt.
var ErrUserCancelled = errors.New(userCancelledMessageConstant)

// ErrNothingToCommit indicates a commit was attempted against a clean working tree.
var ErrNothingToCommit = errors.New(nothingToCommitMessageConstant)

// BootstrapError couples a failing step with its underlying cause.
type BootstrapError struct {
	Kind  BootstrapErrorKind
	Cause error
}

// Error describes the failed step.
func (bootstrapError BootstrapError) Error() string {
	if bootstrapError.Cause == nil {
		return fmt.Sprintf(bootstrapErrorWithoutCauseConstant, bootstrapError.Kind)
	}
	return fmt.Sprintf(bootstrapErrorTemplateConstant, bootstrapError.Kind, bootstrapError.Cause)
}

// Unwrap exposes the underlying cause.
func (bootstrapError BootstrapError) Unwrap() error {
	return bootstrapError.Cause
}

// InvalidProjectNameError reports a project name that violates the naming rules.
type InvalidProjectNameError struct {
	ProjectName string
	Rule        string
}

// Error describes the violated naming rule.
func (nameError InvalidProjectNameError) Error() string {
	if len(nameError.Rule) == 0 {
		return fmt.Sprintf(invalidProjectNameTemplateConstant, nameError.ProjectName)
	}
	return fmt.Sprintf(invalidProjectNameRuleTemplateConstant, nameError.ProjectName, nameError.Rule)
}
