package gitrepo

import (
	"fmt"
	"strings"
)

const (
	httpsSchemeConstant              = "https://"
	sshSchemeConstant                = "ssh://"
	scpUserPrefixConstant            = "git@"
	userHostSeparatorConstant        = "@"
	scpPathSeparatorConstant         = ":"
	ownerSeparatorConstant           = "/"
	repositorySuffixConstant         = ".git"
	invalidRemoteURLTemplateConstant = "invalid remote url %q: %s"
	remoteURLEmptyReasonConstant     = "value is empty"
	remoteURLShapeReasonConstant     = "expected <host>/<owner>/<repository>"
	remoteURLSchemeReasonConstant    = "unrecognized scheme"
	referenceHostRequiredConstant    = "remote host is required"
	referenceOwnerRequiredConstant   = "repository owner is required"
	referenceNameRequiredConstant    = "repository name is required"
)

// RepositoryReference identifies a hosted repository by host, owner, and name.
type RepositoryReference struct {
	Host  string
	Owner string
	Name  string
}

// InvalidRemoteURLError reports a remote URL that could not be interpreted.
type InvalidRemoteURLError struct {
	RemoteURL string
	Reason    string
}

// Error describes the rejected remote URL.
func (urlError InvalidRemoteURLError) Error() string {
	return fmt.Sprintf(invalidRemoteURLTemplateConstant, urlError.RemoteURL, urlError.Reason)
}

// HTTPSRemoteURL renders the canonical HTTPS clone URL for the reference.
func (reference RepositoryReference) HTTPSRemoteURL() (string, error) {
	if validationError := requireValue(reference.Host, referenceHostRequiredConstant); validationError != nil {
		return "", validationError
	}
	if validationError := requireValue(reference.Owner, referenceOwnerRequiredConstant); validationError != nil {
		return "", validationError
	}
	if validationError := requireValue(reference.Name, referenceNameRequiredConstant); validationError != nil {
		return "", validationError
	}
	return httpsSchemeConstant + reference.Host + ownerSeparatorConstant + reference.Owner + ownerSeparatorConstant + reference.Name + repositorySuffixConstant, nil
}

// ParseRemoteURL interprets an HTTPS, ssh, or scp-style git remote URL.
func ParseRemoteURL(remoteURL string) (RepositoryReference, error) {
	trimmedURL := strings.TrimSpace(remoteURL)
	if len(trimmedURL) == 0 {
		return RepositoryReference{}, InvalidRemoteURLError{RemoteURL: remoteURL, Reason: remoteURLEmptyReasonConstant}
	}

	switch {
	case strings.HasPrefix(trimmedURL, httpsSchemeConstant):
		return splitHostAndPath(remoteURL, strings.TrimPrefix(trimmedURL, httpsSchemeConstant))
	case strings.HasPrefix(trimmedURL, sshSchemeConstant):
		return parseSSHRemote(remoteURL, strings.TrimPrefix(trimmedURL, sshSchemeConstant))
	case strings.HasPrefix(trimmedURL, scpUserPrefixConstant):
		return parseSCPRemote(remoteURL, trimmedURL)
	}
	return RepositoryReference{}, InvalidRemoteURLError{RemoteURL: remoteURL, Reason: remoteURLSchemeReasonConstant}
}

func parseSSHRemote(remoteURL string, remainder string) (RepositoryReference, error) {
	if userSplitIndex := strings.Index(remainder, userHostSeparatorConstant); userSplitIndex >= 0 {
		remainder = remainder[userSplitIndex+1:]
	}
	colonIndex := strings.Index(remainder, scpPathSeparatorConstant)
	if colonIndex > 0 && !strings.Contains(remainder[:colonIndex], ownerSeparatorConstant) {
		return buildReference(remoteURL, remainder[:colonIndex], remainder[colonIndex+1:])
	}
	return splitHostAndPath(remoteURL, remainder)
}

func parseSCPRemote(remoteURL string, remainder string) (RepositoryReference, error) {
	userSplitIndex := strings.Index(remainder, userHostSeparatorConstant)
	hostAndPath := remainder[userSplitIndex+1:]
	colonIndex := strings.Index(hostAndPath, scpPathSeparatorConstant)
	if colonIndex <= 0 {
		return RepositoryReference{}, InvalidRemoteURLError{RemoteURL: remoteURL, Reason: remoteURLShapeReasonConstant}
	}
	return buildReference(remoteURL, hostAndPath[:colonIndex], hostAndPath[colonIndex+1:])
}

func splitHostAndPath(remoteURL string, hostAndPath string) (RepositoryReference, error) {
	slashIndex := strings.Index(hostAndPath, ownerSeparatorConstant)
	if slashIndex <= 0 {
		return RepositoryReference{}, InvalidRemoteURLError{RemoteURL: remoteURL, Reason: remoteURLShapeReasonConstant}
	}
	return buildReference(remoteURL, hostAndPath[:slashIndex], hostAndPath[slashIndex+1:])
}

func buildReference(remoteURL string, host string, ownerAndName string) (RepositoryReference, error) {
	segments := strings.Split(strings.Trim(ownerAndName, ownerSeparatorConstant), ownerSeparatorConstant)
	if len(segments) != 2 {
		return RepositoryReference{}, InvalidRemoteURLError{RemoteURL: remoteURL, Reason: remoteURLShapeReasonConstant}
	}
	repositoryName := strings.TrimSuffix(segments[1], repositorySuffixConstant)
	if len(host) == 0 || len(segments[0]) == 0 || len(repositoryName) == 0 {
		return RepositoryReference{}, InvalidRemoteURLError{RemoteURL: remoteURL, Reason: remoteURLShapeReasonConstant}
	}
	return RepositoryReference{Host: host, Owner: segments[0], Name: repositoryName}, nil
}
