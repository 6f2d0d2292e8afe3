package bootstrap

import (
	"path/filepath"
	"regexp"
	"strings"
)

var projectNamePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-._]*[a-zA-Z0-9])?$`)

// ValidateProjectName checks a candidate project name against the accepted naming rules.
func ValidateProjectName(projectName string) error {
	if strings.Contains(projectName, "..") {
		return InvalidProjectNameError{ProjectName: projectName, Rule: projectNameDoubleDotRuleMessageConstant}
	}
	if strings.HasSuffix(projectName, ".") {
		return InvalidProjectNameError{ProjectName: projectName, Rule: projectNameTrailingDotRuleMessage}
	}
	if !projectNamePattern.MatchString(projectName) {
		return InvalidProjectNameError{ProjectName: projectName, Rule: projectNamePatternRuleMessageConstant}
	}
	return nil
}

// ResolveProjectName normalizes the candidate name, substituting the working
// directory's base name when the candidate is blank, and validates the result.
func ResolveProjectName(candidateName string, workingDirectory string) (string, error) {
	resolvedName := strings.TrimSpace(candidateName)
	if len(resolvedName) == 0 {
		resolvedName = filepath.Base(filepath.Clean(workingDirectory))
	}
	if validationError := ValidateProjectName(resolvedName); validationError != nil {
		return "", validationError
	}
	return resolvedName, nil
}
