package bootstrap

import "strings"

const (
	configurationRemoteNameKeyConstant    = "remote_name"
	configurationVisibilityKeyConstant    = "visibility"
	configurationCommitMessageKeyConstant = "commit_message"
	configurationAssumeYesKeyConstant     = "assume_yes"

	defaultRemoteNameConstant    = "origin"
	defaultVisibilityConstant    = "public"
	defaultCommitMessageConstant = "Initial commit"
)

// CommandConfiguration captures persisted configuration for repository bootstrapping.
type CommandConfiguration struct {
	RemoteName    string `mapstructure:"remote_name"`
	Visibility    string `mapstructure:"visibility"`
	CommitMessage string `mapstructure:"commit_message"`
	AssumeYes     bool   `mapstructure:"assume_yes"`
}

// DefaultCommandConfiguration returns baseline configuration values for repository bootstrapping.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		RemoteName:    defaultRemoteNameConstant,
		CommitMessage: defaultCommitMessageConstant,
		AssumeYes:     false,
	}
}

// DefaultConfigurationValues produces Viper defaults for the bootstrap command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationRemoteNameKeyConstant:    defaults.RemoteName,
		rootKey + "." + configurationVisibilityKeyConstant:    defaults.Visibility,
		rootKey + "." + configurationCommitMessageKeyConstant: defaults.CommitMessage,
		rootKey + "." + configurationAssumeYesKeyConstant:     defaults.AssumeYes,
	}
}

// Sanitize trims configured values and restores defaults for blank entries.
// A blank visibility stays blank; it requests interactive selection.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	if len(sanitized.RemoteName) == 0 {
		sanitized.RemoteName = defaultRemoteNameConstant
	}
	sanitized.Visibility = strings.ToLower(strings.TrimSpace(configuration.Visibility))
	sanitized.CommitMessage = strings.TrimSpace(configuration.CommitMessage)
	if len(sanitized.CommitMessage) == 0 {
		sanitized.CommitMessage = defaultCommitMessageConstant
	}
	return sanitized
}
