package pathenv

import "strings"

const configurationProfilePathKeyConstant = "profile_path"

// CommandConfiguration captures persisted configuration for PATH extension.
type CommandConfiguration struct {
	ProfilePath string `mapstructure:"profile_path"`
}

// DefaultCommandConfiguration returns baseline configuration values for PATH extension.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{}
}

// DefaultConfigurationValues produces Viper defaults for the path-extend command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationProfilePathKeyConstant: defaults.ProfilePath,
	}
}

// Sanitize trims configured values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.ProfilePath = strings.TrimSpace(configuration.ProfilePath)
	return sanitized
}
