package utils

import "context"

const (
	configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")
	humanReadableLoggingContextKeyConstant  = commandContextKey("humanReadableLogging")
	logLevelContextKeyConstant              = commandContextKey("logLevel")
)

type commandContextKey string

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathAvailable := executionContext.Value(configurationFilePathContextKeyConstant).(string)
	if !configurationFilePathAvailable {
		return "", false
	}
	return configurationFilePath, true
}

// WithLogLevel attaches the resolved log level to the provided context.
func (accessor CommandContextAccessor) WithLogLevel(parentContext context.Context, logLevel string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, logLevelContextKeyConstant, logLevel)
}

// LogLevel extracts the resolved log level from the provided context.
func (accessor CommandContextAccessor) LogLevel(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	logLevel, logLevelAvailable := executionContext.Value(logLevelContextKeyConstant).(string)
	if !logLevelAvailable {
		return "", false
	}
	return logLevel, true
}

// WithHumanReadableLogging records whether console-oriented logging is active.
func (accessor CommandContextAccessor) WithHumanReadableLogging(parentContext context.Context, humanReadableLogging bool) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, humanReadableLoggingContextKeyConstant, humanReadableLogging)
}

// HumanReadableLogging reports whether console-oriented logging was recorded on the context.
func (accessor CommandContextAccessor) HumanReadableLogging(executionContext context.Context) (bool, bool) {
	if executionContext == nil {
		return false, false
	}
	humanReadableLogging, humanReadableLoggingAvailable := executionContext.Value(humanReadableLoggingContextKeyConstant).(bool)
	if !humanReadableLoggingAvailable {
		return false, false
	}
	return humanReadableLogging, true
}
