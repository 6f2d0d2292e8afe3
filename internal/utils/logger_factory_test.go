package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repokit/repoinit/internal/utils"
)

const (
	testStructuredLoggerCaseNameConstant  = "structured_logger"
	testConsoleLoggerCaseNameConstant     = "console_logger"
	testUnsupportedLevelCaseNameConstant  = "unsupported_level"
	testUnsupportedFormatCaseNameConstant = "unsupported_format"
	testInvalidLogLevelValueConstant      = "verbose"
	testInvalidLogFormatValueConstant     = "xml"
)

func TestLoggerFactoryCreateLogger(testInstance *testing.T) {
	testCases := []struct {
		name          string
		logLevel      utils.LogLevel
		logFormat     utils.LogFormat
		expectFailure bool
	}{
		{
			name:      testStructuredLoggerCaseNameConstant,
			logLevel:  utils.LogLevelDebug,
			logFormat: utils.LogFormatStructured,
		},
		{
			name:      testConsoleLoggerCaseNameConstant,
			logLevel:  utils.LogLevelInfo,
			logFormat: utils.LogFormatConsole,
		},
		{
			name:          testUnsupportedLevelCaseNameConstant,
			logLevel:      utils.LogLevel(testInvalidLogLevelValueConstant),
			logFormat:     utils.LogFormatStructured,
			expectFailure: true,
		},
		{
			name:          testUnsupportedFormatCaseNameConstant,
			logLevel:      utils.LogLevelInfo,
			logFormat:     utils.LogFormat(testInvalidLogFormatValueConstant),
			expectFailure: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			loggerFactory := utils.NewLoggerFactory()
			createdLogger, creationError := loggerFactory.CreateLogger(testCase.logLevel, testCase.logFormat)
			if testCase.expectFailure {
				require.Error(testInstance, creationError)
				require.Nil(testInstance, createdLogger)
				return
			}
			require.NoError(testInstance, creationError)
			require.NotNil(testInstance, createdLogger)
		})
	}
}
