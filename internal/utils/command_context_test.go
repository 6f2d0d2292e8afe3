package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repokit/repoinit/internal/utils"
)

const testConfigurationFilePathValueConstant = "/etc/repoinit/config.yaml"

func TestCommandContextAccessorConfigurationFilePath(testInstance *testing.T) {
	contextAccessor := utils.NewCommandContextAccessor()

	testInstance.Run("round_trip", func(testInstance *testing.T) {
		decoratedContext := contextAccessor.WithConfigurationFilePath(context.Background(), testConfigurationFilePathValueConstant)
		storedPath, pathAvailable := contextAccessor.ConfigurationFilePath(decoratedContext)
		require.True(testInstance, pathAvailable)
		require.Equal(testInstance, testConfigurationFilePathValueConstant, storedPath)
	})

	testInstance.Run("missing_value", func(testInstance *testing.T) {
		storedPath, pathAvailable := contextAccessor.ConfigurationFilePath(context.Background())
		require.False(testInstance, pathAvailable)
		require.Empty(testInstance, storedPath)
	})

	testInstance.Run("nil_parent_context", func(testInstance *testing.T) {
		decoratedContext := contextAccessor.WithConfigurationFilePath(nil, testConfigurationFilePathValueConstant)
		storedPath, pathAvailable := contextAccessor.ConfigurationFilePath(decoratedContext)
		require.True(testInstance, pathAvailable)
		require.Equal(testInstance, testConfigurationFilePathValueConstant, storedPath)
	})
}

func TestCommandContextAccessorHumanReadableLogging(testInstance *testing.T) {
	contextAccessor := utils.NewCommandContextAccessor()

	testInstance.Run("round_trip", func(testInstance *testing.T) {
		decoratedContext := contextAccessor.WithHumanReadableLogging(context.Background(), true)
		humanReadableLogging, valueAvailable := contextAccessor.HumanReadableLogging(decoratedContext)
		require.True(testInstance, valueAvailable)
		require.True(testInstance, humanReadableLogging)
	})

	testInstance.Run("missing_value", func(testInstance *testing.T) {
		humanReadableLogging, valueAvailable := contextAccessor.HumanReadableLogging(context.Background())
		require.False(testInstance, valueAvailable)
		require.False(testInstance, humanReadableLogging)
	})
}
