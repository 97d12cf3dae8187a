package container

import (
	"testing"

	"fjacquet/spend-summary/internal/config"
	"fjacquet/spend-summary/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainerWithLogger_Configs(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "default config",
			config: config.Default(),
		},
		{
			name: "json logging with yaml output",
			config: func() *config.Config {
				cfg := config.Default()
				cfg.Log = config.LogConfig{Level: "debug", Format: "json"}
				cfg.Report.Format = "yaml"
				return cfg
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewMockLogger()
			c, err := NewContainerWithLogger(tt.config, logger)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)
			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetParser())
			assert.NotNil(t, c.GetNormalizer())
			assert.NotNil(t, c.GetAggregator())
			assert.NotNil(t, c.GetReportGenerator())
			assert.Same(t, tt.config, c.GetConfig())
			assert.NoError(t, c.Close())
			assert.True(t, logger.HasEntry("DEBUG", "Container closed"))
		})
	}
}

func TestNewContainerWithLogger(t *testing.T) {
	logger := logging.NewMockLogger()

	c, err := NewContainerWithLogger(config.Default(), logger)
	require.NoError(t, err)
	assert.Equal(t, logger, c.GetLogger())
	assert.True(t, logger.HasEntry("DEBUG", "Container initialized successfully"))

	_, err = NewContainerWithLogger(config.Default(), nil)
	assert.EqualError(t, err, "logger cannot be nil")
}
