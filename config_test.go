package nexperiment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDefaultConfig tests the default values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, defaultUserAgent, cfg.UserAgent)
	assert.NoError(t, cfg.Validate())
}

// TestConfig_Validate tests configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "valid config",
			config: Config{Timeout: time.Second, UserAgent: "a"},
		},
		{
			name:   "zero timeout",
			config: Config{UserAgent: "a"},
		},
		{
			name:    "negative timeout",
			config:  Config{Timeout: -1, UserAgent: "a"},
			wantErr: "timeout",
		},
		{
			name:    "empty user agent",
			config:  Config{Timeout: time.Second},
			wantErr: "user_agent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, IsConfigError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
