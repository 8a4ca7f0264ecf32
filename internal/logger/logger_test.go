package logger

import (
	"testing"

	"quiz-relay/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitialize(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggerConfig
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{"default level", config.LoggerConfig{Env: "development"}, zapcore.InfoLevel, false},
		{"debug level", config.LoggerConfig{Level: "debug", Env: "development"}, zapcore.DebugLevel, false},
		{"production json", config.LoggerConfig{Level: "warn", Env: "production"}, zapcore.WarnLevel, false},
		{"unknown level", config.LoggerConfig{Level: "loud"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, Get().Core().Enabled(tt.wantLevel))
			assert.False(t, Get().Core().Enabled(tt.wantLevel-1))
		})
	}
}
