package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		expectedLevel zapcore.Level
		expectedError bool
	}{
		{name: "empty defaults to info", level: "", expectedLevel: zapcore.InfoLevel},
		{name: "debug", level: "debug", expectedLevel: zapcore.DebugLevel},
		{name: "warn", level: "warn", expectedLevel: zapcore.WarnLevel},
		{name: "unknown level", level: "loud", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, log)
				return
			}

			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.expectedLevel))
			assert.False(t, log.Core().Enabled(tt.expectedLevel-1))
		})
	}
}
