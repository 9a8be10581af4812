package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, tc := range []struct {
		debug bool
		level zapcore.Level
	}{
		{debug: true, level: zapcore.DebugLevel},
		{debug: false, level: zapcore.InfoLevel},
	} {
		log, err := NewLogger(tc.debug)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(tc.level))
		assert.False(t, log.Core().Enabled(tc.level-1))
	}
}
