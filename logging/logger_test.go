package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/warp/attendance-engine/config"
	"github.com/warp/attendance-engine/logging"
)

func TestNew(t *testing.T) {
	logger, err := logging.New(config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	logger, err = logging.New(config.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(config.LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}
