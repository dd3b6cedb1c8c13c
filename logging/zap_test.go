package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAdapter(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	var logger Logger = NewZapAdapter(zap.New(core))

	logger.Debug("d")
	logger.Info("node executed", "node", "planner")
	logger.Warn("w")
	logger.Error("e")

	entries := observed.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "node executed", entries[1].Message)
	assert.Equal(t, "planner", entries[1].ContextMap()["node"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}
