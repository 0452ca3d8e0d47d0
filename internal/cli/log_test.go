package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	require.NotNil(t, logger)

	logger.Info("test message")
	assert.Contains(t, buf.String(), "test message")
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("finished", "matches", 3)

	out := buf.String()
	assert.Contains(t, out, "finished")
	assert.Contains(t, out, "matches=3")
	assert.Contains(t, out, "elapsed=")
}

func TestSetLogLevel(t *testing.T) {
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)

	c.Logger.Debug("hidden")
	assert.Zero(t, logs.Len())

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	assert.Contains(t, logs.String(), "shown")
}
