package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrintf(NewLogger("debug", &buf))

	p.Debugf("trials=%d", 10)
	p.Infof("expected=%.2f", 1.5)
	p.Warnf("careful %s", "now")
	p.Errorf("failed: %v", "boom")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "trials=10")
	assert.Contains(t, out, "expected=1.50")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "failed: boom")
}

func TestNewPrintf_Nil(t *testing.T) {
	p := NewPrintf(nil)
	assert.NotPanics(t, func() { p.Infof("nothing %d", 1) })
}
