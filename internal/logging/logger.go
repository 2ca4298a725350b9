// Package logging builds the leveled slog.Logger used by the CLI and adapts
// it to the printf-style logger the forecast engine expects.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a level name to a slog.Level.
// Supported values: "debug", "info", "warn", "error" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled text logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Printf adapts a *slog.Logger to the Debugf/Infof/Warnf/Errorf interface.
type Printf struct {
	L *slog.Logger
}

// NewPrintf wraps l. A nil l discards everything.
func NewPrintf(l *slog.Logger) Printf {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Printf{L: l}
}

func (p Printf) Debugf(format string, args ...any) { p.L.Debug(fmt.Sprintf(format, args...)) }
func (p Printf) Infof(format string, args ...any)  { p.L.Info(fmt.Sprintf(format, args...)) }
func (p Printf) Warnf(format string, args ...any)  { p.L.Warn(fmt.Sprintf(format, args...)) }
func (p Printf) Errorf(format string, args ...any) { p.L.Error(fmt.Sprintf(format, args...)) }
