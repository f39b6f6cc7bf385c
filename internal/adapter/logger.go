package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LevelOff is above every level slog emits; it silences a logger.
const LevelOff = slog.Level(1 << 20)

// LevelCritical matches the CRITICAL level name of the configuration.
const LevelCritical = slog.LevelError + 4

// ParseLevel maps a configured level name onto slog. The empty string, "none"
// and "off" disable logging.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "NONE", "OFF":
		return LevelOff, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL", "FATAL":
		return LevelCritical, nil
	default:
		return LevelOff, fmt.Errorf("unknown logging level %q", name)
	}
}

// NewLogger creates a logger writing text or json to w at the level held by
// level. It does not touch the global logger.
func NewLogger(w io.Writer, format string, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
