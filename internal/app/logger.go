package app

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the process logger described by cfg, writing to w.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("component", "hyperlink")
}
