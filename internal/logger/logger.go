// Package logger builds the process-wide slog.Logger from configuration.
package logger

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"adboard/internal/config/configs"
)

// New returns a logger writing to w in the configured format.
func New(cfg configs.Logger, w io.Writer) *slog.Logger {
	level := cfg.SlogLevel()

	var handler slog.Handler
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "tint":
		handler = tint.NewHandler(w, &tint.Options{Level: level, TimeFormat: time.DateTime})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record. Tests use it.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
