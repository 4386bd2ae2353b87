package logger

import (
	"log/slog"
	"os"
)

// New returns the default structured logger. Services accept a *slog.Logger
// via options so tests can pass a discard handler.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
