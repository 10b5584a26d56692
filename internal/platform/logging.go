package platform

import (
	"log/slog"
	"os"
)

// InitLogger sets up the global slog logger with sane defaults.
func InitLogger(level slog.Level, attrs ...any) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler).With(attrs...))
}
