package logger

import (
	"log/slog"
	"os"
)

// Log defaults to a plain handler so packages can log before Init runs.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
