package log

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"kitchensmart/internal/config"
)

// NewSlogLogger creates a new slog logger with the given configuration and
// installs it as the process-wide default.
func NewSlogLogger(cfg config.Log) *slog.Logger {
	var handler slog.Handler

	if cfg.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     cfg.Level,
			AddSource: cfg.AddSource,
		})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      cfg.Level,
			AddSource:  cfg.AddSource,
			TimeFormat: time.RFC3339,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
