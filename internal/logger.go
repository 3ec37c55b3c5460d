package internal

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

func NewLogger(w io.Writer, env string, level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// LogWriter returns stdout, tee'd into a size-rotated file when
// cfg.LogFile is set. The returned closer flushes the file on shutdown.
func LogWriter(stdout io.Writer, cfg *Config) (io.Writer, io.Closer) {
	if cfg.LogFile == "" {
		return stdout, nopCloser{}
	}
	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	}
	return io.MultiWriter(stdout, file), file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
