package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level  string
	Output io.Writer
}

type Logger struct {
	logger *slog.Logger
}

func NewLogger(cfg *Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: getLoggerLevel(cfg.Level),
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	logger := slog.New(slog.NewJSONHandler(out, opts))
	return &Logger{
		logger: logger,
	}
}

// With returns a child logger that attaches args to every record.
func (l *Logger) With(v ...interface{}) *Logger {
	return &Logger{logger: l.logger.With(v...)}
}

func (l *Logger) Error(msg string, v ...interface{}) {
	l.logger.Error(msg, v...)
}
func (l *Logger) Warn(msg string, v ...interface{}) {
	l.logger.Warn(msg, v...)
}
func (l *Logger) Info(msg string, v ...interface{}) {
	l.logger.Info(msg, v...)
}
func (l *Logger) Debug(msg string, v ...interface{}) {
	l.logger.Debug(msg, v...)
}

func getLoggerLevel(logLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
