package util

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"review-bot/src/config"
)

// Logger provides leveled, structured logging backed by zap
type Logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a new logger from config
func NewLogger(cfg config.LoggingConfig) *Logger {
	level := zapcore.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Format != "json" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	zcfg.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zcfg.OutputPaths = []string{cfg.File}
	}
	zcfg.DisableStacktrace = true

	logger, err := zcfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		logger = zap.NewNop()
	}

	return &Logger{sugar: logger.Sugar()}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.sugar.Debugf(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.sugar.Infof(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.sugar.Warnf(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.sugar.Errorf(msg, args...)
}

// Sync flushes buffered log entries
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

// DefaultLogger is the package-level default logger
var DefaultLogger = NewLogger(config.LoggingConfig{Level: "info", Format: "text"})

// SetDefaultLogger updates the default logger with new configuration
func SetDefaultLogger(cfg config.LoggingConfig) {
	DefaultLogger = NewLogger(cfg)
}

// Debug logs using the default logger
func Debug(msg string, args ...any) {
	DefaultLogger.Debug(msg, args...)
}

// Info logs using the default logger
func Info(msg string, args ...any) {
	DefaultLogger.Info(msg, args...)
}

// Warn logs using the default logger
func Warn(msg string, args ...any) {
	DefaultLogger.Warn(msg, args...)
}

// Error logs using the default logger
func Error(msg string, args ...any) {
	DefaultLogger.Error(msg, args...)
}
