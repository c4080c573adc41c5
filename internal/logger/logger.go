// Package logger builds the zap logger shared by the binaries.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger for format "json" and a console
// development logger otherwise. Unknown levels fall back to info.
func New(levelStr, format string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// Named returns a child logger for one component, tolerating nil.
func Named(l *zap.Logger, name string) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l.Named(name)
}
