// Package logging builds the zap logger used by the CLI and adapts it to the
// store logging hook.
package logging

import (
	"fmt"

	"github.com/jacksmith/keep/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a console logger writing to stderr at the given level
// ("debug", "info", "warn", "error").
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Hook adapts l to a store logging hook. Events are tagged with the
// component name so several stores can share one logger.
func Hook(l *zap.Logger, component string) storage.LogFunc {
	l = l.With(zap.String("component", component))
	return func(sev storage.Severity, msg string) {
		switch sev {
		case storage.SeverityDebug:
			l.Debug(msg)
		case storage.SeverityInfo:
			l.Info(msg)
		case storage.SeverityWarn:
			l.Warn(msg)
		default:
			l.Error(msg)
		}
	}
}
