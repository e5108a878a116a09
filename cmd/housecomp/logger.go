package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/housecomp/housing-simulator/internal/calculation"
)

// zapLogger adapts a zap SugaredLogger to the engine's Logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (z zapLogger) Debugf(format string, args ...any) { z.s.Debugf(format, args...) }
func (z zapLogger) Infof(format string, args ...any)  { z.s.Infof(format, args...) }
func (z zapLogger) Warnf(format string, args ...any)  { z.s.Warnf(format, args...) }
func (z zapLogger) Errorf(format string, args ...any) { z.s.Errorf(format, args...) }

// newEngineLogger builds a console-encoded zap logger at the requested level
// and wraps it for the engine.
func newEngineLogger(level string) (calculation.Logger, func(), error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "", "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, nil, fmt.Errorf("invalid log level: %s", level)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}

	sync := func() { _ = logger.Sync() }
	return zapLogger{s: logger.Sugar()}, sync, nil
}
