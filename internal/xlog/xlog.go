// Package xlog wires the engine's structured logging onto zap. It configures
// a logging sink; it does not implement one.
package xlog

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.Mutex
	current *zap.Logger = zap.NewNop()
	scope   []string
)

// Level is the engine's minimum log level.
type Level uint8

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case Debug:
		return zapcore.DebugLevel
	case Warn:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Init builds the process logger. format is "json" or "console".
func Init(level Level, format string) {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())

	logger, err := cfg.Build()
	if err != nil {
		return
	}

	mu.Lock()
	current = logger
	mu.Unlock()
}

// L returns the current process logger, annotated with the active scope
// context if one has been pushed via Scope.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if len(scope) == 0 {
		return current
	}
	return current.With(zap.String("scope", scope[len(scope)-1]))
}

// Scope pushes a named log context for the lifetime of the returned closer.
func Scope(name string) func() {
	mu.Lock()
	scope = append(scope, name)
	mu.Unlock()
	return func() {
		mu.Lock()
		if len(scope) > 0 {
			scope = scope[:len(scope)-1]
		}
		mu.Unlock()
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	mu.Lock()
	l := current
	mu.Unlock()
	_ = l.Sync()
}
