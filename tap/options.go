package tap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is the level tap lines are written at.
const DefaultLevel = zapcore.DebugLevel

// Option customizes a single tap.
type Option func(*config)

type config struct {
	logger *zap.Logger // nil: package logger, resolved per element
	level  zapcore.Level
}

func newConfig(opts ...Option) config {
	cfg := config{level: DefaultLevel}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger pins the tap to l instead of the package logger.
// Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("tap: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithLevel sets the level tap lines are written at.
// Panics on levels above ErrorLevel (DPanic, Panic, Fatal), which may
// panic or exit the process.
func WithLevel(lvl zapcore.Level) Option {
	if lvl > zapcore.ErrorLevel {
		panic("tap: WithLevel above ErrorLevel")
	}

	return func(c *config) { c.level = lvl }
}
