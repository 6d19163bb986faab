package weft

import (
	"os"

	"go.uber.org/zap"
)

const defaultQueueSize = 64

type config struct {
	log       *zap.Logger
	strict    bool
	schedule  func(func())
	queueSize int
}

// Option configures a Runtime.
type Option func(*config)

// WithLogger sets the logger of the runtime. The package logger is used
// otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithStrict makes misuse fatal: a cyclic update panics instead of being
// rejected with ErrCyclicUpdate.
func WithStrict(strict bool) Option {
	return func(c *config) {
		c.strict = strict
	}
}

// StrictFromEnv enables strict mode when WEFT_STRICT is set to a non-empty
// value other than "0".
func StrictFromEnv() Option {
	v := os.Getenv("WEFT_STRICT")
	return WithStrict(v != "" && v != "0")
}

// WithScheduler hands work posted from other goroutines to schedule instead
// of the runtime's queue. schedule must arrange for the function to run on
// the goroutine driving the runtime.
func WithScheduler(schedule func(func())) Option {
	return func(c *config) {
		c.schedule = schedule
	}
}

// WithQueueSize sets the capacity of the posted work queue.
func WithQueueSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.queueSize = n
		}
	}
}
