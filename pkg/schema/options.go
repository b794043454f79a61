package schema

import (
	"io"
	"log/slog"
)

// Option configures a schema at build time.
type Option func(*config)

type config struct {
	workers   int
	logger    *slog.Logger
	observers []Observer
}

func defaultConfig() config {
	return config{
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithParallelFields runs field chains on up to workers goroutines.
// Values below 2 keep the sequential mode. Reports are identical in both modes.
func WithParallelFields(workers int) Option {
	return func(c *config) {
		if workers < 1 {
			workers = 1
		}
		c.workers = workers
	}
}

// WithLogger sets the logger used for per-phase debug records.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers an observer notified after every Validate call.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}
