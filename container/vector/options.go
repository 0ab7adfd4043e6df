package vector

import (
	"log/slog"

	"github.com/joshuapare/goosekit/internal/logger"
	"github.com/joshuapare/goosekit/memory/alloc"
)

type config[T any] struct {
	alloc alloc.Allocator[T]
	log   *slog.Logger
}

// Option configures a Vector at construction time.
type Option[T any] func(*config[T])

// WithAllocator selects the allocator backing the Vector. The default is
// alloc.Heap.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(c *config[T]) { c.alloc = a }
}

// WithLogger sets the logger used for debug output about growth and failed
// construction.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(c *config[T]) { c.log = l }
}

func buildConfig[T any](opts []Option[T]) config[T] {
	c := config[T]{log: logger.L}
	for _, opt := range opts {
		opt(&c)
	}
	if c.log == nil {
		c.log = logger.L
	}
	return c
}
