// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Cache type, Factory, options, Stats and sentinel errors.

package flyweight

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Sentinel errors for cache operations.
var (
	// ErrNilFactory indicates New was called without a Factory.
	ErrNilFactory = errors.New("flyweight: factory is nil")

	// ErrInvalidCacheKey indicates a key that cannot be used to index the cache.
	ErrInvalidCacheKey = errors.New("flyweight: invalid cache key")
)

// InvalidCacheKeyError reports a rejected key.
type InvalidCacheKeyError struct {
	// Key is the rejected key as supplied by the caller.
	Key any

	// Err is the validator's error, or nil for an unhashable key.
	Err error
}

// Error implements error.
func (e *InvalidCacheKeyError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("flyweight: key %v of type %T is not usable as a cache key", e.Key, e.Key)
	}

	return fmt.Sprintf("flyweight: invalid cache key %v: %v", e.Key, e.Err)
}

// Unwrap exposes ErrInvalidCacheKey and the validator error to errors.Is/As.
func (e *InvalidCacheKeyError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidCacheKey}
	}

	return []error{ErrInvalidCacheKey, e.Err}
}

// Factory builds the shared instance for a key. It must be deterministic:
// the same key always yields a behaviourally identical instance.
type Factory[K comparable, V any] func(K) V

// Option configures a Cache.
type Option func(*options)

type options struct {
	log      *zap.Logger
	validate func(key any) error
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithKeyValidator installs a hook that may reject keys before lookup.
// A non-nil error is surfaced as *InvalidCacheKeyError.
func WithKeyValidator(fn func(key any) error) Option {
	return func(o *options) {
		if fn != nil {
			o.validate = fn
		}
	}
}

// Stats is a snapshot of cache activity since construction or the last Reset.
type Stats struct {
	// Requests counts successful GetOrCreate calls.
	Requests int

	// Hits counts requests served by an existing instance.
	Hits int

	// Misses counts requests that constructed a new instance.
	Misses int

	// Distinct is the number of materialised keys (== Count()).
	Distinct int
}

// Saved returns the fraction of requests that did not need a new instance.
func (s Stats) Saved() float64 {
	if s.Requests == 0 {
		return 0
	}

	return float64(s.Hits) / float64(s.Requests)
}

// Cache holds one shared instance per key.
//
// mu guards items, order and the counters. It is held across the
// lookup-or-construct step so no two callers construct the same key.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	factory Factory[K, V]
	items   map[K]V
	order   []K

	requests int
	hits     int

	opts options
}

// New creates an empty Cache that builds instances with factory.
func New[K comparable, V any](factory func(K) V, opts ...Option) (*Cache[K, V], error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache[K, V]{
		factory: Factory[K, V](factory),
		items:   make(map[K]V),
		opts:    o,
	}, nil
}
