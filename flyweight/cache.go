// SPDX-License-Identifier: MIT
//
// File: cache.go
// Role: Lookup-or-construct, enumeration and reset.

package flyweight

import (
	"fmt"

	"go.uber.org/zap"
)

// GetOrCreate returns the shared instance for k, constructing and storing it
// on first request.
//
// Errors:
//   - *InvalidCacheKeyError if k is unhashable or rejected by the validator.
//     No counters or entries change in that case.
func (c *Cache[K, V]) GetOrCreate(k K) (V, error) {
	var zero V
	if err := c.check(k); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[k]
	if ok {
		c.hits++
	} else {
		v = c.construct(k)
	}
	c.requests++

	return v, nil
}

// construct builds and stores the instance for k. Callers hold mu.
func (c *Cache[K, V]) construct(k K) V {
	v := c.factory(k)
	c.items[k] = v
	c.order = append(c.order, k)
	c.opts.log.Debug("flyweight created",
		zap.String("key", fmt.Sprint(k)),
		zap.Int("distinct", len(c.items)))

	return v
}

// Get returns the instance for k without constructing one.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	var zero V
	if c.check(k) != nil {
		return zero, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[k]

	return v, ok
}

// Warm materialises instances for keys ahead of use. It stops at the first
// invalid key; keys before it stay materialised.
func (c *Cache[K, V]) Warm(keys ...K) error {
	for _, k := range keys {
		if err := c.check(k); err != nil {
			return err
		}
		c.warm(k)
	}

	return nil
}

func (c *Cache[K, V]) warm(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[k]; !ok {
		c.construct(k)
	}
}

// Count returns the number of distinct keys materialised.
func (c *Cache[K, V]) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Keys returns materialised keys in first-request order.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]K(nil), c.order...)
}

// Stats returns a snapshot of request counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Requests: c.requests,
		Hits:     c.hits,
		Misses:   c.requests - c.hits,
		Distinct: len(c.items),
	}
}

// Reset drops every entry and zeroes the counters.
func (c *Cache[K, V]) Reset() {
	c.mu.Lock()
	c.items = make(map[K]V)
	c.order = nil
	c.requests, c.hits = 0, 0
	c.mu.Unlock()
	c.opts.log.Debug("flyweight cache reset")
}

// check rejects keys that would panic as map keys, then runs the validator.
func (c *Cache[K, V]) check(k K) error {
	if !usable(k) {
		return &InvalidCacheKeyError{Key: k}
	}
	if c.opts.validate != nil {
		if err := c.opts.validate(k); err != nil {
			return &InvalidCacheKeyError{Key: k, Err: err}
		}
	}

	return nil
}

// usable reports whether k can index a map and be found again. Comparing an
// interface holding a slice, map or func panics; NaN never equals itself.
func usable[K comparable](k K) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	return k == k
}
