// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Registry type, Patcher contract, options and sentinel errors.

package prototype

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/protokit/clone"
)

// Sentinel errors for registry operations.
var (
	// ErrUnknownPrototype indicates Create or Unregister referenced a missing name.
	ErrUnknownPrototype = errors.New("prototype: unknown prototype")

	// ErrEmptyName indicates a zero-length prototype name.
	ErrEmptyName = errors.New("prototype: name is empty")

	// ErrNilPrototype indicates Register was given a nil template.
	ErrNilPrototype = errors.New("prototype: prototype is nil")

	// ErrOverridesUnsupported indicates overrides were supplied for a clone
	// that does not implement Patcher.
	ErrOverridesUnsupported = errors.New("prototype: overrides not supported by prototype")

	// ErrInvalidOverride indicates a Patcher rejected an override value.
	ErrInvalidOverride = errors.New("prototype: invalid override")
)

// UnknownPrototypeError carries the name that was not found.
type UnknownPrototypeError struct {
	Name string
}

// Error implements error.
func (e *UnknownPrototypeError) Error() string {
	return fmt.Sprintf("prototype: no prototype registered with name %q", e.Name)
}

// Unwrap lets errors.Is(err, ErrUnknownPrototype) match.
func (e *UnknownPrototypeError) Unwrap() error { return ErrUnknownPrototype }

// Overrides maps field names to replacement values applied to a fresh clone.
type Overrides map[string]any

// Patcher is implemented by prototypes that accept field overrides.
//
// SetField returns an error wrapping clone.ErrUnknownField when field does not
// exist; the registry downgrades that case to a warning. Any other error
// fails the Create call.
type Patcher interface {
	SetField(field string, value any) error
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithOnUnknownOverride registers a hook called once per ignored override key.
func WithOnUnknownOverride(fn func(name, field string)) Option {
	return func(r *Registry) {
		if fn != nil {
			r.onUnknown = fn
		}
	}
}

// entry is one registered template.
type entry struct {
	name  string
	proto clone.Cloneable
}

// Registry stores named templates and issues clones of them.
//
// mu guards index and entries; entries keeps registration order and index
// maps a name to its position in entries.
type Registry struct {
	mu      sync.RWMutex
	index   map[string]int
	entries []entry

	log       *zap.Logger
	onUnknown func(name, field string)
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		index:     make(map[string]int),
		log:       zap.NewNop(),
		onUnknown: func(string, string) {},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}
