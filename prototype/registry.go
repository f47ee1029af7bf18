// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: Registry lifecycle (Register/Unregister/Clear) and clone issuance.
// Concurrency:
//   - Writers take mu.Lock; Create/Names/Has/Len take mu.RLock.
//   - Overrides are applied after the lock is released, on the clone only.

package prototype

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/protokit/clone"
)

// Register stores p under name, replacing any previous template.
//
// A replaced name keeps its original position in Names(). Clones issued from
// the previous template are unaffected.
func (r *Registry) Register(name string, p clone.Cloneable) error {
	if name == "" {
		return ErrEmptyName
	}
	if isNil(p) {
		return fmt.Errorf("%w: %q", ErrNilPrototype, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[name]; ok {
		r.entries[i].proto = p
		r.log.Debug("prototype replaced", zap.String("name", name))
		return nil
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, entry{name: name, proto: p})
	r.log.Debug("prototype registered", zap.String("name", name), zap.Int("count", len(r.entries)))

	return nil
}

// Create clones the template registered under name and applies overrides to
// the clone.
//
// Overrides are applied in sorted key order. Keys the clone does not define
// are logged and reported to the OnUnknownOverride hook but do not fail the
// call. The template is never modified.
//
// Errors:
//   - *UnknownPrototypeError if name is not registered.
//   - *clone.NotCloneableError (wrapped) if a deep clone is impossible.
//   - ErrOverridesUnsupported if overrides are given and the clone is not a Patcher.
//   - ErrInvalidOverride (wrapping the Patcher error) for rejected values.
func (r *Registry) Create(name string, d clone.Depth, overrides Overrides) (clone.Cloneable, error) {
	c, found, err := r.cloneOf(name, d)
	if !found {
		return nil, &UnknownPrototypeError{Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("prototype: %s clone of %q: %w", d, name, err)
	}
	if c == nil {
		return nil, fmt.Errorf("prototype: %s clone of %q: %w", d, name, clone.ErrNilValue)
	}
	if len(overrides) == 0 {
		return c, nil
	}

	p, ok := c.(Patcher)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", ErrOverridesUnsupported, name, c)
	}
	for _, field := range slices.Sorted(maps.Keys(overrides)) {
		err = p.SetField(field, overrides[field])
		switch {
		case err == nil:
		case errors.Is(err, clone.ErrUnknownField):
			r.log.Warn("unknown override key ignored",
				zap.String("prototype", name),
				zap.String("field", field))
			r.onUnknown(name, field)
		default:
			return nil, fmt.Errorf("%w: %q field %q: %w", ErrInvalidOverride, name, field, err)
		}
	}

	return c, nil
}

// cloneOf clones the template under the read lock. The deferred unlock keeps
// the registry usable if a Clone implementation panics.
func (r *Registry) cloneOf(name string, d clone.Depth) (c clone.Cloneable, found bool, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return nil, false, nil
	}
	c, err = r.entries[i].proto.Clone(d)

	return c, true, err
}

// isNil reports whether p is nil or an interface holding a nil pointer, map,
// slice or func.
func isNil(p clone.Cloneable) bool {
	if p == nil {
		return true
	}
	switch v := reflect.ValueOf(p); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// CreateAs is Create followed by a type assertion to T.
func CreateAs[T clone.Cloneable](r *Registry, name string, d clone.Depth, overrides Overrides) (T, error) {
	var zero T
	c, err := r.Create(name, d, overrides)
	if err != nil {
		return zero, err
	}
	t, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("prototype: %q produced %T, not %T", name, c, zero)
	}

	return t, nil
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.name
	}

	return out
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[name]

	return ok
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Unregister removes the template stored under name.
func (r *Registry) Unregister(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[name]
	if !ok {
		return &UnknownPrototypeError{Name: name}
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	delete(r.index, name)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].name] = j
	}
	r.log.Debug("prototype unregistered", zap.String("name", name))

	return nil
}

// Clear drops every template. Issued clones remain valid.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.index = make(map[string]int)
	r.entries = nil
	r.mu.Unlock()
}
