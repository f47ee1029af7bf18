// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Depth, the Cloneable/Resource contracts and sentinel errors.

package clone

import (
	"errors"
	"fmt"
)

// Sentinel errors for cloning.
var (
	// ErrNotCloneable indicates a deep clone reached a field with no copy strategy.
	ErrNotCloneable = errors.New("clone: value is not cloneable")

	// ErrUnknownField indicates a field name that the value does not define.
	ErrUnknownField = errors.New("clone: unknown field")

	// ErrNilValue indicates a nil Cloneable was passed where a value is required.
	ErrNilValue = errors.New("clone: nil value")
)

// Depth selects how reference fields are duplicated.
type Depth int

const (
	// Shallow copies value fields and aliases reference fields.
	Shallow Depth = iota

	// Deep copies value fields and recursively duplicates reference fields.
	Deep
)

// DepthOf maps a boolean "deep" flag onto a Depth.
func DepthOf(deep bool) Depth {
	if deep {
		return Deep
	}

	return Shallow
}

// String implements fmt.Stringer.
func (d Depth) String() string {
	switch d {
	case Shallow:
		return "shallow"
	case Deep:
		return "deep"
	default:
		return fmt.Sprintf("Depth(%d)", int(d))
	}
}

// Cloneable is implemented by every value that can produce an independent
// copy of itself. Implementations name their value and reference fields
// explicitly; there is no reflective fallback.
//
// Clone must return a new instance in both depths and must not modify the
// receiver. A Deep clone that meets a field without a copy strategy returns
// a *NotCloneableError and a nil Cloneable.
type Cloneable interface {
	Clone(d Depth) (Cloneable, error)
}

// Resource marks an external handle (file, socket, connection) that cannot be
// duplicated. Shallow clones share it, Deep clones reject it.
type Resource interface {
	Resource()
}

// NotCloneableError reports the field that stopped a deep clone.
type NotCloneableError struct {
	// Field is the dotted path of the offending field ("ssl.cert", "Source").
	Field string

	// Type is the Go type of the value held by Field.
	Type string
}

// Error implements error.
func (e *NotCloneableError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("clone: field %q is not cloneable", e.Field)
	}

	return fmt.Sprintf("clone: field %q of type %s is not cloneable", e.Field, e.Type)
}

// Unwrap lets errors.Is(err, ErrNotCloneable) match.
func (e *NotCloneableError) Unwrap() error { return ErrNotCloneable }

// NotCloneable builds a *NotCloneableError for field holding v.
func NotCloneable(field string, v any) *NotCloneableError {
	return &NotCloneableError{Field: field, Type: fmt.Sprintf("%T", v)}
}

// UnknownField wraps ErrUnknownField with the offending name.
func UnknownField(field string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}
