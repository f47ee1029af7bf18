// SPDX-License-Identifier: MIT
//
// File: value.go
// Role: Duplication of loosely-typed value trees (map[string]any / []any).
// Policy:
//   - Shallow never fails and never allocates for nested values.
//   - Deep copies maps and slices recursively, delegates to nested Cloneable
//     values and rejects anything else that is not a plain value.

package clone

import (
	"errors"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"time"
)

// Value duplicates v according to d. field is the dotted path of v inside its
// owner and is used only for error reporting.
//
// Shallow returns v unchanged. Deep returns an independent copy of v or a
// *NotCloneableError naming the first field (in sorted key order) that could
// not be copied.
func Value(field string, v any, d Depth) (any, error) {
	if d != Deep || v == nil {
		return v, nil
	}

	switch x := v.(type) {
	case Resource:
		return nil, NotCloneable(field, v)
	case Cloneable:
		c, err := x.Clone(Deep)
		if err != nil {
			return nil, prefixed(field, err)
		}
		return c, nil
	case map[string]any:
		return Map(field, x, Deep)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			c, err := Value(index(field, i), e, Deep)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case []string:
		return slices.Clone(x), nil
	case []int:
		return slices.Clone(x), nil
	case []float64:
		return slices.Clone(x), nil
	case map[string]string:
		return maps.Clone(x), nil
	case map[string]int:
		return maps.Clone(x), nil
	case time.Time:
		return x, nil
	}

	if isPlain(reflect.TypeOf(v)) {
		return v, nil
	}

	return nil, NotCloneable(field, v)
}

// Map returns a new map holding every entry of m duplicated according to d.
// The returned map is always a fresh allocation, so the caller may add or
// replace keys without touching m; only the nested values are aliased when
// d is Shallow. A nil m yields a nil map.
func Map(field string, m map[string]any, d Depth) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]any, len(m))
	if d != Deep {
		maps.Copy(out, m)
		return out, nil
	}
	// Sorted walk so the reported field is stable across runs.
	for _, k := range slices.Sorted(maps.Keys(m)) {
		c, err := Value(join(field, k), m[k], Deep)
		if err != nil {
			return nil, err
		}
		out[k] = c
	}

	return out, nil
}

// isPlain reports whether values of t carry no references at all.
func isPlain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	case reflect.Array:
		return isPlain(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isPlain(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// prefixed rewrites a nested NotCloneableError so Field carries the full path.
func prefixed(field string, err error) error {
	var nc *NotCloneableError
	if field == "" || !errors.As(err, &nc) {
		return err
	}

	return &NotCloneableError{Field: join(field, nc.Field), Type: nc.Type}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}

	return prefix + "." + key
}

func index(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}
