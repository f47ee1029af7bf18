// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Config type, Field pairs and sentinel errors.

package config

import "errors"

// Sentinel errors for configuration prototypes.
var (
	// ErrTypeMismatch indicates a nested section was replaced by a non-section value.
	ErrTypeMismatch = errors.New("config: value does not match field type")

	// ErrNoSections indicates AddSection on a config without content.sections.
	ErrNoSections = errors.New("config: config has no content.sections list")

	// ErrInvalidTemplate indicates a malformed YAML template entry.
	ErrInvalidTemplate = errors.New("config: invalid template")

	// ErrDuplicateTemplate indicates two YAML templates share a name.
	ErrDuplicateTemplate = errors.New("config: duplicate template name")
)

// Well-known kinds used by the presets.
const (
	KindDatabase = "database"
	KindAPI      = "api"
	KindDocument = "document"
)

// Field is one top-level key/value pair, used to build a Config in order.
type Field struct {
	Key   string
	Value any
}

// F is shorthand for Field{Key: key, Value: value}.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Config is an ordered, map-backed configuration prototype.
//
// fields holds top-level values; order keeps their insertion order for
// String and YAML encoding. Nested sections are reference fields: a Shallow
// clone shares them with its source, a Deep clone copies them.
type Config struct {
	kind   string
	fields map[string]any
	order  []string
}

// New builds a Config of kind from fields. A repeated key keeps its first
// position and its last value.
func New(kind string, fields ...Field) *Config {
	c := &Config{kind: kind, fields: make(map[string]any, len(fields))}
	for _, f := range fields {
		if _, ok := c.fields[f.Key]; !ok {
			c.order = append(c.order, f.Key)
		}
		c.fields[f.Key] = f.Value
	}

	return c
}
