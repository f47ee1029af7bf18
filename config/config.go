// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Accessors, lenient updates, Patcher and Cloneable implementations.

package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/protokit/clone"
)

// Kind returns the configuration kind tag.
func (c *Config) Kind() string { return c.kind }

// Keys returns top-level keys in insertion order.
func (c *Config) Keys() []string { return slices.Clone(c.order) }

// Get returns the top-level value stored under key.
func (c *Config) Get(key string) (any, bool) {
	v, ok := c.fields[key]
	return v, ok
}

// Lookup resolves a dotted path ("connection_pool.max_connections") through
// nested sections.
func (c *Config) Lookup(path string) (any, bool) {
	var cur any = c.fields
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}

	return cur, true
}

// Fields returns a new top-level map. Nested sections are shared with c,
// matching a Shallow clone.
func (c *Config) Fields() map[string]any {
	m, _ := clone.Map("", c.fields, clone.Shallow)
	return m
}

// Update applies updates to known top-level keys and returns the keys it
// ignored, sorted. Values that fail SetField validation are ignored too.
func (c *Config) Update(updates map[string]any) (ignored []string) {
	for _, k := range slices.Sorted(maps.Keys(updates)) {
		if err := c.SetField(k, updates[k]); err != nil {
			ignored = append(ignored, k)
		}
	}

	return ignored
}

// SetField replaces a top-level field. It implements prototype.Patcher.
//
// Errors:
//   - clone.ErrUnknownField if key is not a top-level field.
//   - ErrTypeMismatch if a nested section would be replaced by a non-section.
func (c *Config) SetField(key string, value any) error {
	old, ok := c.fields[key]
	if !ok {
		return clone.UnknownField(key)
	}
	if _, section := old.(map[string]any); section {
		if _, ok = value.(map[string]any); !ok {
			return fmt.Errorf("%w: %q is a section, got %T", ErrTypeMismatch, key, value)
		}
	}
	c.fields[key] = value

	return nil
}

// Clone implements clone.Cloneable. The top-level map is always new; nested
// sections are aliased for Shallow and duplicated for Deep.
func (c *Config) Clone(d clone.Depth) (clone.Cloneable, error) {
	fields, err := clone.Map("", c.fields, d)
	if err != nil {
		return nil, fmt.Errorf("config: clone %s: %w", c.kind, err)
	}

	return &Config{kind: c.kind, fields: fields, order: slices.Clone(c.order)}, nil
}

// AddSection appends a section to content.sections, numbering it from 1.
func (c *Config) AddSection(title, content string) error {
	v, ok := c.Lookup("content.sections")
	if !ok {
		return ErrNoSections
	}
	sections, ok := v.([]any)
	if !ok && v != nil {
		return fmt.Errorf("%w: content.sections is %T", ErrNoSections, v)
	}
	sections = append(sections, map[string]any{
		"title":   title,
		"content": content,
		"order":   len(sections) + 1,
	})
	c.fields["content"].(map[string]any)["sections"] = sections

	return nil
}

// Sections returns the titles recorded in content.sections.
func (c *Config) Sections() []string {
	v, _ := c.Lookup("content.sections")
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, s := range list {
		if m, ok := s.(map[string]any); ok {
			out = append(out, fmt.Sprint(m["title"]))
		}
	}

	return out
}

// String renders the scalar top-level fields, e.g.
// database(host=localhost port=5432).
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.kind)
	b.WriteByte('(')
	first := true
	for _, k := range c.order {
		v := c.fields[k]
		switch v.(type) {
		case nil, map[string]any, []any, []string:
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%s=%v", k, v)
	}
	b.WriteByte(')')

	return b.String()
}
