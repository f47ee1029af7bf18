// SPDX-License-Identifier: MIT
//
// File: yaml.go
// Role: YAML decoding/encoding of named templates and bulk registration.
// Determinism:
//   - Field order and template order follow the document.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/protokit/prototype"
)

// Template is a named Config read from or written to YAML.
type Template struct {
	Name   string
	Config *Config
}

type fileDoc struct {
	Prototypes []rawTemplate `yaml:"prototypes"`
}

type rawTemplate struct {
	Name   string    `yaml:"name"`
	Kind   string    `yaml:"kind"`
	Fields yaml.Node `yaml:"fields"`
}

// Decode reads templates from r.
//
// Errors:
//   - ErrInvalidTemplate for a missing name, a fields value that is not a
//     mapping, or a non-scalar or merge key at any depth. Scalar keys
//     are kept as their text.
//   - ErrDuplicateTemplate when a name repeats.
//   - yaml syntax errors, wrapped.
func Decode(r io.Reader) ([]Template, error) {
	var doc fileDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse templates: %w", err)
	}

	out := make([]Template, 0, len(doc.Prototypes))
	seen := make(map[string]struct{}, len(doc.Prototypes))
	for i, raw := range doc.Prototypes {
		if raw.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidTemplate, i)
		}
		if _, dup := seen[raw.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTemplate, raw.Name)
		}
		seen[raw.Name] = struct{}{}

		c, err := decodeFields(raw.Kind, &raw.Fields)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTemplate, raw.Name, err)
		}
		out = append(out, Template{Name: raw.Name, Config: c})
	}

	return out, nil
}

// LoadFile opens path and decodes its templates.
func LoadFile(path string) ([]Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open templates: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// RegisterAll registers every template in order. It stops at the first
// registration error; earlier templates stay registered.
func RegisterAll(reg *prototype.Registry, templates []Template) error {
	for _, t := range templates {
		if err := reg.Register(t.Name, t.Config); err != nil {
			return fmt.Errorf("config: register %q: %w", t.Name, err)
		}
	}

	return nil
}

// Encode writes templates to w in the format Decode reads.
func Encode(w io.Writer, templates []Template) error {
	list := &yaml.Node{Kind: yaml.SequenceNode}
	for _, t := range templates {
		fields := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range t.Config.order {
			val := &yaml.Node{}
			if err := val.Encode(t.Config.fields[k]); err != nil {
				return fmt.Errorf("config: encode %q field %q: %w", t.Name, k, err)
			}
			fields.Content = append(fields.Content, scalar(k), val)
		}
		list.Content = append(list.Content, &yaml.Node{
			Kind: yaml.MappingNode,
			Content: []*yaml.Node{
				scalar("name"), scalar(t.Name),
				scalar("kind"), scalar(t.Config.kind),
				scalar("fields"), fields,
			},
		})
	}
	root := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{scalar("prototypes"), list},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("config: encode templates: %w", err)
	}

	return enc.Close()
}

// decodeFields walks a mapping node so the key order survives.
func decodeFields(kind string, n *yaml.Node) (*Config, error) {
	c := New(kind)
	if n.Kind == 0 {
		return c, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("fields must be a mapping (line %d)", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, err := mappingKey("", n.Content[i])
		if err != nil {
			return nil, err
		}
		val, err := decodeValue(key, n.Content[i+1])
		if err != nil {
			return nil, err
		}
		if _, ok := c.fields[key]; !ok {
			c.order = append(c.order, key)
		}
		c.fields[key] = val
	}

	return c, nil
}

// decodeValue converts n into the tree shapes clone.Value deep-copies:
// map[string]any, []any and scalars. Scalar mapping keys keep their text,
// so `80: http` becomes {"80": "http"}.
func decodeValue(path string, n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return decodeValue(path, n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := mappingKey(path, n.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(joinPath(path, key), n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
		return m, nil
	case yaml.SequenceNode:
		s := make([]any, len(n.Content))
		for i, item := range n.Content {
			v, err := decodeValue(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			s[i] = v
		}
		return s, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("field %q: %w", path, err)
		}
		return v, nil
	}
}

func mappingKey(path string, k *yaml.Node) (string, error) {
	if k.Kind == yaml.AliasNode {
		k = k.Alias
	}
	if k.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("non-scalar key under %q (line %d)", path, k.Line)
	}
	if k.Tag == "!!merge" {
		return "", fmt.Errorf("merge key under %q is not supported (line %d)", path, k.Line)
	}

	return k.Value, nil
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
