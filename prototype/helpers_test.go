// SPDX-License-Identifier: MIT
// Package prototype_test contains fixtures shared by the registry tests.

package prototype_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/protokit/clone"
)

// Common names and values used across registry tests.
const (
	NameDB    = "db"
	NameCache = "cache"
	NameQueue = "queue"

	HostLocal = "localhost"
	HostDev   = "dev-server"
	Port      = 5432
)

// pool is a reference field owned by server.
type pool struct {
	Min, Max int
}

// server is a Cloneable + Patcher fixture with one value field of each kind
// and two reference fields (Pool, Tags).
type server struct {
	Host string
	Port int
	Pool *pool
	Tags []string
}

func newServer() *server {
	return &server{Host: HostLocal, Port: Port, Pool: &pool{Min: 5, Max: 20}, Tags: []string{"primary"}}
}

func (s *server) Clone(d clone.Depth) (clone.Cloneable, error) {
	out := *s
	if d == clone.Deep {
		if s.Pool != nil {
			p := *s.Pool
			out.Pool = &p
		}
		out.Tags = slices.Clone(s.Tags)
	}

	return &out, nil
}

func (s *server) SetField(field string, v any) error {
	switch field {
	case "host":
		h, ok := v.(string)
		if !ok {
			return fmt.Errorf("host must be a string, got %T", v)
		}
		s.Host = h
	case "port":
		p, ok := v.(int)
		if !ok {
			return fmt.Errorf("port must be an int, got %T", v)
		}
		s.Port = p
	default:
		return clone.UnknownField(field)
	}

	return nil
}

// frozen is a Cloneable without Patcher support.
type frozen struct{ Value string }

func (f *frozen) Clone(clone.Depth) (clone.Cloneable, error) {
	out := *f
	return &out, nil
}

// socket is a Cloneable whose deep clone always fails.
type socket struct{ Addr string }

func (s *socket) Clone(d clone.Depth) (clone.Cloneable, error) {
	if d == clone.Deep {
		return nil, &clone.NotCloneableError{Field: "Conn", Type: "net.Conn"}
	}
	out := *s
	return &out, nil
}

// hollow is a Cloneable whose clone yields nothing.
type hollow struct{}

func (*hollow) Clone(clone.Depth) (clone.Cloneable, error) { return nil, nil }

// explosive panics on Deep clone.
type explosive struct{}

func (e *explosive) Clone(d clone.Depth) (clone.Cloneable, error) {
	if d == clone.Deep {
		panic("explosive: deep clone")
	}
	return &explosive{}, nil
}
