// SPDX-License-Identifier: MIT
// Package prototype_test verifies thread-safety of Registry under concurrent
// Register/Create/Names calls.

package prototype_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/protokit/clone"
	"github.com/katalvlaran/protokit/prototype"
)

const (
	NCreators  = 64
	NRegisters = 16
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestConcurrentCreate ensures concurrent creators each receive an
// independent clone and the template stays untouched.
func TestConcurrentCreate(t *testing.T) {
	tmpl := newServer()
	r := prototype.New()
	require.NoError(t, r.Register(NameDB, tmpl))

	clones := make([]*server, NCreators)
	var g errgroup.Group
	for i := 0; i < NCreators; i++ {
		g.Go(func() error {
			c, err := prototype.CreateAs[*server](r, NameDB, clone.Deep, prototype.Overrides{
				"host": fmt.Sprintf("node-%d", i),
			})
			if err != nil {
				return err
			}
			c.Pool.Max = i
			clones[i] = c
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, c := range clones {
		require.Equal(t, fmt.Sprintf("node-%d", i), c.Host)
		require.Equal(t, i, c.Pool.Max)
	}
	require.Equal(t, HostLocal, tmpl.Host)
	require.Equal(t, 20, tmpl.Pool.Max)
}

// TestConcurrentRegisterAndCreate mixes writers and readers; it asserts
// no race or panic and a consistent final catalog.
func TestConcurrentRegisterAndCreate(t *testing.T) {
	r := prototype.New()
	require.NoError(t, r.Register(NameDB, newServer()))

	var g errgroup.Group
	for i := 0; i < NRegisters; i++ {
		g.Go(func() error {
			return r.Register(fmt.Sprintf("svc-%d", i), newServer())
		})
		g.Go(func() error {
			_, err := r.Create(NameDB, clone.Shallow, nil)
			_ = r.Names()
			return err
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, NRegisters+1, r.Len())
	require.Equal(t, NameDB, r.Names()[0])
}
