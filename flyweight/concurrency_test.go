// SPDX-License-Identifier: MIT
// Package flyweight_test verifies that concurrent callers never construct two
// instances for the same key.

package flyweight_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/protokit/flyweight"
)

const (
	NGoroutines = 200
	NKeys       = 8
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestConcurrentGetOrCreate(t *testing.T) {
	var built atomic.Int64
	c, err := flyweight.New(func(k string) *shape {
		built.Add(1)
		return &shape{kind: k}
	})
	require.NoError(t, err)

	got := make([]*shape, NGoroutines)
	var g errgroup.Group
	for i := 0; i < NGoroutines; i++ {
		g.Go(func() error {
			s, err := c.GetOrCreate(fmt.Sprintf("k%d", i%NKeys))
			got[i] = s
			return err
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, int64(NKeys), built.Load())
	require.Equal(t, NKeys, c.Count())
	for i := NKeys; i < NGoroutines; i++ {
		require.Same(t, got[i%NKeys], got[i])
	}
	require.Equal(t, NGoroutines, c.Stats().Requests)
}
