// Package core_test verifies thread-safety of core.Graph under
// concurrent mutation and snapshot reads.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/core"
)

// TestConcurrentAddEdge launches many goroutines adding distinct edges
// from a shared hub and checks that all of them land.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.New[string, string]()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			e, err := core.NewEdge("hub", fmt.Sprintf("n%d", id), "link")
			require.NoError(t, err)
			require.NoError(t, g.AddEdge(e))
		}(i)
	}
	wg.Wait()

	children, err := g.Children("hub")
	require.NoError(t, err)
	require.Len(t, children, num)
	require.Equal(t, num+1, g.NodeCount())
}

// TestConcurrentDuplicateAddEdge hammers the same edge from many
// goroutines; idempotency must hold under contention.
func TestConcurrentDuplicateAddEdge(t *testing.T) {
	g := core.New[string, string]()
	e, err := core.NewEdge("a", "b", "x")
	require.NoError(t, err)

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = g.AddEdge(e)
		}()
	}
	wg.Wait()

	edges, err := g.Edges("a")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, 1, g.EdgeCount())
}

// TestConcurrentReadersAndWriters mixes snapshot queries and clones
// with ongoing mutation; no panics and no torn snapshots allowed.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.New[string, string](core.WithDirected(false))
	for i := 0; i < 50; i++ {
		e, err := core.NewEdge("center", fmt.Sprintf("leaf%d", i), "spoke")
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(e))
	}

	const readers, writers = 50, 10
	var wg sync.WaitGroup
	wg.Add(readers + writers)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_ = g.Nodes()
			if edges, err := g.Edges("center"); err == nil {
				// Snapshot length can only grow between calls, never tear.
				require.GreaterOrEqual(t, len(edges), 50)
			}
			_ = g.Clone()
		}()
	}
	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			e, err := core.NewEdge("center", fmt.Sprintf("extra%d", id), "spoke")
			require.NoError(t, err)
			require.NoError(t, g.AddEdge(e))
		}(i)
	}
	wg.Wait()

	require.Equal(t, 60, g.EdgeCount())
}
