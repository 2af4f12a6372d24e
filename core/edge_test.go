// Package core_test verifies the Edge value type contract:
// construction validation, accessor purity, structural equality and
// hash consistency.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/core"
)

// mustEdge builds an edge and fails the test on a constructor error.
func mustEdge(t *testing.T, parent, child, label string) core.Edge[string, string] {
	t.Helper()
	e, err := core.NewEdge(parent, child, label)
	require.NoError(t, err)

	return e
}

func TestNewEdge_Valid(t *testing.T) {
	e := mustEdge(t, "A", "B", "x")
	require.Equal(t, "A", e.Parent())
	require.Equal(t, "B", e.Child())
	require.Equal(t, "x", e.Label())
}

func TestNewEdge_SelfLoopAllowed(t *testing.T) {
	// Parent and child may be equal; only absence is rejected.
	e := mustEdge(t, "A", "A", "loop")
	require.Equal(t, e.Parent(), e.Child())
}

func TestNewEdge_RejectsAbsentFields(t *testing.T) {
	// The zero value of the node type means "absent".
	_, err := core.NewEdge("", "B", "x")
	require.ErrorIs(t, err, core.ErrMissingNode)

	_, err = core.NewEdge("A", "", "x")
	require.ErrorIs(t, err, core.ErrMissingNode)

	_, err = core.NewEdge("A", "B", "")
	require.ErrorIs(t, err, core.ErrMissingLabel)
}

func TestEdge_Equal(t *testing.T) {
	a := mustEdge(t, "A", "B", "x")
	same := mustEdge(t, "A", "B", "x")
	require.True(t, a.Equal(same))
	require.True(t, a == same) // comparable value type: == agrees with Equal

	// Any single differing field breaks equality.
	require.False(t, a.Equal(mustEdge(t, "C", "B", "x")))
	require.False(t, a.Equal(mustEdge(t, "A", "C", "x")))
	require.False(t, a.Equal(mustEdge(t, "A", "B", "y")))

	// Reversed endpoints are a different edge.
	require.False(t, a.Equal(mustEdge(t, "B", "A", "x")))
}

func TestEdge_EqualAgainstAbsentIsFalse(t *testing.T) {
	// Policy: comparing to the zero ("absent") edge reports false,
	// uniformly with HasNode/HasEdge on absent inputs.
	var absent core.Edge[string, string]
	e := mustEdge(t, "A", "B", "x")
	require.False(t, e.Equal(absent))
	require.False(t, absent.Equal(e))
	require.True(t, absent.Equal(absent))
}

func TestEdge_HashConsistentWithEqual(t *testing.T) {
	a := mustEdge(t, "A", "B", "x")
	b := mustEdge(t, "A", "B", "x")
	require.Equal(t, a.Hash(), b.Hash(), "equal edges must hash equal")

	// Self-loop hashes are stable too.
	l1 := mustEdge(t, "A", "A", "loop")
	l2 := mustEdge(t, "A", "A", "loop")
	require.Equal(t, l1.Hash(), l2.Hash())
}

func TestEdge_IntNodes(t *testing.T) {
	// Node and label types are fully generic; exercise a non-string pair.
	e, err := core.NewEdge(1, 2, 3.5)
	require.NoError(t, err)
	require.Equal(t, 1, e.Parent())
	require.Equal(t, 2, e.Child())
	require.Equal(t, 3.5, e.Label())

	_, err = core.NewEdge(0, 2, 3.5) // zero int parent is "absent"
	require.ErrorIs(t, err, core.ErrMissingNode)
}
