// Package core: cloning operations.

package core

// CloneEmpty returns a new Graph with the same directedness flag and
// the same nodes, but no edges.
// Complexity: O(V).
func (g *Graph[N, L]) CloneEmpty() *Graph[N, L] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := New[N, L](WithDirected(g.directed))
	for node := range g.nodes {
		clone.nodes[node] = make(map[Edge[N, L]]struct{})
	}

	return clone
}

// Clone returns a deep copy of the graph: flag, nodes and edge sets.
// Edges are immutable values, so copying the sets is a full deep copy;
// later mutation of either graph is invisible to the other.
// Complexity: O(V + E).
func (g *Graph[N, L]) Clone() *Graph[N, L] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := New[N, L](WithDirected(g.directed))
	for node, bucket := range g.nodes {
		set := make(map[Edge[N, L]]struct{}, len(bucket))
		for e := range bucket {
			set[e] = struct{}{}
		}
		clone.nodes[node] = set
	}
	clone.edgeCount = g.edgeCount
	clone.checkRep()

	return clone
}
