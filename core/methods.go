// Package core: Graph method implementations.
//
// Mutators take the write lock and validate every argument before
// touching state, so a failed call never leaves a partial effect.
// Snapshot queries copy under the read lock; the returned containers
// are independent of the graph afterwards.

package core

// AddNode registers node in the graph with an empty outgoing-edge set.
// Returns ErrMissingNode if node is the zero value. Adding a node that
// already exists is a no-op (idempotent, never an error).
// Complexity: O(1) amortized.
func (g *Graph[N, L]) AddNode(node N) error {
	if isZero(node) {
		return ErrMissingNode
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(node)
	g.checkRep()

	return nil
}

// AddEdge stores e in the outgoing-edge set of its parent. Both
// endpoints are registered as nodes first if missing, so the closure
// invariant always holds. Adding an edge structurally equal to one
// already stored is a no-op; edges sharing endpoints but carrying
// distinct labels are stored separately (multigraph semantics).
//
// In an undirected graph the mirror triple (child, parent, label) is
// stored under the child as well; a self-loop coincides with its mirror
// and is stored once.
//
// Returns ErrMissingEdge if e is the zero Edge value.
// Complexity: O(1) amortized.
func (g *Graph[N, L]) AddEdge(e Edge[N, L]) error {
	if e.isAbsent() {
		return ErrMissingEdge
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	// Already present (or, undirected, present as a mirror): no-op.
	if g.hasEdgeLocked(e) {
		return nil
	}

	// Register endpoints before storing the edge; order matters only
	// for the closure invariant, which must hold at every step.
	g.addNodeLocked(e.parent)
	g.addNodeLocked(e.child)

	g.nodes[e.parent][e] = struct{}{}
	if !g.directed && e.parent != e.child {
		g.nodes[e.child][e.mirror()] = struct{}{}
	}
	g.edgeCount++
	g.checkRep()

	return nil
}

// Nodes returns a snapshot of all node identities. The slice is freshly
// allocated and unaffected by later mutation; element order is
// unspecified.
// Complexity: O(V).
func (g *Graph[N, L]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, 0, len(g.nodes))
	for node := range g.nodes {
		out = append(out, node)
	}

	return out
}

// Children groups the outgoing edges of node by child: the value for
// each child is the set of distinct labels connecting node to it, in
// unspecified order. A child reachable via three differently labeled
// edges yields one key with a three-element label slice.
//
// Returns ErrMissingNode if node is the zero value, ErrNodeNotFound if
// it is not registered.
// Complexity: O(deg(node)).
func (g *Graph[N, L]) Children(node N) (map[N][]L, error) {
	if isZero(node) {
		return nil, ErrMissingNode
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.nodes[node]
	if !ok {
		return nil, ErrNodeNotFound
	}

	// Stored edges are unique triples with a fixed parent, so the
	// (child, label) pairs, and hence the labels per child, are distinct.
	children := make(map[N][]L)
	for e := range bucket {
		children[e.child] = append(children[e.child], e.label)
	}

	return children, nil
}

// Edges returns a snapshot of the full outgoing-edge set of node, in
// unspecified order.
//
// Returns ErrMissingNode if node is the zero value, ErrNodeNotFound if
// it is not registered.
// Complexity: O(deg(node)).
func (g *Graph[N, L]) Edges(node N) ([]Edge[N, L], error) {
	if isZero(node) {
		return nil, ErrMissingNode
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.nodes[node]
	if !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]Edge[N, L], 0, len(bucket))
	for e := range bucket {
		out = append(out, e)
	}

	return out, nil
}

// IsEmpty reports whether the graph has no nodes.
// Complexity: O(1).
func (g *Graph[N, L]) IsEmpty() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes) == 0
}

// HasNode reports whether node is registered in the graph. The zero
// ("absent") value is reported as not present, never as an error.
// Complexity: O(1).
func (g *Graph[N, L]) HasNode(node N) bool {
	if isZero(node) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[node]

	return ok
}

// HasEdge reports whether an edge structurally equal to e is stored in
// the graph. If e's parent is not a registered node the answer is false
// without further inspection. The zero Edge is reported as not present.
// Complexity: O(1).
func (g *Graph[N, L]) HasEdge(e Edge[N, L]) bool {
	if e.isAbsent() {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(e)
}

// NodeCount returns the number of registered nodes.
// Complexity: O(1).
func (g *Graph[N, L]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of logically distinct edges added to the
// graph. Mirror records in undirected graphs do not double-count.
// Complexity: O(1).
func (g *Graph[N, L]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Directed reports whether edges are interpreted as one-way. The flag
// is fixed at construction.
func (g *Graph[N, L]) Directed() bool {
	return g.directed
}

// Internal helpers. Callers hold g.mu.
////////////////////

// addNodeLocked inserts node with an empty edge set unless present.
func (g *Graph[N, L]) addNodeLocked(node N) {
	if _, ok := g.nodes[node]; ok {
		return
	}
	g.nodes[node] = make(map[Edge[N, L]]struct{})
}

// hasEdgeLocked reports membership of the exact triple e. In undirected
// graphs the mirror record makes the check symmetric automatically.
func (g *Graph[N, L]) hasEdgeLocked(e Edge[N, L]) bool {
	bucket, ok := g.nodes[e.parent]
	if !ok {
		return false
	}
	_, ok = bucket[e]

	return ok
}
