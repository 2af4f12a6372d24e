// Package core provides a generic, thread-safe, in-memory labeled
// multigraph: a mutable registry of nodes of any comparable type N,
// connected by immutable labeled edges with labels of any comparable
// type L.
//
// The structure is a mapping from each node to the set of its outgoing
// edges. Three invariants hold after every successful operation:
//
//   - Closure: every edge endpoint (parent and child) is itself a
//     registered node; no dangling references.
//   - Node uniqueness: the node registry is a set under N's own
//     equality (node identities are opaque values, never interpreted).
//   - Edge uniqueness: no two stored edges share the same parent, child
//     and label. Edges differing only in label coexist between the same
//     ordered pair (multigraph semantics).
//
// Growth is monotonic: nodes and edges are only ever added, never
// removed. AddNode and AddEdge are idempotent, and AddEdge registers
// missing endpoints as a side effect, so the closure invariant can
// never be violated by the public API.
//
// Directed vs. undirected:
//
// A Graph is directed by default. Constructing with WithDirected(false)
// keeps the identical data model and API but stores the mirror triple
// (child, parent, label) alongside every added edge, so connectivity
// reads symmetrically. Self-loops mirror onto themselves and are stored
// once either way.
//
// Absent values:
//
// The zero value of N (and of L for edge labels) is reserved to mean
// "absent". Constructors and mutating operations reject it with a
// sentinel error; boolean queries (HasNode, HasEdge) simply report
// false. The zero Edge value likewise means "no edge".
//
// Concurrency:
//
// All operations take a single sync.RWMutex per Graph. Queries that
// return containers (Nodes, Children, Edges) copy under the read lock,
// so a returned snapshot is never affected by later mutation.
// Enumeration order of any returned slice or map is unspecified.
//
// Errors (sentinel; branch with errors.Is):
//
//	ErrMissingNode  - node argument is the zero value of N
//	ErrMissingLabel - edge label is the zero value of L
//	ErrMissingEdge  - edge argument is the zero Edge value
//	ErrNodeNotFound - queried node is not registered in the graph
//
// Typical usage:
//
//	g := core.New[string, string]()
//	e, err := core.NewEdge("1", "2", "A")
//	if err != nil { ... }
//	_ = g.AddEdge(e)               // auto-registers "1" and "2"
//	children, _ := g.Children("1") // map["2"] == ["A"]
//
// Building with the `graphdebug` tag additionally re-verifies the full
// representation invariant after every mutation; release builds compile
// the check away entirely.
package core
