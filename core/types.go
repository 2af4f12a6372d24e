// Package core: type declarations, sentinel errors, options and the
// Graph constructor. Method implementations live in methods.go and
// methods_clone.go; the Edge value type lives in edge.go.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrMissingNode indicates a node argument was the zero value of N,
	// which the graph reserves to mean "absent".
	ErrMissingNode = errors.New("core: node value is absent")

	// ErrMissingLabel indicates an edge label was the zero value of L.
	ErrMissingLabel = errors.New("core: edge label is absent")

	// ErrMissingEdge indicates an edge argument was the zero Edge value.
	ErrMissingEdge = errors.New("core: edge value is absent")

	// ErrNodeNotFound indicates a query referenced a node that is not
	// registered in the graph.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Option configures a Graph before creation.
type Option func(*config)

// config collects construction-time flags resolved from Options.
type config struct {
	directed bool
}

// WithDirected sets whether edges are interpreted as one-way (true) or
// mirrored in both directions (false). The default is directed.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// Graph is a mutable, generic labeled multigraph.
//
// N is the node identity type and L the edge label type; both use their
// language-level equality as the structural equality of the graph. The
// zero value of either type is reserved as "absent" and rejected at the
// API boundary.
//
// Internally each node maps to the set of its outgoing edges, stored as
// map keys so duplicate detection is a single lookup. The whole
// structure is guarded by one RWMutex; see the package documentation
// for the concurrency and snapshot contract.
type Graph[N, L comparable] struct {
	mu sync.RWMutex

	// directed is fixed at construction. When false, AddEdge stores the
	// mirror triple under the child as well.
	directed bool

	// nodes maps each registered node to its outgoing-edge set.
	nodes map[N]map[Edge[N, L]]struct{}

	// edgeCount tracks logical insertions; mirror records in undirected
	// graphs do not double-count.
	edgeCount int
}

// New creates an empty Graph with the given options.
// By default the graph is directed.
// Complexity: O(1).
func New[N, L comparable](opts ...Option) *Graph[N, L] {
	cfg := config{directed: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, L]{
		directed: cfg.directed,
		nodes:    make(map[N]map[Edge[N, L]]struct{}),
	}
}

// isZero reports whether v is the zero value of its type, the value the
// graph reserves to mean "absent".
func isZero[V comparable](v V) bool {
	var zero V

	return v == zero
}
