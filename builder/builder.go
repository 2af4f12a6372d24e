// Package builder: public entry point and configuration resolution.
//
// Design contract:
//   - One orchestrator: Build(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs constructors in order.
//   - Functional options resolve into an immutable config; no global
//     state.
//   - Determinism: same options and constructor order produce an
//     identical graph.
//   - Safety: constructors validate early and return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

// Constructor applies one deterministic topology mutation to g using
// the resolved config. Constructors validate their size parameter
// first and wrap core errors with method context.
type Constructor[N, L comparable] func(g *core.Graph[N, L], cfg config[N, L]) error

// Option configures the builder before constructors run.
type Option[N, L comparable] func(*config[N, L])

// config carries the caller-supplied factories consumed by every
// constructor.
type config[N, L comparable] struct {
	// nodeFn maps a vertex index (0..n-1) to a node identity.
	nodeFn func(i int) N

	// labelFn maps an ordered endpoint pair to the edge label.
	labelFn func(parent, child N) L
}

// WithNodeFunc supplies the node identity factory. Mandatory: indices
// are the only handle the builder has on generic node values.
func WithNodeFunc[N, L comparable](fn func(i int) N) Option[N, L] {
	return func(c *config[N, L]) { c.nodeFn = fn }
}

// WithLabelFunc supplies the edge label factory, invoked once per
// emitted edge with the ordered endpoints.
func WithLabelFunc[N, L comparable](fn func(parent, child N) L) Option[N, L] {
	return func(c *config[N, L]) { c.labelFn = fn }
}

// Build creates a new core.Graph with the given core options, resolves
// the builder configuration and applies all constructors in order. The
// first constructor error is wrapped with "Build: %w" and returned;
// no partial cleanup is attempted.
//
// Returns ErrNeedNodeFunc / ErrNeedLabelFunc when a factory is missing
// and ErrNilConstructor for a nil entry in cons.
func Build[N, L comparable](gopts []core.Option, bopts []Option[N, L], cons ...Constructor[N, L]) (*core.Graph[N, L], error) {
	g := core.New[N, L](gopts...)

	var cfg config[N, L]
	for _, opt := range bopts {
		opt(&cfg)
	}
	// Every constructor needs both factories; validate once here.
	if cfg.nodeFn == nil {
		return nil, fmt.Errorf("Build: %w", ErrNeedNodeFunc)
	}
	if cfg.labelFn == nil {
		return nil, fmt.Errorf("Build: %w", ErrNeedLabelFunc)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addNodes registers nodes for indices 0..n-1 in ascending order.
// Shared by every constructor.
func addNodes[N, L comparable](g *core.Graph[N, L], cfg config[N, L], method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddNode(cfg.nodeFn(i)); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, i, err)
		}
	}

	return nil
}

// connect builds and stores one labeled edge between the nodes at the
// given indices.
func connect[N, L comparable](g *core.Graph[N, L], cfg config[N, L], method string, from, to int) error {
	u, v := cfg.nodeFn(from), cfg.nodeFn(to)
	e, err := core.NewEdge(u, v, cfg.labelFn(u, v))
	if err != nil {
		return fmt.Errorf("%s: NewEdge(%d,%d): %w", method, from, to, err)
	}
	if err = g.AddEdge(e); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, from, to, err)
	}

	return nil
}
