// Package lvlgraph is a small, generic, in-memory labeled multigraph
// container: nodes of any comparable type, connected by zero or more
// labeled directed edges per ordered node pair.
//
// What lvlgraph gives you:
//
//   - Core primitives: immutable labeled edges and a mutable node/edge
//     registry with strict insertion invariants, safe under concurrent use
//   - Directed and undirected interpretation of the same structure,
//     selected by a single option rather than a second implementation
//   - Deterministic topology builders (path, cycle, star, complete) for
//     assembling fixtures and test graphs
//
// What lvlgraph deliberately is not: it ships no traversal or
// shortest-path algorithms, no weights, no serialization and no
// persistence. It is the storage layer a host application (or an
// algorithm library) embeds directly.
//
// Everything lives under two subpackages:
//
//	core/    — Graph and Edge types, mutation and query API
//	builder/ — deterministic topology constructors over core
//
// Quick example:
//
//	g := core.New[string, string]()
//	e, _ := core.NewEdge("1", "2", "A")
//	_ = g.AddEdge(e)               // registers "1" and "2" as a side effect
//	children, _ := g.Children("1") // map["2"] == ["A"]
//
// See the core package documentation for the full contract.
//
//	go get github.com/katalvlaran/lvlgraph
package lvlgraph
