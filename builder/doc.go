// Package builder provides deterministic topology constructors over
// core.Graph: path, cycle, star and complete graphs assembled from
// caller-supplied node and label factories.
//
// One orchestrator, Build, creates the graph, resolves the builder
// configuration from functional options and applies the requested
// constructors in order. Same inputs and constructor order always
// produce an identical graph.
//
// Because node identities and edge labels are opaque generic values,
// the builder cannot invent them: every Build call must supply
// WithNodeFunc (index to node identity) and WithLabelFunc (endpoint
// pair to label). Constructors consume them in a fixed index order, so
// determinism is inherited from the factories.
//
// Errors (sentinel; branch with errors.Is):
//
//	ErrTooFewNodes    - size parameter below the constructor's minimum
//	ErrNilConstructor - nil Constructor passed to Build
//	ErrNeedNodeFunc   - WithNodeFunc was not supplied
//	ErrNeedLabelFunc  - WithLabelFunc was not supplied
//
// Example:
//
//	g, err := builder.Build(
//	    nil, // default core options: directed
//	    []builder.Option[string, string]{
//	        builder.WithNodeFunc[string, string](func(i int) string { return fmt.Sprintf("v%d", i) }),
//	        builder.WithLabelFunc[string, string](func(u, v string) string { return u + "->" + v }),
//	    },
//	    builder.Path[string, string](4),
//	)
package builder
