//go:build graphdebug

// Debug builds re-verify the full representation invariant after every
// mutation. The pass is O(V + E) per call, so it is compiled in only
// under the graphdebug tag and is not part of the public contract.

package core

// checkRep panics if the representation invariant is violated:
// every stored edge sits in the bucket of its own parent, and every
// referenced child is a registered node (closure). Caller holds g.mu.
func (g *Graph[N, L]) checkRep() {
	for node, bucket := range g.nodes {
		for e := range bucket {
			if e.parent != node {
				panic("core: rep invariant: edge stored under wrong parent")
			}
			if _, ok := g.nodes[e.child]; !ok {
				panic("core: rep invariant: edge child is not a registered node")
			}
		}
	}
}
