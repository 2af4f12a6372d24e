// Package builder: Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewNodes); K_1 is a single isolated node.
//   - Adds nodes in ascending index order 0..n-1.
//   - On a directed graph, emits every ordered pair i -> j (i != j);
//     on an undirected graph, emits i -> j for i < j and relies on the
//     core mirror for the reverse direction.
//   - Stable emission order: outer i ascending, inner j ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
// Complexity: O(n^2).
func Complete[N, L comparable](n int) Constructor[N, L] {
	return func(g *core.Graph[N, L], cfg config[N, L]) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		if err := addNodes(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			for j := start; j < n; j++ {
				if j == i {
					continue
				}
				if err := connect(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
