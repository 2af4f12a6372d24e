// Package builder: Path(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewNodes).
//   - Adds nodes in ascending index order 0..n-1.
//   - Emits edges (i-1) -> i for i = 1..n-1 in stable increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
// Complexity: O(n).
func Path[N, L comparable](n int) Constructor[N, L] {
	return func(g *core.Graph[N, L], cfg config[N, L]) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		if err := addNodes(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
