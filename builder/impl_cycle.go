// Package builder: Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewNodes).
//   - Adds nodes in ascending index order 0..n-1.
//   - Emits edges i -> (i+1) mod n for i = 0..n-1 in stable order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
// Complexity: O(n).
func Cycle[N, L comparable](n int) Constructor[N, L] {
	return func(g *core.Graph[N, L], cfg config[N, L]) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		if err := addNodes(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
