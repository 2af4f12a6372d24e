// Package builder: Star(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewNodes); n counts the center plus leaves.
//   - Node index 0 is the center.
//   - Emits edges 0 -> i for i = 1..n-1 in stable increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starCenter   = 0
)

// Star returns a Constructor that builds an n-node star S_n with node
// index 0 as the hub.
// Complexity: O(n).
func Star[N, L comparable](n int) Constructor[N, L] {
	return func(g *core.Graph[N, L], cfg config[N, L]) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		if err := addNodes(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodStar, starCenter, i); err != nil {
				return err
			}
		}

		return nil
	}
}
