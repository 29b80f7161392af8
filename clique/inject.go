// SPDX-License-Identifier: MIT

package clique

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/kclique/core"
)

// Inject plants K_{k+1} into g: it picks k+1 distinct nodes uniformly at
// random from g's node set and adds every missing edge among them. Existing
// edges are kept, so the planted clique may be part of a larger one.
// It returns the chosen nodes in ascending order.
//
// Errors (g is not mutated in any of these cases):
//   - ErrInvalidParameter: k < 0, rng == nil, or g has fewer than k+1 nodes.
//
// Complexity: O(V log V + k²).
func Inject(g *core.Graph, k int, rng *rand.Rand) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("Inject: k=%d < 0: %w", k, ErrInvalidParameter)
	}
	if rng == nil {
		return nil, fmt.Errorf("Inject: rng is nil: %w", ErrInvalidParameter)
	}

	size := k + 1
	nodes := g.Nodes()
	if len(nodes) < size {
		return nil, fmt.Errorf("Inject: graph has %d nodes, clique of order k=%d needs at least %d: %w",
			len(nodes), k, size, ErrInvalidParameter)
	}

	// partial Fisher–Yates: the first size slots become a uniform sample
	for i := 0; i < size; i++ {
		j := i + rng.Intn(len(nodes)-i)
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	chosen := nodes[:size:size]
	sort.Ints(chosen)

	for i, u := range chosen {
		for _, v := range chosen[i+1:] {
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("Inject: AddEdge(%d,%d): %w", u, v, err)
			}
		}
	}

	return chosen, nil
}
