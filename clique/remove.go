// SPDX-License-Identifier: MIT
//
// File: remove.go
// Role: Clique removal, best-effort (first exact match) and exhaustive.

package clique

import (
	"fmt"

	"github.com/katalvlaran/kclique/core"
)

// RemovalMode selects how the without-clique collection is filtered.
type RemovalMode string

const (
	// RemoveFirst deletes the first maximal clique of size exactly k+1.
	RemoveFirst RemovalMode = "first"
	// RemoveExhaustive deletes maximal cliques of size ≥ k+1 until none remain.
	RemoveExhaustive RemovalMode = "exhaustive"
)

// ParseRemovalMode maps a configuration value to a RemovalMode.
// The empty string selects RemoveFirst.
func ParseRemovalMode(s string) (RemovalMode, error) {
	switch RemovalMode(s) {
	case "", RemoveFirst:
		return RemoveFirst, nil
	case RemoveExhaustive:
		return RemoveExhaustive, nil
	default:
		return "", fmt.Errorf("removal mode %q: %w", s, ErrUnknownMode)
	}
}

// Apply runs the removal strategy m on g and returns the removed cliques
// (empty when nothing matched).
func (m RemovalMode) Apply(g *core.Graph, k int, enum Enumerator) ([][]int, error) {
	switch m {
	case RemoveFirst, "":
		removed, err := Remove(g, k, enum)
		if err != nil || removed == nil {
			return nil, err
		}
		return [][]int{removed}, nil
	case RemoveExhaustive:
		return RemoveAll(g, k, enum)
	default:
		return nil, fmt.Errorf("removal mode %q: %w", m, ErrUnknownMode)
	}
}

// Remove scans the maximal cliques of g (lazily, in enum's order) and deletes
// the nodes of the first one whose size is exactly k+1, together with their
// incident edges. It returns the removed nodes, or nil if no maximal clique
// had that size; g is then unchanged.
//
// Only maximal cliques are considered: a (k+1)-clique inside a larger
// maximal clique is never removed, and further matches are left in place.
//
// Errors:
//   - ErrInvalidParameter: k < 0.
func Remove(g *core.Graph, k int, enum Enumerator) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("Remove: k=%d < 0: %w", k, ErrInvalidParameter)
	}
	if enum == nil {
		enum = BronKerbosch{}
	}

	size := k + 1
	var found []int
	enum.Maximal(g, func(c []int) bool {
		if len(c) == size {
			found = c
			return false
		}
		return true
	})
	if found == nil {
		return nil, nil
	}

	if err := g.RemoveNodes(found...); err != nil {
		return nil, fmt.Errorf("Remove: %w", err)
	}

	return found, nil
}

// RemoveAll repeatedly deletes the nodes of a maximal clique of size ≥ k+1
// until no such clique exists. Afterwards g contains no clique of size k+1.
// Each round removes at least k+1 nodes, so it terminates after at most
// V/(k+1) rounds.
//
// Errors:
//   - ErrInvalidParameter: k < 0.
func RemoveAll(g *core.Graph, k int, enum Enumerator) ([][]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("RemoveAll: k=%d < 0: %w", k, ErrInvalidParameter)
	}
	if enum == nil {
		enum = BronKerbosch{}
	}

	size := k + 1
	var removed [][]int
	for {
		var found []int
		enum.Maximal(g, func(c []int) bool {
			if len(c) >= size {
				found = c
				return false
			}
			return true
		})
		if found == nil {
			return removed, nil
		}
		if err := g.RemoveNodes(found...); err != nil {
			return removed, fmt.Errorf("RemoveAll: %w", err)
		}
		removed = append(removed, found)
	}
}

// MaxCliqueSize returns the clique number ω(g); 0 for an empty graph.
func MaxCliqueSize(g *core.Graph, enum Enumerator) int {
	if enum == nil {
		enum = BronKerbosch{}
	}

	best := 0
	enum.Maximal(g, func(c []int) bool {
		best = max(best, len(c))
		return true
	})

	return best
}

// HasCliqueOfSize reports whether g contains a clique with at least s nodes.
// It stops at the first maximal clique that is large enough.
func HasCliqueOfSize(g *core.Graph, s int, enum Enumerator) bool {
	if s <= 0 {
		return true
	}
	if enum == nil {
		enum = BronKerbosch{}
	}

	found := false
	enum.Maximal(g, func(c []int) bool {
		found = len(c) >= s
		return !found
	})

	return found
}
