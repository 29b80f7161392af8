// SPDX-License-Identifier: MIT
//
// File: reconstruct.go
// Role: Validation and reconstruction of graph structure from a record.

package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kclique/core"
)

// Validate checks that t encodes an undirected simple graph:
// equal-length rows, indices in [0,NumNodes), no self-loops, no duplicate
// columns, every (s,t) mirrored by (t,s), and X (if present) has one row per
// node.
//
// Complexity: O(E').
func (t *Graph) Validate() error {
	if t.NumNodes < 0 {
		return fmt.Errorf("num_nodes=%d < 0: %w", t.NumNodes, ErrMalformed)
	}
	src, dst := t.EdgeIndex[0], t.EdgeIndex[1]
	if len(src) != len(dst) {
		return fmt.Errorf("edge_index rows differ (%d vs %d): %w", len(src), len(dst), ErrMalformed)
	}
	if t.X != nil && len(t.X) != t.NumNodes {
		return fmt.Errorf("x has %d rows for %d nodes: %w", len(t.X), t.NumNodes, ErrMalformed)
	}

	n := int64(t.NumNodes)
	seen := make(map[[2]int64]struct{}, len(src))
	for i := range src {
		s, d := src[i], dst[i]
		if s < 0 || s >= n || d < 0 || d >= n {
			return fmt.Errorf("column %d (%d,%d) out of range [0,%d): %w", i, s, d, n, ErrMalformed)
		}
		if s == d {
			return fmt.Errorf("column %d is a self-loop on %d: %w", i, s, ErrMalformed)
		}
		key := [2]int64{s, d}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("column %d duplicates (%d,%d): %w", i, s, d, ErrMalformed)
		}
		seen[key] = struct{}{}
	}
	for key := range seen {
		if _, ok := seen[[2]int64{key[1], key[0]}]; !ok {
			return fmt.Errorf("(%d,%d) has no reverse column: %w", key[0], key[1], ErrMalformed)
		}
	}

	return nil
}

// EdgeSet returns the undirected edges of t in canonical (U<V) form.
func (t *Graph) EdgeSet() map[core.Edge]struct{} {
	out := make(map[core.Edge]struct{}, t.NumEdges())
	for i := range t.EdgeIndex[0] {
		out[core.NewEdge(int(t.EdgeIndex[0][i]), int(t.EdgeIndex[1][i]))] = struct{}{}
	}

	return out
}

// Adjacency returns the NumNodes×NumNodes 0/1 adjacency matrix rebuilt from
// EdgeIndex. A record with no nodes yields an empty (zero-value) matrix.
// Out-of-range columns are skipped; call Validate first for strict checking.
func (t *Graph) Adjacency() *mat.Dense {
	if t.NumNodes <= 0 {
		return &mat.Dense{}
	}

	n := t.NumNodes
	a := mat.NewDense(n, n, nil)
	for i := range t.EdgeIndex[0] {
		s, d := int(t.EdgeIndex[0][i]), int(t.EdgeIndex[1][i])
		if s < 0 || s >= n || d < 0 || d >= n {
			continue
		}
		a.Set(s, d, 1)
	}

	return a
}

// ToGraph rebuilds a core.Graph over nodes 0..NumNodes-1.
//
// Errors:
//   - ErrMalformed (wrapped) if Validate fails.
func (t *Graph) ToGraph() (*core.Graph, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraphWithNodes(t.NumNodes)
	for i := range t.EdgeIndex[0] {
		if err := g.AddEdge(int(t.EdgeIndex[0][i]), int(t.EdgeIndex[1][i])); err != nil {
			return nil, fmt.Errorf("ToGraph: %w", err)
		}
	}

	return g, nil
}

// SameStructure reports whether a and b have equal node counts and equal
// undirected edge sets. Labels and features are ignored.
func SameStructure(a, b *Graph) bool {
	if a.NumNodes != b.NumNodes || a.NumEdges() != b.NumEdges() {
		return false
	}
	eb := b.EdgeSet()
	for e := range a.EdgeSet() {
		if _, ok := eb[e]; !ok {
			return false
		}
	}

	return len(eb) == len(a.EdgeSet())
}
