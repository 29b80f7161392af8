// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount
//       plus the IsClique predicate used by the clique package.
// Determinism:
//   - Edges() returns canonical (U<V) edges sorted by (U,V) asc.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
//
// Behavior highlights:
//   - Idempotent: adding an existing edge is a no-op (no parallel edges).
//   - Self-loops are rejected.
//
// Errors:
//   - ErrInvalidNodeID: if u < 0 or v < 0.
//   - ErrLoopNotAllowed: if u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrInvalidNodeID)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(u)
	g.ensureNode(v)
	if _, exists := g.adjacency[u][v]; exists {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether {u,v} ∈ E. Order of arguments is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// RemoveEdge deletes {u,v}; endpoints stay in the graph.
//
// Errors:
//   - ErrEdgeNotFound: if the edge is absent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// Edges returns every edge once, in canonical form, sorted by (U,V).
// Complexity: O(E log E) time, O(E) space.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, bucket := range g.adjacency {
		for v := range bucket {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// IsClique reports whether ids are pairwise adjacent nodes of g.
// Duplicate IDs are treated as one node; an empty set and a single existing
// node are trivially cliques.
//
// Complexity: O(s²) for s = len(ids).
func (g *Graph) IsClique(ids ...int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, u := range ids {
		if _, ok := g.adjacency[u]; !ok {
			return false
		}
		for _, v := range ids[i+1:] {
			if u == v {
				continue
			}
			if _, ok := g.adjacency[u][v]; !ok {
				return false
			}
		}
	}

	return true
}
