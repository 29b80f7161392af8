// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Non-mutating copies of a graph (full clone and induced subgraph).
// Concurrency:
//   - Read lock on the source; the result is a fresh, unshared instance.

package core

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		adjacency: make(map[int]map[int]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for u, bucket := range g.adjacency {
		cp := make(map[int]struct{}, len(bucket))
		for v := range bucket {
			cp[v] = struct{}{}
		}
		out.adjacency[u] = cp
	}

	return out
}

// InducedSubgraph returns G[keep]: the nodes of g present in keep and every
// edge with both endpoints kept. IDs in keep that are not nodes of g are
// ignored. g is not mutated.
//
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(keep map[int]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for u := range g.adjacency {
		if keep[u] {
			out.adjacency[u] = make(map[int]struct{})
		}
	}
	for u, bucket := range g.adjacency {
		if !keep[u] {
			continue
		}
		for v := range bucket {
			if !keep[v] {
				continue
			}
			out.adjacency[u][v] = struct{}{}
			if u < v {
				out.edgeCount++
			}
		}
	}

	return out
}
