// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and Neighbors() return IDs sorted ascending.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node if missing (idempotent).
//
// Errors:
//   - ErrInvalidNodeID: if id < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return fmt.Errorf("AddNode(%d): %w", id, ErrInvalidNodeID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)

	return nil
}

// HasNode reports whether id is a node of g.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// RemoveNode deletes a node together with all incident edges.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[id]; !ok {
		return fmt.Errorf("RemoveNode(%d): %w", id, ErrNodeNotFound)
	}
	g.removeNodeLocked(id)

	return nil
}

// RemoveNodes deletes every listed node and its incident edges under a single
// lock acquisition. Validation happens first: if any ID is missing, nothing is
// removed and ErrNodeNotFound is returned. Duplicate IDs are tolerated.
//
// Complexity: O(Σ deg(id)).
func (g *Graph) RemoveNodes(ids ...int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		if _, ok := g.adjacency[id]; !ok {
			return fmt.Errorf("RemoveNodes(%d): %w", id, ErrNodeNotFound)
		}
	}
	for _, id := range ids {
		if _, ok := g.adjacency[id]; ok {
			g.removeNodeLocked(id)
		}
	}

	return nil
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	out := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	g.mu.RUnlock()

	sort.Ints(out)

	return out
}

// Neighbors returns the sorted neighbor IDs of id.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	bucket, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]int, 0, len(bucket))
	for nb := range bucket {
		out = append(out, nb)
	}
	g.mu.RUnlock()

	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(bucket), nil
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// ensureNode creates an empty bucket for id. Caller holds mu.
func (g *Graph) ensureNode(id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]struct{})
	}
}

// removeNodeLocked unlinks id from every neighbor and drops its bucket.
// Caller holds mu and has verified presence.
func (g *Graph) removeNodeLocked(id int) {
	for nb := range g.adjacency[id] {
		delete(g.adjacency[nb], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)
}
