// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards nodes, adjacency and edgeCount together.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeID indicates a negative node identifier.
	ErrInvalidNodeID = errors.New("core: invalid node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected edge in canonical form: U < V.
type Edge struct {
	U int
	V int
}

// NewEdge returns the canonical (U<V) form of the unordered pair {a,b}.
// It does not validate a != b; AddEdge does.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Graph is an undirected simple graph over integer node IDs.
//
// adjacency[u][v] exists iff {u,v} ∈ E; it is always mirrored, so
// len(adjacency[u]) is the degree of u. Every node owns a (possibly empty)
// bucket, which makes node membership a single map lookup.
type Graph struct {
	mu sync.RWMutex

	adjacency map[int]map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[int]map[int]struct{})}
}

// NewGraphWithNodes creates a Graph holding nodes 0..n-1 and no edges.
// n ≤ 0 yields an empty graph.
// Complexity: O(n)
func NewGraphWithNodes(n int) *Graph {
	g := &Graph{adjacency: make(map[int]map[int]struct{}, max(n, 0))}
	for i := 0; i < n; i++ {
		g.adjacency[i] = make(map[int]struct{})
	}

	return g
}
