// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory undirected simple graph
// used by every stage of the k-clique dataset pipeline.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes are non-negative integers (the generator emits 0..n-1).
//   - Edges are undirected and unweighted; {u,v} and {v,u} are the same edge.
//   - Self-loops are rejected (ErrLoopNotAllowed).
//   - Duplicate edges are idempotent no-ops, so the edge set never holds
//     parallel entries.
//   - Adjacency is a nested map adjacency[u][v] = struct{}{} mirrored for
//     both endpoints, giving O(1) insertion, membership and deletion.
//   - A single sync.RWMutex guards nodes and adjacency; queries take the
//     read lock, mutations the write lock.
//
// Determinism:
//
//	Nodes(), Neighbors() and Edges() always return sorted results, so
//	downstream code (clique enumeration, tensor conversion) is reproducible
//	for a fixed seed regardless of Go's map iteration order.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int) error            // O(1)
//	HasNode(id int) bool             // O(1)
//	RemoveNode(id int) error         // O(deg(v))
//	RemoveNodes(ids ...int) error    // O(Σ deg)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error          // O(1)
//	HasEdge(u, v int) bool           // O(1)
//	RemoveEdge(u, v int) error       // O(1)
//
//	// Query
//	Nodes() []int                    // O(V log V)
//	Neighbors(id int) ([]int, error) // O(d log d)
//	Edges() []Edge                   // O(E log E)
//	Degree(id int) (int, error)      // O(1)
//	NodeCount(), EdgeCount()         // O(1)
//	IsClique(ids ...int) bool        // O(s²)
//
//	// Copies
//	Clone() *Graph                   // O(V+E)
//	InducedSubgraph(keep) *Graph     // O(V+E)
//
// Errors:
//
//	ErrInvalidNodeID  – negative node ID
//	ErrNodeNotFound   – missing node
//	ErrEdgeNotFound   – missing edge
//	ErrLoopNotAllowed – self-loop attempt
package core
