// SPDX-License-Identifier: MIT

// Package clique plants, finds and removes cliques in a core.Graph.
//
// It covers the two label-defining stages of the dataset pipeline:
//
//   - Inject(g, k, rng) forces K_{k+1} onto k+1 distinct nodes chosen
//     uniformly at random. Requires NodeCount ≥ k+1, else ErrInvalidParameter
//     and g is left untouched.
//   - Remove(g, k, enum) is the best-effort filter: it walks maximal cliques
//     lazily and deletes the nodes of the FIRST one whose size is exactly k+1.
//     Subsets of larger maximal cliques are never considered and only one
//     match is removed, so the result is not guaranteed clique-free.
//   - RemoveAll(g, k, enum) is the exhaustive variant: it deletes maximal
//     cliques of size ≥ k+1 until none is left, which guarantees that the
//     result has no (k+1)-clique. Callers pick one via RemovalMode.
//
// Maximal-clique enumeration is pluggable through Enumerator:
//
//	BronKerbosch{} – lazy Bron–Kerbosch with Tomita pivoting; stops as soon as
//	                 the visitor returns false.
//	Gonum{}        – gonum.org/v1/gonum/graph/topo.BronKerbosch over a
//	                 graph/simple adapter; enumerates eagerly, then visits in
//	                 lexicographic order.
//
// Both report cliques as ascending node-ID slices and treat isolated nodes as
// singleton maximal cliques.
package clique
