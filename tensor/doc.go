// SPDX-License-Identifier: MIT

// Package tensor converts a core.Graph into the index-array record used as
// graph neural network input, and back.
//
// A Graph record holds:
//
//	NumNodes  – node count; nodes are relabelled to 0..NumNodes-1 in
//	            ascending order of their original IDs.
//	EdgeIndex – COO edge index [2][E'] (sources row, targets row); every
//	            undirected edge appears twice, once per direction, sorted by
//	            (source, target).
//	X         – optional per-node feature rows (WithDegreeFeature).
//	Label     – class label: 1 with-clique, 0 without.
//
// FromGraph is pure and deterministic: the same graph structure always yields
// the same record. Adjacency and ToGraph reconstruct the structure, which is
// how structure preservation is checked.
package tensor
