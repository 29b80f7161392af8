// SPDX-License-Identifier: MIT

// Package builder provides functional-options style constructors that populate
// a core.Graph with a topology: the Erdős–Rényi G(n,p) random graph that seeds
// every dataset item, and the complete graph K_n used for fixtures.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds the RNG; there is no hidden global state.
//   - Constructors (Constructor closures applied by BuildGraph):
//     – RandomSparse(n, p): include each of C(n,2) pairs independently with prob p.
//     – Complete(n):        K_n.
//   - ErdosRenyi(n, p, rng): one-call convenience used by the dataset pipeline.
//
// Guarantees:
//
//   - Determinism: same seed, options and constructor order ⇒ identical graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation errors are sentinels wrapped with method context;
//     constructors never panic.
package builder
