// SPDX-License-Identifier: MIT

// Package dataset assembles and persists the k-clique classification dataset.
//
// A run produces two collections of equal size:
//
//	with-clique     G(n,p) graphs with a planted K_{k+1} (label 1)
//	without-clique  G(n,p) graphs after clique removal  (label 0)
//
// Generation is synchronous and driven by one *rand.Rand seeded from Params,
// so a (Params, Seed) pair always yields the same dataset. The first failing
// item aborts the run and is reported as *ItemError; Generate never returns a
// partially populated Dataset.
//
// Persistence:
//
//	WriteFiles   two collection files + manifest.json (gob or JSON codec)
//	SQLiteStore  both collections of a run in a single transaction
//	RedisSink    both collections of a run in one MULTI/EXEC block
//
// WriteFiles replaces each file atomically, but there is no transaction
// spanning the two collection files: a crash between them leaves a
// mismatched pair on disk. The manifest is written last and can be used to
// detect this.
package dataset
