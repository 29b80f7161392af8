// Package kclique synthesizes labeled graph datasets for the binary task
// "does this graph contain a clique of k+1 nodes?".
//
// 🚀 What is kclique?
//
//	A small, deterministic pipeline that brings together:
//		• Random graphs: Erdős–Rényi G(n,p) with an explicit, seeded RNG
//		• Clique planting: K_{k+1} forced onto uniformly chosen nodes
//		• Clique removal: best-effort (first exact match) or exhaustive
//		• Tensor records: node count + COO edge index, gonum adjacency views
//		• Persistence: gob/JSON files, SQLite, Redis, Prometheus textfile
//
// Packages:
//
//	core/    — thread-safe undirected simple graph over int IDs
//	builder/ — BuildGraph, RandomSparse (G(n,p)), Complete (K_n)
//	clique/  — Inject, Remove, RemoveAll, maximal-clique Enumerators
//	tensor/  — FromGraph, Validate, Adjacency, ToGraph
//	dataset/ — Params, Generator, codecs, WriteFiles, SQLiteStore, RedisSink
//	config/  — Viper settings (KCLIQUE_* env) and the zerolog logger
//	metrics/ — Prometheus counters for a run
//
// Quick start:
//
//	go run ./cmd/kcliquegen -out ./data -seed 7
//
// writes graphs_with_k_clique.gob, graphs_without_k_clique.gob and
// manifest.json with 5000 graphs per collection (n=20, k=4, p=0.3).
package kclique
