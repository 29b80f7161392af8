// SPDX-License-Identifier: MIT
//
// File: enumerate.go
// Role: Enumerator contract and the lazy Bron–Kerbosch implementation.
// Determinism:
//   - BronKerbosch visits cliques in a fixed order for a fixed graph: the
//     candidate set is kept in ascending node order and pivot ties resolve
//     to the smallest ID.

package clique

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kclique/core"
)

// Enumerator lists the maximal cliques of a graph.
//
// Maximal calls visit once per maximal clique, passing its nodes sorted
// ascending, until visit returns false or every clique has been reported.
// The slice is owned by the visitor. Order is implementation-defined.
// An empty graph has no maximal cliques.
type Enumerator interface {
	Maximal(g *core.Graph, visit func(clique []int) bool)
}

// Enumerator names accepted by ParseEnumerator.
const (
	EnumeratorBronKerbosch = "bron-kerbosch"
	EnumeratorGonum        = "gonum"
)

// ParseEnumerator maps a configuration name to an Enumerator.
// The empty string selects BronKerbosch.
func ParseEnumerator(name string) (Enumerator, error) {
	switch name {
	case "", EnumeratorBronKerbosch:
		return BronKerbosch{}, nil
	case EnumeratorGonum:
		return Gonum{}, nil
	default:
		return nil, fmt.Errorf("enumerator %q: %w", name, ErrUnknownMode)
	}
}

// BronKerbosch is a lazy maximal-clique enumerator (Bron–Kerbosch with
// Tomita pivot selection). It snapshots the adjacency of g before starting,
// so the visitor may mutate g; later cliques still describe the snapshot.
//
// Complexity: O(3^{n/3}) worst case; stopping early costs only the work done
// up to that point.
type BronKerbosch struct{}

// Maximal implements Enumerator.
func (BronKerbosch) Maximal(g *core.Graph, visit func(clique []int) bool) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return
	}

	adj := make(map[int]map[int]struct{}, len(nodes))
	for _, u := range nodes {
		nb, err := g.Neighbors(u)
		if err != nil {
			// node vanished between Nodes() and Neighbors(): concurrent writer
			continue
		}
		set := make(map[int]struct{}, len(nb))
		for _, v := range nb {
			set[v] = struct{}{}
		}
		adj[u] = set
	}

	bk := bronKerbosch{adj: adj, visit: visit}
	bk.expand(nil, nodes, nil)
}

type bronKerbosch struct {
	adj   map[int]map[int]struct{}
	visit func([]int) bool
}

// expand reports maximal cliques extending r with candidates p and excluded x.
// It returns false once the visitor asked to stop.
func (bk *bronKerbosch) expand(r, p, x []int) bool {
	if len(p) == 0 {
		if len(x) == 0 {
			out := append([]int(nil), r...)
			sort.Ints(out)
			return bk.visit(out)
		}
		return true
	}

	pivotNb := bk.adj[bk.pivot(p, x)]

	// snapshot the branch set: p shrinks while we iterate
	branch := make([]int, 0, len(p))
	for _, v := range p {
		if _, ok := pivotNb[v]; !ok {
			branch = append(branch, v)
		}
	}

	for _, v := range branch {
		nv := bk.adj[v]
		if !bk.expand(append(r[:len(r):len(r)], v), intersect(p, nv), intersect(x, nv)) {
			return false
		}
		p = without(p, v)
		x = append(x[:len(x):len(x)], v)
	}

	return true
}

// pivot returns the node of p ∪ x with the most neighbors in p.
func (bk *bronKerbosch) pivot(p, x []int) int {
	best, bestCount := p[0], -1
	for _, set := range [][]int{p, x} {
		for _, u := range set {
			nu := bk.adj[u]
			c := 0
			for _, v := range p {
				if _, ok := nu[v]; ok {
					c++
				}
			}
			if c > bestCount || (c == bestCount && u < best) {
				best, bestCount = u, c
			}
		}
	}

	return best
}

// intersect returns the elements of s present in set, preserving s order.
func intersect(s []int, set map[int]struct{}) []int {
	out := make([]int, 0, min(len(s), len(set)))
	for _, v := range s {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}

	return out
}

// without returns s minus v as a fresh slice.
func without(s []int, v int) []int {
	out := make([]int, 0, len(s))
	for _, u := range s {
		if u != v {
			out = append(out, u)
		}
	}

	return out
}
