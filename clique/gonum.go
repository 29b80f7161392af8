// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: Adapter from core.Graph to gonum's graph/simple model and the eager
//       Gonum enumerator built on graph/topo.

package clique

import (
	"slices"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/kclique/core"
)

// ToGonum copies g into a new gonum simple.UndirectedGraph with the same node
// IDs and edges. Isolated nodes are preserved.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, id := range g.Nodes() {
		ug.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	return ug
}

// Gonum enumerates maximal cliques with topo.BronKerbosch. All cliques are
// computed up front, then visited in lexicographic order of their sorted
// node lists.
type Gonum struct{}

// Maximal implements Enumerator.
func (Gonum) Maximal(g *core.Graph, visit func(clique []int) bool) {
	raw := topo.BronKerbosch(ToGonum(g))

	cliques := make([][]int, 0, len(raw))
	for _, nodes := range raw {
		c := make([]int, len(nodes))
		for i, n := range nodes {
			c[i] = int(n.ID())
		}
		sort.Ints(c)
		cliques = append(cliques, c)
	}
	sort.Slice(cliques, func(i, j int) bool {
		return slices.Compare(cliques[i], cliques[j]) < 0
	})

	for _, c := range cliques {
		if !visit(c) {
			return
		}
	}
}
