// SPDX-License-Identifier: MIT
package clique_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kclique/builder"
	"github.com/katalvlaran/kclique/clique"
	"github.com/katalvlaran/kclique/core"
)

// enumerators lists every Enumerator so behavioral tests run against both.
var enumerators = map[string]clique.Enumerator{
	clique.EnumeratorBronKerbosch: clique.BronKerbosch{},
	clique.EnumeratorGonum:        clique.Gonum{},
}

// graphFromEdges builds a graph with nodes 0..n-1 and the given edges.
func graphFromEdges(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraphWithNodes(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// collect drains an enumerator into a set keyed by the clique's printed form.
func collect(g *core.Graph, enum clique.Enumerator) map[string]bool {
	out := make(map[string]bool)
	enum.Maximal(g, func(c []int) bool {
		out[fmt.Sprint(c)] = true
		return true
	})

	return out
}

func TestInject_PlantsClique(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for n := 1; n <= 12; n++ {
		for k := 0; k < n; k++ {
			g, err := builder.ErdosRenyi(n, 0.3, rng)
			require.NoError(t, err)
			nodesBefore := g.NodeCount()

			chosen, err := clique.Inject(g, k, rng)
			require.NoError(t, err, "n=%d k=%d", n, k)
			require.Len(t, chosen, k+1)
			assert.True(t, g.IsClique(chosen...), "n=%d k=%d chosen=%v", n, k, chosen)
			assert.True(t, clique.HasCliqueOfSize(g, k+1, nil))
			assert.Equal(t, nodesBefore, g.NodeCount(), "injection never adds nodes")

			seen := make(map[int]bool)
			for _, v := range chosen {
				assert.False(t, seen[v], "duplicate node %d", v)
				assert.True(t, g.HasNode(v))
				seen[v] = true
			}
		}
	}
}

func TestInject_TooFewNodes(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	g, err := builder.ErdosRenyi(2, 0.3, rng)
	require.NoError(t, err)
	before := g.Edges()

	chosen, err := clique.Inject(g, 4, rng)
	require.ErrorIs(t, err, clique.ErrInvalidParameter)
	assert.Nil(t, chosen)
	assert.Equal(t, before, g.Edges(), "failed injection must not mutate the graph")
	assert.Equal(t, 2, g.NodeCount())
}

func TestInject_InvalidArguments(t *testing.T) {
	t.Parallel()

	g := core.NewGraphWithNodes(5)
	_, err := clique.Inject(g, -1, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, clique.ErrInvalidParameter)

	_, err = clique.Inject(g, 2, nil)
	require.ErrorIs(t, err, clique.ErrInvalidParameter)
	assert.Zero(t, g.EdgeCount())
}

func TestInject_UniformSelection(t *testing.T) {
	t.Parallel()

	// 6 nodes, choose 3: every node should be picked about half the time.
	const rounds = 3000
	rng := rand.New(rand.NewSource(77))
	hits := make([]int, 6)
	for i := 0; i < rounds; i++ {
		chosen, err := clique.Inject(core.NewGraphWithNodes(6), 2, rng)
		require.NoError(t, err)
		for _, v := range chosen {
			hits[v]++
		}
	}
	for v, h := range hits {
		assert.InDelta(t, 0.5, float64(h)/rounds, 0.05, "node %d", v)
	}
}

func TestEnumerators_AgreeOnRandomGraphs(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2025))
	for i := 0; i < 60; i++ {
		n := 1 + rng.Intn(18)
		p := []float64{0.1, 0.3, 0.6, 0.9}[i%4]
		g, err := builder.ErdosRenyi(n, p, rng)
		require.NoError(t, err)

		lazy := collect(g, clique.BronKerbosch{})
		eager := collect(g, clique.Gonum{})
		require.Equal(t, eager, lazy, "graph %d: n=%d p=%.1f edges=%v", i, n, p, g.Edges())
	}
}

func TestEnumerators_Basics(t *testing.T) {
	t.Parallel()

	for name, enum := range enumerators {
		enum := enum
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Empty(t, collect(core.NewGraph(), enum), "empty graph has no cliques")

			// triangle 0-1-2, pendant 2-3, isolated 4
			g := graphFromEdges(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{2, 3})
			assert.Equal(t, map[string]bool{"[0 1 2]": true, "[2 3]": true, "[4]": true}, collect(g, enum))

			// early stop after the first clique
			calls := 0
			enum.Maximal(g, func([]int) bool {
				calls++
				return false
			})
			assert.Equal(t, 1, calls)
		})
	}
}

func TestRemove_FirstExactMatch(t *testing.T) {
	t.Parallel()

	for name, enum := range enumerators {
		enum := enum
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// two disjoint triangles: only one is removed
			g := graphFromEdges(t, 6,
				[2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2},
				[2]int{3, 4}, [2]int{4, 5}, [2]int{3, 5})

			removed, err := clique.Remove(g, 2, enum)
			require.NoError(t, err)
			require.Len(t, removed, 3)
			assert.Equal(t, 3, g.NodeCount())
			assert.Equal(t, 3, g.EdgeCount())
			assert.True(t, clique.HasCliqueOfSize(g, 3, enum), "second triangle survives")
			for _, v := range removed {
				assert.False(t, g.HasNode(v))
			}
		})
	}
}

func TestRemove_IgnoresSubsetsOfLargerCliques(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)

	removed, err := clique.Remove(g, 2, nil)
	require.NoError(t, err)
	assert.Nil(t, removed)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
}

func TestRemove_NoMatchLeavesGraphUnchanged(t *testing.T) {
	t.Parallel()

	g := graphFromEdges(t, 4, [2]int{0, 1}, [2]int{2, 3})
	removed, err := clique.Remove(g, 2, nil)
	require.NoError(t, err)
	assert.Nil(t, removed)
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}}, g.Edges())

	_, err = clique.Remove(g, -1, nil)
	require.ErrorIs(t, err, clique.ErrInvalidParameter)
}

func TestRemove_NeverGrows(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		g, err := builder.ErdosRenyi(12, 0.4, rng)
		require.NoError(t, err)
		nodes, edges := g.NodeCount(), g.EdgeCount()

		_, err = clique.Remove(g, 1+i%4, clique.BronKerbosch{})
		require.NoError(t, err)
		assert.LessOrEqual(t, g.NodeCount(), nodes)
		assert.LessOrEqual(t, g.EdgeCount(), edges)
	}
}

func TestRemoveAll_GuaranteesCliqueFree(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 50; i++ {
		g, err := builder.ErdosRenyi(15, 0.5, rng)
		require.NoError(t, err)

		k := 2 + i%3
		removed, err := clique.RemoveAll(g, k, clique.Gonum{})
		require.NoError(t, err)
		assert.False(t, clique.HasCliqueOfSize(g, k+1, nil), "k=%d edges=%v", k, g.Edges())
		for _, c := range removed {
			assert.GreaterOrEqual(t, len(c), k+1)
		}
	}
}

func TestRemovalMode(t *testing.T) {
	t.Parallel()

	m, err := clique.ParseRemovalMode("")
	require.NoError(t, err)
	assert.Equal(t, clique.RemoveFirst, m)

	m, err = clique.ParseRemovalMode("exhaustive")
	require.NoError(t, err)
	assert.Equal(t, clique.RemoveExhaustive, m)

	_, err = clique.ParseRemovalMode("all")
	require.ErrorIs(t, err, clique.ErrUnknownMode)

	// K4 plus a disjoint triangle, k=2
	newGraph := func() *core.Graph {
		g := graphFromEdges(t, 7, [2]int{4, 5}, [2]int{5, 6}, [2]int{4, 6})
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				require.NoError(t, g.AddEdge(i, j))
			}
		}
		return g
	}

	g := newGraph()
	removed, err := clique.RemoveFirst.Apply(g, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{4, 5, 6}}, removed)
	assert.Equal(t, 4, g.NodeCount())

	g = newGraph()
	removed, err = clique.RemoveExhaustive.Apply(g, 2, nil)
	require.NoError(t, err)
	assert.Len(t, removed, 2)
	assert.Zero(t, g.NodeCount())

	_, err = clique.RemovalMode("bogus").Apply(newGraph(), 2, nil)
	require.ErrorIs(t, err, clique.ErrUnknownMode)
}

func TestParseEnumerator(t *testing.T) {
	t.Parallel()

	e, err := clique.ParseEnumerator("")
	require.NoError(t, err)
	assert.IsType(t, clique.BronKerbosch{}, e)

	e, err = clique.ParseEnumerator("gonum")
	require.NoError(t, err)
	assert.IsType(t, clique.Gonum{}, e)

	_, err = clique.ParseEnumerator("networkx")
	require.ErrorIs(t, err, clique.ErrUnknownMode)
}

func TestMaxCliqueSize(t *testing.T) {
	t.Parallel()

	assert.Zero(t, clique.MaxCliqueSize(core.NewGraph(), nil))
	assert.Equal(t, 1, clique.MaxCliqueSize(core.NewGraphWithNodes(3), nil))

	g, err := builder.BuildGraph(nil, builder.Complete(5))
	require.NoError(t, err)
	for name, enum := range enumerators {
		assert.Equal(t, 5, clique.MaxCliqueSize(g, enum), name)
	}
	assert.True(t, clique.HasCliqueOfSize(g, 0, nil))
	assert.False(t, clique.HasCliqueOfSize(g, 6, nil))
}

func TestToGonum(t *testing.T) {
	t.Parallel()

	g := graphFromEdges(t, 4, [2]int{0, 1}, [2]int{1, 2})
	ug := clique.ToGonum(g)

	assert.Equal(t, 4, ug.Nodes().Len())
	assert.True(t, ug.HasEdgeBetween(0, 1))
	assert.True(t, ug.HasEdgeBetween(2, 1))
	assert.False(t, ug.HasEdgeBetween(0, 2))
	assert.NotNil(t, ug.Node(3), "isolated node is kept")
}
