// SPDX-License-Identifier: MIT
//
// File: tensor.go
// Role: Graph record type, converter options and FromGraph.
// Determinism:
//   - Index assignment follows core.Graph.Nodes() (ascending IDs).
//   - EdgeIndex columns are sorted by (source, target).

package tensor

import (
	"errors"
	"sort"

	"github.com/katalvlaran/kclique/core"
)

// ErrMalformed indicates a record whose edge index is inconsistent with
// NumNodes or with undirected simple-graph semantics.
var ErrMalformed = errors.New("tensor: malformed graph record")

// Labels used for the two dataset collections.
const (
	LabelWithoutClique = 0
	LabelWithClique    = 1
)

// Graph is the tensor form of an undirected simple graph.
type Graph struct {
	NumNodes  int         `json:"num_nodes"`
	EdgeIndex [2][]int64  `json:"edge_index"`
	X         [][]float64 `json:"x,omitempty"`
	Label     int         `json:"y"`
}

// Option customizes FromGraph.
type Option func(*options)

type options struct {
	label          int
	degreeFeatures bool
}

// WithLabel sets the record's class label.
func WithLabel(y int) Option {
	return func(o *options) { o.label = y }
}

// WithDegreeFeature fills X with a single feature per node: its degree.
func WithDegreeFeature() Option {
	return func(o *options) { o.degreeFeatures = true }
}

// FromGraph converts g into a record. g is not mutated.
//
// Complexity: O(V log V + E log E).
func FromGraph(g *core.Graph, opts ...Option) *Graph {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	nodes := g.Nodes()
	index := make(map[int]int64, len(nodes))
	for i, id := range nodes {
		index[id] = int64(i)
	}

	edges := g.Edges()
	type pair struct{ s, t int64 }
	pairs := make([]pair, 0, 2*len(edges))
	for _, e := range edges {
		u, v := index[e.U], index[e.V]
		pairs = append(pairs, pair{u, v}, pair{v, u})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].s != pairs[j].s {
			return pairs[i].s < pairs[j].s
		}
		return pairs[i].t < pairs[j].t
	})

	out := &Graph{NumNodes: len(nodes), Label: o.label}
	out.EdgeIndex[0] = make([]int64, len(pairs))
	out.EdgeIndex[1] = make([]int64, len(pairs))
	for i, p := range pairs {
		out.EdgeIndex[0][i] = p.s
		out.EdgeIndex[1][i] = p.t
	}

	if o.degreeFeatures {
		out.X = make([][]float64, len(nodes))
		for i := range out.X {
			out.X[i] = []float64{0}
		}
		for _, s := range out.EdgeIndex[0] {
			out.X[s][0]++
		}
	}

	return out
}

// NumEdges returns the number of undirected edges (half the COO columns).
func (t *Graph) NumEdges() int {
	return len(t.EdgeIndex[0]) / 2
}
