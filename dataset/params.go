// SPDX-License-Identifier: MIT
//
// File: params.go
// Role: Run parameters, defaults and validation.

package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kclique/clique"
)

// ErrInvalidParams indicates Params outside their documented domain.
var ErrInvalidParams = errors.New("dataset: invalid parameters")

// Defaults for a full-size run.
const (
	DefaultGraphCount      = 10000
	DefaultNodeCount       = 20
	DefaultCliqueOrder     = 4
	DefaultEdgeProbability = 0.3
)

// Params describes one generation run.
//
// GraphCount is split evenly: GraphCount/2 graphs per collection (an odd
// count drops the remainder). CliqueOrder k targets cliques of k+1 nodes.
type Params struct {
	GraphCount      int                `json:"graph_count"`
	NodeCount       int                `json:"node_count"`
	CliqueOrder     int                `json:"clique_order"`
	EdgeProbability float64            `json:"edge_probability"`
	Seed            int64              `json:"seed"`
	RemovalMode     clique.RemovalMode `json:"removal_mode"`
	Enumerator      string             `json:"enumerator"`
	DegreeFeature   bool               `json:"degree_feature"`
}

// DefaultParams returns the default run parameters with the given seed.
func DefaultParams(seed int64) Params {
	return Params{
		GraphCount:      DefaultGraphCount,
		NodeCount:       DefaultNodeCount,
		CliqueOrder:     DefaultCliqueOrder,
		EdgeProbability: DefaultEdgeProbability,
		Seed:            seed,
		RemovalMode:     clique.RemoveFirst,
		Enumerator:      clique.EnumeratorBronKerbosch,
	}
}

// PerCollection returns the number of graphs in each collection.
func (p Params) PerCollection() int { return p.GraphCount / 2 }

// Validate checks ranges that can be rejected before any graph is built.
// A node count too small for the clique order is NOT rejected here: it
// surfaces per item from the injector, as clique.ErrInvalidParameter.
func (p Params) Validate() error {
	_, _, err := p.resolve()
	return err
}

// resolve validates p and returns the removal strategy and enumerator it
// names.
func (p Params) resolve() (clique.RemovalMode, clique.Enumerator, error) {
	if p.GraphCount < 0 {
		return "", nil, fmt.Errorf("graph_count=%d < 0: %w", p.GraphCount, ErrInvalidParams)
	}
	if p.NodeCount < 1 {
		return "", nil, fmt.Errorf("node_count=%d < 1: %w", p.NodeCount, ErrInvalidParams)
	}
	if p.CliqueOrder < 0 {
		return "", nil, fmt.Errorf("clique_order=%d < 0: %w", p.CliqueOrder, ErrInvalidParams)
	}
	if !(p.EdgeProbability >= 0 && p.EdgeProbability <= 1) {
		return "", nil, fmt.Errorf("edge_probability=%v not in [0,1]: %w", p.EdgeProbability, ErrInvalidParams)
	}
	mode, err := clique.ParseRemovalMode(string(p.RemovalMode))
	if err != nil {
		return "", nil, fmt.Errorf("%v: %w", err, ErrInvalidParams)
	}
	enum, err := clique.ParseEnumerator(p.Enumerator)
	if err != nil {
		return "", nil, fmt.Errorf("%v: %w", err, ErrInvalidParams)
	}

	return mode, enum, nil
}
