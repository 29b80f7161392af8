// SPDX-License-Identifier: MIT
//
// File: dataset.go
// Role: Dataset, Manifest and per-item error types.

package dataset

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/kclique/tensor"
)

// Collection names, used in ItemError, metrics labels, file and key names.
const (
	CollectionWith    = "with_clique"
	CollectionWithout = "without_clique"
)

// ErrUnknownCollection indicates a collection name other than CollectionWith
// or CollectionWithout.
var ErrUnknownCollection = errors.New("dataset: unknown collection")

// Dataset is the in-memory result of one run.
type Dataset struct {
	WithClique    []tensor.Graph
	WithoutClique []tensor.Graph
	Manifest      Manifest
}

// Manifest describes a run. It is persisted next to the collections.
type Manifest struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
	Params    Params    `json:"params"`

	WithClique    int `json:"with_clique"`
	WithoutClique int `json:"without_clique"`

	// RemovedCliques counts cliques deleted across the without-clique
	// collection; Unfiltered counts graphs where removal found no match.
	RemovedCliques int `json:"removed_cliques"`
	Unfiltered     int `json:"unfiltered"`

	// Format is the codec name used by WriteFiles; empty until written.
	Format string `json:"format,omitempty"`
}

// Collection returns the records of the named collection.
func (d *Dataset) Collection(name string) ([]tensor.Graph, error) {
	switch name {
	case CollectionWith:
		return d.WithClique, nil
	case CollectionWithout:
		return d.WithoutClique, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownCollection)
	}
}

// ItemError reports the item that aborted a run. It unwraps to the cause,
// e.g. clique.ErrInvalidParameter when NodeCount < CliqueOrder+1.
type ItemError struct {
	Collection string
	Index      int
	Err        error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("dataset: %s[%d]: %v", e.Collection, e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
