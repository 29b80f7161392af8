// SPDX-License-Identifier: MIT
//
// File: generate.go
// Role: Dataset generation pipeline (G(n,p) → inject/remove → tensor).
// Determinism:
//   - One *rand.Rand seeded with Params.Seed drives every draw, in order:
//     all with-clique items first, then all without-clique items.
// Concurrency:
//   - A Generator holds no per-run state and may be shared; each Generate
//     call is single-threaded.

package dataset

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/kclique/builder"
	"github.com/katalvlaran/kclique/clique"
	"github.com/katalvlaran/kclique/metrics"
	"github.com/katalvlaran/kclique/tensor"
)

const progressEvery = 1000

// Generator builds datasets. The zero value is not usable; call NewGenerator.
type Generator struct {
	log   zerolog.Logger
	rec   *metrics.Recorder
	now   func() time.Time
	newID func() string
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the logger (default: zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithRecorder enables metrics; a nil recorder disables them.
func WithRecorder(r *metrics.Recorder) Option {
	return func(g *Generator) { g.rec = r }
}

// WithClock overrides the manifest timestamp source.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("dataset: WithClock(nil)")
	}
	return func(g *Generator) { g.now = now }
}

// NewGenerator returns a Generator with the given options applied.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		log:   zerolog.Nop(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate runs the pipeline for p.
//
// Errors:
//   - ErrInvalidParams (wrapped) when p fails Validate.
//   - *ItemError for the first item that fails; no Dataset is returned.
//   - ctx.Err() (wrapped) when ctx is done between items.
func (gen *Generator) Generate(ctx context.Context, p Params) (*Dataset, error) {
	mode, enum, err := p.resolve()
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	started := gen.now()
	ds := &Dataset{Manifest: Manifest{
		RunID:     gen.newID(),
		CreatedAt: started.UTC(),
		Params:    p,
	}}
	log := gen.log.With().Str("run_id", ds.Manifest.RunID).Logger()
	log.Info().
		Int("graphs", p.GraphCount).
		Int("nodes", p.NodeCount).
		Int("k", p.CliqueOrder).
		Float64("p", p.EdgeProbability).
		Int64("seed", p.Seed).
		Str("removal", string(mode)).
		Msg("generating dataset")

	rng := rand.New(rand.NewSource(p.Seed))
	per := p.PerCollection()

	ds.WithClique = make([]tensor.Graph, 0, per)
	for i := 0; i < per; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		rec, err := gen.withClique(p, rng)
		if err != nil {
			log.Error().Err(err).Int("index", i).Str("collection", CollectionWith).Msg("item failed")
			return nil, &ItemError{Collection: CollectionWith, Index: i, Err: err}
		}
		ds.WithClique = append(ds.WithClique, *rec)
		gen.rec.GraphGenerated(CollectionWith)
		gen.progress(log, CollectionWith, i)
	}

	ds.WithoutClique = make([]tensor.Graph, 0, per)
	for i := 0; i < per; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		rec, removed, err := gen.withoutClique(p, rng, mode, enum)
		if err != nil {
			log.Error().Err(err).Int("index", i).Str("collection", CollectionWithout).Msg("item failed")
			return nil, &ItemError{Collection: CollectionWithout, Index: i, Err: err}
		}
		if removed == 0 {
			ds.Manifest.Unfiltered++
		}
		ds.Manifest.RemovedCliques += removed
		ds.WithoutClique = append(ds.WithoutClique, *rec)
		gen.rec.GraphGenerated(CollectionWithout)
		gen.progress(log, CollectionWithout, i)
	}

	ds.Manifest.WithClique = len(ds.WithClique)
	ds.Manifest.WithoutClique = len(ds.WithoutClique)
	elapsed := gen.now().Sub(started)
	gen.rec.ObserveRun(elapsed)
	log.Info().
		Int(CollectionWith, ds.Manifest.WithClique).
		Int(CollectionWithout, ds.Manifest.WithoutClique).
		Int("removed_cliques", ds.Manifest.RemovedCliques).
		Int("unfiltered", ds.Manifest.Unfiltered).
		Dur("elapsed", elapsed).
		Msg("dataset generated")

	return ds, nil
}

func (gen *Generator) withClique(p Params, rng *rand.Rand) (*tensor.Graph, error) {
	g, err := builder.ErdosRenyi(p.NodeCount, p.EdgeProbability, rng)
	if err != nil {
		gen.rec.Failure("generate")
		return nil, err
	}
	if _, err = clique.Inject(g, p.CliqueOrder, rng); err != nil {
		gen.rec.Failure("inject")
		return nil, err
	}

	return tensor.FromGraph(g, gen.tensorOptions(p, tensor.LabelWithClique)...), nil
}

func (gen *Generator) withoutClique(p Params, rng *rand.Rand, mode clique.RemovalMode, enum clique.Enumerator) (*tensor.Graph, int, error) {
	g, err := builder.ErdosRenyi(p.NodeCount, p.EdgeProbability, rng)
	if err != nil {
		gen.rec.Failure("generate")
		return nil, 0, err
	}
	removed, err := mode.Apply(g, p.CliqueOrder, enum)
	if err != nil {
		gen.rec.Failure("remove")
		return nil, 0, err
	}
	nodes := 0
	for _, c := range removed {
		nodes += len(c)
	}
	gen.rec.Removal(len(removed), nodes)

	return tensor.FromGraph(g, gen.tensorOptions(p, tensor.LabelWithoutClique)...), len(removed), nil
}

func (gen *Generator) tensorOptions(p Params, label int) []tensor.Option {
	opts := []tensor.Option{tensor.WithLabel(label)}
	if p.DegreeFeature {
		opts = append(opts, tensor.WithDegreeFeature())
	}
	return opts
}

func (gen *Generator) progress(log zerolog.Logger, collection string, i int) {
	if (i+1)%progressEvery == 0 {
		log.Debug().Str("collection", collection).Int("done", i+1).Msg("progress")
	}
}
