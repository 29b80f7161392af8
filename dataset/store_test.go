// SPDX-License-Identifier: MIT
package dataset_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kclique/dataset"
	"github.com/katalvlaran/kclique/tensor"
)

func sampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	p := smallParams(12, 7, 2)
	p.DegreeFeature = true
	ds, err := dataset.NewGenerator(dataset.WithClock(fixedClock)).Generate(context.Background(), p)
	require.NoError(t, err)
	return ds
}

func requireSameRecords(t *testing.T, want, got []tensor.Graph) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, tensor.SameStructure(&want[i], &got[i]), "record %d differs", i)
		assert.Equal(t, want[i].Label, got[i].Label, "record %d label", i)
		assert.Equal(t, want[i].X, got[i].X, "record %d features", i)
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	t.Parallel()

	ds := sampleDataset(t)
	for _, name := range []string{dataset.FormatGob, dataset.FormatJSON} {
		t.Run(name, func(t *testing.T) {
			codec, err := dataset.CodecByName(name)
			require.NoError(t, err)
			assert.Equal(t, name, codec.Name())

			var buf bytes.Buffer
			require.NoError(t, codec.Encode(&buf, ds.WithClique))
			got, err := codec.Decode(&buf)
			require.NoError(t, err)
			requireSameRecords(t, ds.WithClique, got)
		})
	}
}

func TestCodecByName(t *testing.T) {
	t.Parallel()

	c, err := dataset.CodecByName("")
	require.NoError(t, err)
	assert.Equal(t, ".gob", c.Ext())

	_, err = dataset.CodecByName("pickle")
	assert.ErrorIs(t, err, dataset.ErrUnknownFormat)
}

func TestJSONCodec_FieldNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := tensor.Graph{NumNodes: 2, EdgeIndex: [2][]int64{{0, 1}, {1, 0}}, Label: 1}
	require.NoError(t, dataset.JSONCodec{}.Encode(&buf, []tensor.Graph{rec}))
	assert.JSONEq(t, `[{"num_nodes":2,"edge_index":[[0,1],[1,0]],"y":1}]`, buf.String())
}

func TestWriteFiles_ReadDir(t *testing.T) {
	t.Parallel()

	ds := sampleDataset(t)
	for _, codec := range []dataset.Codec{dataset.GobCodec{}, dataset.JSONCodec{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			res, err := dataset.WriteFiles(dir, ds, codec)
			require.NoError(t, err)
			require.Len(t, res.Paths, 3)
			assert.Positive(t, res.Bytes)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			sort.Strings(names)
			assert.Equal(t, []string{
				"graphs_with_k_clique" + codec.Ext(),
				"graphs_without_k_clique" + codec.Ext(),
				"manifest.json",
			}, names)

			back, err := dataset.ReadDir(dir)
			require.NoError(t, err)
			assert.Equal(t, codec.Name(), back.Manifest.Format)
			assert.Equal(t, ds.Manifest.RunID, back.Manifest.RunID)
			assert.Equal(t, ds.Manifest.Params, back.Manifest.Params)
			requireSameRecords(t, ds.WithClique, back.WithClique)
			requireSameRecords(t, ds.WithoutClique, back.WithoutClique)
		})
	}
}

func TestWriteFiles_Overwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ds := sampleDataset(t)
	_, err := dataset.WriteFiles(dir, ds, nil)
	require.NoError(t, err)

	ds.WithClique = ds.WithClique[:1]
	ds.Manifest.WithClique = 1
	_, err = dataset.WriteFiles(dir, ds, nil)
	require.NoError(t, err)

	got, err := dataset.ReadFile(filepath.Join(dir, dataset.WithCliqueBase+".gob"), nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReadFile_RejectsMalformedRecord(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"num_nodes":2,"edge_index":[[0],[1]],"y":0}]`), 0o644))

	_, err := dataset.ReadFile(path, dataset.JSONCodec{})
	assert.ErrorIs(t, err, tensor.ErrMalformed)
}

func TestReadDir_DetectsMismatchedPair(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ds := sampleDataset(t)
	_, err := dataset.WriteFiles(dir, ds, dataset.JSONCodec{})
	require.NoError(t, err)

	// a crash after rewriting only the first collection
	short := ds.WithClique[:2]
	f, err := os.Create(filepath.Join(dir, dataset.WithCliqueBase+".json"))
	require.NoError(t, err)
	require.NoError(t, dataset.JSONCodec{}.Encode(f, short))
	require.NoError(t, f.Close())

	_, err = dataset.ReadDir(dir)
	assert.Error(t, err)
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := dataset.OpenSQLite(filepath.Join(t.TempDir(), "kclique.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ds := sampleDataset(t)
	n, err := store.SaveDataset(ctx, ds)
	require.NoError(t, err)
	assert.Positive(t, n)

	with, err := store.LoadCollection(ctx, ds.Manifest.RunID, dataset.CollectionWith)
	require.NoError(t, err)
	requireSameRecords(t, ds.WithClique, with)
	without, err := store.LoadCollection(ctx, ds.Manifest.RunID, dataset.CollectionWithout)
	require.NoError(t, err)
	requireSameRecords(t, ds.WithoutClique, without)

	// a second save of the same run fails as a whole
	_, err = store.SaveDataset(ctx, ds)
	require.Error(t, err)
	with, err = store.LoadCollection(ctx, ds.Manifest.RunID, dataset.CollectionWith)
	require.NoError(t, err)
	assert.Len(t, with, len(ds.WithClique))

	runs, err := store.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, ds.Manifest.RunID, runs[0].RunID)
	assert.Equal(t, ds.Manifest.Params, runs[0].Params)
	assert.Equal(t, ds.Manifest.WithoutClique, runs[0].WithoutClique)

	_, err = store.LoadCollection(ctx, "missing", dataset.CollectionWith)
	assert.ErrorIs(t, err, dataset.ErrRunNotFound)
	_, err = store.LoadCollection(ctx, ds.Manifest.RunID, "without")
	assert.ErrorIs(t, err, dataset.ErrUnknownCollection)
}

func TestRedisSink(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sink := dataset.NewRedisSink(client)
	ds := sampleDataset(t)
	n, err := sink.Save(ctx, ds)
	require.NoError(t, err)
	assert.Positive(t, n)

	runID := ds.Manifest.RunID
	withKey, err := sink.Key(runID, dataset.CollectionWith)
	require.NoError(t, err)
	assert.Equal(t, "kclique:"+runID+":with", withKey)
	withoutKey, err := sink.Key(runID, dataset.CollectionWithout)
	require.NoError(t, err)
	assert.Equal(t, "kclique:"+runID+":without", withoutKey)
	_, err = sink.Key(runID, "with")
	assert.ErrorIs(t, err, dataset.ErrUnknownCollection)
	raw, err := mr.List(withKey)
	require.NoError(t, err)
	assert.Len(t, raw, len(ds.WithClique))

	// saving again replaces rather than appends
	_, err = sink.Save(ctx, ds)
	require.NoError(t, err)

	with, err := sink.Load(ctx, runID, dataset.CollectionWith)
	require.NoError(t, err)
	requireSameRecords(t, ds.WithClique, with)
	without, err := sink.Load(ctx, runID, dataset.CollectionWithout)
	require.NoError(t, err)
	requireSameRecords(t, ds.WithoutClique, without)

	m, err := sink.Manifest(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, ds.Manifest.Params, m.Params)

	_, err = sink.Load(ctx, "missing", dataset.CollectionWith)
	assert.ErrorIs(t, err, dataset.ErrRunNotFound)
	typo, err := sink.Load(ctx, runID, "with_cliques")
	assert.ErrorIs(t, err, dataset.ErrUnknownCollection)
	assert.Nil(t, typo)
	_, err = sink.Manifest(ctx, "missing")
	assert.ErrorIs(t, err, dataset.ErrRunNotFound)
}
