// SPDX-License-Identifier: MIT
//
// File: files.go
// Role: File-system persistence of a Dataset.

package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/kclique/tensor"
)

// Fixed output names; the collection files get the codec's extension.
const (
	WithCliqueBase    = "graphs_with_k_clique"
	WithoutCliqueBase = "graphs_without_k_clique"
	ManifestFile      = "manifest.json"
)

// WriteResult lists the files written by WriteFiles and their total size.
type WriteResult struct {
	Paths []string
	Bytes int64
}

// WriteFiles persists ds into dir (created if missing) as
//
//	graphs_with_k_clique<ext>, graphs_without_k_clique<ext>, manifest.json
//
// in that order. Each file is written to a temporary file in dir and renamed
// into place, so a reader never sees a truncated file. The pair as a whole is
// not atomic; the manifest is written last.
func WriteFiles(dir string, ds *Dataset, codec Codec) (WriteResult, error) {
	var res WriteResult
	if ds == nil {
		return res, fmt.Errorf("WriteFiles: nil dataset")
	}
	if codec == nil {
		codec = GobCodec{}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("WriteFiles: %w", err)
	}

	collections := []struct {
		base   string
		graphs []tensor.Graph
	}{
		{WithCliqueBase, ds.WithClique},
		{WithoutCliqueBase, ds.WithoutClique},
	}
	for _, c := range collections {
		path := filepath.Join(dir, c.base+codec.Ext())
		n, err := writeAtomic(path, func(w *bufio.Writer) error {
			return codec.Encode(w, c.graphs)
		})
		if err != nil {
			return res, fmt.Errorf("WriteFiles: %s: %w", path, err)
		}
		res.Paths = append(res.Paths, path)
		res.Bytes += n
	}

	m := ds.Manifest
	m.Format = codec.Name()
	path := filepath.Join(dir, ManifestFile)
	n, err := writeAtomic(path, func(w *bufio.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	})
	if err != nil {
		return res, fmt.Errorf("WriteFiles: %s: %w", path, err)
	}
	res.Paths = append(res.Paths, path)
	res.Bytes += n

	return res, nil
}

// ReadFile decodes one collection file and validates every record.
func ReadFile(path string, codec Codec) ([]tensor.Graph, error) {
	if codec == nil {
		codec = GobCodec{}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	graphs, err := codec.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %s: %w", path, err)
	}
	for i := range graphs {
		if err = graphs[i].Validate(); err != nil {
			return nil, fmt.Errorf("ReadFile: %s: record %d: %w", path, i, err)
		}
	}

	return graphs, nil
}

// ReadManifest loads dir/manifest.json.
func ReadManifest(dir string) (Manifest, error) {
	var m Manifest
	raw, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return m, fmt.Errorf("ReadManifest: %w", err)
	}
	if err = json.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("ReadManifest: %w", err)
	}
	return m, nil
}

// ReadDir loads a dataset written by WriteFiles, choosing the codec from the
// manifest and checking the collection sizes against it.
func ReadDir(dir string) (*Dataset, error) {
	m, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}
	codec, err := CodecByName(m.Format)
	if err != nil {
		return nil, fmt.Errorf("ReadDir: %w", err)
	}

	ds := &Dataset{Manifest: m}
	if ds.WithClique, err = ReadFile(filepath.Join(dir, WithCliqueBase+codec.Ext()), codec); err != nil {
		return nil, err
	}
	if ds.WithoutClique, err = ReadFile(filepath.Join(dir, WithoutCliqueBase+codec.Ext()), codec); err != nil {
		return nil, err
	}
	if len(ds.WithClique) != m.WithClique || len(ds.WithoutClique) != m.WithoutClique {
		return nil, fmt.Errorf("ReadDir: %s: collections hold %d/%d records, manifest says %d/%d",
			dir, len(ds.WithClique), len(ds.WithoutClique), m.WithClique, m.WithoutClique)
	}

	return ds, nil
}

// writeAtomic writes via a temp file in the target directory, then renames.
func writeAtomic(path string, fill func(w *bufio.Writer) error) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	w := bufio.NewWriter(tmp)
	if err = fill(w); err != nil {
		tmp.Close()
		return 0, err
	}
	if err = w.Flush(); err != nil {
		tmp.Close()
		return 0, err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return 0, err
	}
	info, err := tmp.Stat()
	if err != nil {
		tmp.Close()
		return 0, err
	}
	if err = tmp.Close(); err != nil {
		return 0, err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return 0, err
	}

	return info.Size(), nil
}
