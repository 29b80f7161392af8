// SPDX-License-Identifier: MIT
package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kclique/metrics"
)

func TestRecorder_Counts(t *testing.T) {
	r := metrics.NewRecorder()

	r.GraphGenerated("with_clique")
	r.GraphGenerated("with_clique")
	r.GraphGenerated("without_clique")
	r.Removal(1, 5)
	r.Removal(0, 0)
	r.Removal(2, 7)
	r.Failure("inject")
	r.BytesWritten("file", 128)
	r.BytesWritten("file", -4)
	r.ObserveRun(1500 * time.Millisecond)

	series, err := testutil.GatherAndCount(r.Registry(), "kclique_graphs_generated_total", "kclique_clique_removals_total")
	require.NoError(t, err)
	assert.Equal(t, 4, series)

	out := filepath.Join(t.TempDir(), "kclique.prom")
	require.NoError(t, r.WriteTextfile(out))
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, `kclique_graphs_generated_total{collection="with_clique"} 2`)
	assert.Contains(t, text, `kclique_graphs_generated_total{collection="without_clique"} 1`)
	assert.Contains(t, text, `kclique_clique_removals_total{outcome="removed"} 2`)
	assert.Contains(t, text, `kclique_clique_removals_total{outcome="none"} 1`)
	assert.Contains(t, text, `kclique_removed_nodes_total 12`)
	assert.Contains(t, text, `kclique_failures_total{stage="inject"} 1`)
	assert.Contains(t, text, `kclique_bytes_written_total{sink="file"} 128`)
	assert.Contains(t, text, `kclique_generation_duration_seconds 1.5`)
}

func TestRecorder_NilSafe(t *testing.T) {
	var r *metrics.Recorder

	assert.NotPanics(t, func() {
		r.GraphGenerated("x")
		r.Removal(1, 1)
		r.Failure("x")
		r.BytesWritten("x", 1)
		r.ObserveRun(time.Second)
	})
	assert.Nil(t, r.Registry())
	assert.NoError(t, r.WriteTextfile(filepath.Join(t.TempDir(), "unused.prom")))
}
