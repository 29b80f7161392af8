// SPDX-License-Identifier: MIT
//
// File: redis.go
// Role: Redis sink for generated datasets.

package dataset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/kclique/tensor"
)

const redisPrefix = "kclique"

// RedisSink pushes each collection of a run into a Redis list of JSON
// records:
//
//	kclique:<run>:with      with-clique records, in index order
//	kclique:<run>:without   without-clique records
//	kclique:<run>:manifest  the run manifest
type RedisSink struct {
	client *redis.Client
}

// NewRedisSink wraps an existing client. The caller owns the client.
func NewRedisSink(client *redis.Client) *RedisSink {
	return &RedisSink{client: client}
}

// Key returns the list key of a collection for runID.
//
// Errors:
//   - ErrUnknownCollection for any name but CollectionWith/CollectionWithout.
func (s *RedisSink) Key(runID, collection string) (string, error) {
	var suffix string
	switch collection {
	case CollectionWith:
		suffix = "with"
	case CollectionWithout:
		suffix = "without"
	default:
		return "", fmt.Errorf("%q: %w", collection, ErrUnknownCollection)
	}
	return fmt.Sprintf("%s:%s:%s", redisPrefix, runID, suffix), nil
}

func (s *RedisSink) manifestKey(runID string) string {
	return fmt.Sprintf("%s:%s:manifest", redisPrefix, runID)
}

// Save writes both collections and the manifest in one MULTI/EXEC block,
// replacing anything stored under the same run ID. It returns the number of
// record bytes pushed.
func (s *RedisSink) Save(ctx context.Context, ds *Dataset) (int64, error) {
	runID := ds.Manifest.RunID
	manifest, err := json.Marshal(ds.Manifest)
	if err != nil {
		return 0, fmt.Errorf("redis save: %w", err)
	}

	var written int64
	type list struct {
		key    string
		values []interface{}
	}
	lists := make([]list, 0, 2)
	for _, name := range []string{CollectionWith, CollectionWithout} {
		graphs, err := ds.Collection(name)
		if err != nil {
			return 0, fmt.Errorf("redis save: %w", err)
		}
		key, err := s.Key(runID, name)
		if err != nil {
			return 0, fmt.Errorf("redis save: %w", err)
		}
		values := make([]interface{}, 0, len(graphs))
		for i := range graphs {
			raw, err := json.Marshal(&graphs[i])
			if err != nil {
				return 0, fmt.Errorf("redis save: %s[%d]: %w", name, i, err)
			}
			values = append(values, raw)
			written += int64(len(raw))
		}
		lists = append(lists, list{key: key, values: values})
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, l := range lists {
			pipe.Del(ctx, l.key)
			if len(l.values) > 0 {
				pipe.RPush(ctx, l.key, l.values...)
			}
		}
		pipe.Set(ctx, s.manifestKey(runID), manifest, 0)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("redis save %s: %w", runID, err)
	}

	return written, nil
}

// Load reads one collection of a run back. A missing run yields
// ErrRunNotFound, an unknown collection name ErrUnknownCollection.
func (s *RedisSink) Load(ctx context.Context, runID, collection string) ([]tensor.Graph, error) {
	key, err := s.Key(runID, collection)
	if err != nil {
		return nil, fmt.Errorf("redis load: %w", err)
	}
	n, err := s.client.Exists(ctx, s.manifestKey(runID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis load: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("redis load %s: %w", runID, ErrRunNotFound)
	}

	values, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis load: %w", err)
	}
	out := make([]tensor.Graph, len(values))
	for i, v := range values {
		if err = json.Unmarshal([]byte(v), &out[i]); err != nil {
			return nil, fmt.Errorf("redis load: %s[%d]: %w", collection, i, err)
		}
	}

	return out, nil
}

// Manifest reads the stored manifest of a run.
func (s *RedisSink) Manifest(ctx context.Context, runID string) (Manifest, error) {
	var m Manifest
	raw, err := s.client.Get(ctx, s.manifestKey(runID)).Bytes()
	if err == redis.Nil {
		return m, fmt.Errorf("redis manifest %s: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return m, fmt.Errorf("redis manifest: %w", err)
	}
	if err = json.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("redis manifest: %w", err)
	}
	return m, nil
}
