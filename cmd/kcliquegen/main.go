// SPDX-License-Identifier: MIT

// Command kcliquegen generates the k-clique classification dataset and
// writes it to disk, and optionally to SQLite, Redis and a metrics textfile.
//
//	kcliquegen -config kclique.yaml -out ./data -format json -seed 7
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/kclique/config"
	"github.com/katalvlaran/kclique/dataset"
	"github.com/katalvlaran/kclique/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "kcliquegen:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("kcliquegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile = fs.String("config", "", "Path to config file (yaml, json or toml)")
		outDir     = fs.String("out", "", "Output directory for the dataset files")
		format     = fs.String("format", "", "Collection file format: gob or json")
		seed       = fs.Int64("seed", 0, "Random seed (default: time-based)")
		sqlitePath = fs.String("sqlite", "", "Also store the run in this SQLite database")
		redisAddr  = fs.String("redis", "", "Also push the run to this Redis address")
		metricsOut = fs.String("metrics", "", "Write Prometheus metrics to this textfile")
		logLevel   = fs.String("log-level", "", "Log level: debug, info, warn, error")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.NewConfig()
	if *configFile != "" {
		if err := cfg.LoadFromFile(*configFile); err != nil {
			return err
		}
	}
	// explicitly set flags win over file and environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Set("output.dir", *outDir)
		case "format":
			cfg.Set("output.format", *format)
		case "seed":
			cfg.Set("dataset.seed", *seed)
		case "sqlite":
			cfg.Set("output.sqlite_path", *sqlitePath)
		case "redis":
			cfg.Set("output.redis_addr", *redisAddr)
		case "metrics":
			cfg.Set("output.metrics_path", *metricsOut)
		case "log-level":
			cfg.Set("logging.level", *logLevel)
		}
	})

	log := cfg.CreateLoggerTo(stderr)
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	codec, err := dataset.CodecByName(cfg.Format())
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()
	defer writeMetrics(cfg.MetricsPath(), rec, log)

	gen := dataset.NewGenerator(dataset.WithLogger(log), dataset.WithRecorder(rec))
	ds, err := gen.Generate(ctx, params)
	if err != nil {
		return err
	}

	res, err := dataset.WriteFiles(cfg.OutputDir(), ds, codec)
	if err != nil {
		rec.Failure("write")
		return err
	}
	rec.BytesWritten("file", res.Bytes)
	log.Info().Strs("files", res.Paths).Int64("bytes", res.Bytes).Msg("dataset written")

	if path := cfg.SQLitePath(); path != "" {
		if err = saveSQLite(ctx, path, ds, rec); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("run stored in sqlite")
	}
	if addr := cfg.RedisAddr(); addr != "" {
		if err = saveRedis(ctx, addr, ds, rec); err != nil {
			return err
		}
		log.Info().Str("addr", addr).Msg("run pushed to redis")
	}

	return nil
}

func saveSQLite(ctx context.Context, path string, ds *dataset.Dataset, rec *metrics.Recorder) error {
	store, err := dataset.OpenSQLite(path)
	if err != nil {
		rec.Failure("sqlite")
		return err
	}
	defer store.Close()

	n, err := store.SaveDataset(ctx, ds)
	if err != nil {
		rec.Failure("sqlite")
		return err
	}
	rec.BytesWritten("sqlite", n)
	return nil
}

func saveRedis(ctx context.Context, addr string, ds *dataset.Dataset, rec *metrics.Recorder) error {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	n, err := dataset.NewRedisSink(client).Save(ctx, ds)
	if err != nil {
		rec.Failure("redis")
		return err
	}
	rec.BytesWritten("redis", n)
	return nil
}

func writeMetrics(path string, rec *metrics.Recorder, log zerolog.Logger) {
	if path == "" {
		return
	}
	if err := rec.WriteTextfile(path); err != nil {
		log.Error().Err(err).Msg("metrics export failed")
	}
}
