// Command pershout scores a delimited point-cloud file and prints the
// persistence ranking, weakest-attached points last.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/doccosmos/pershout"
	"github.com/doccosmos/pershout/distance"
	"github.com/doccosmos/pershout/export"
	"github.com/doccosmos/pershout/loader"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pershout:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "optional YAML config file")
		input       = flag.String("input", "", "delimited input file (overrides config)")
		k           = flag.Int("k", 0, "neighbor count (overrides config)")
		metricName  = flag.String("metric", "", "distance metric: euclidean, sqeuclidean, manhattan, chebyshev, minkowski")
		minkowskiP  = flag.Float64("p", 0, "minkowski exponent (metric=minkowski only)")
		delimiter   = flag.String("delimiter", "", "field delimiter")
		skipHeader  = flag.Int("skip-header", -1, "header rows to skip")
		parallelism = flag.Int("parallelism", 0, "concurrent neighbor scans (0 = GOMAXPROCS)")
		logLevel    = flag.String("log-level", "", "debug, info, warn, error")
		logFormat   = flag.String("log-format", "", "text or json")
		output      = flag.String("output", "", "write scores to this file instead of stdout summary only")
		outFormat   = flag.String("format", "", "output format: csv or json")
		compression = flag.String("compress", "", "output compression: none, zstd, lz4")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	applyFlagOverrides(&cfg, flagValues{
		input: *input, k: *k, metric: *metricName, minkowskiP: *minkowskiP,
		delimiter: *delimiter, skipHeader: *skipHeader, parallelism: *parallelism,
		logLevel: *logLevel, logFormat: *logFormat,
		output: *output, outFormat: *outFormat, compression: *compression,
	})

	if cfg.Input == "" {
		return fmt.Errorf("no input file (use -input or the config file)")
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	metric, err := distance.ParseMetric(cfg.Metric)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Delimiter == "" {
		cfg.Delimiter = ","
	}
	points, err := loader.ReadFile(cfg.Input, func(o *loader.Options) {
		o.Comma = []rune(cfg.Delimiter)[0]
		o.SkipHeader = cfg.SkipHeader
	})
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Input, err)
	}
	logger.Info("points loaded", "file", cfg.Input, "points", points.Len(), "dims", points.Dims())

	runOpts := []pershout.Option{
		pershout.WithK(cfg.K),
		pershout.WithMetric(metric),
		pershout.WithParallelism(cfg.Parallelism),
		pershout.WithLogger(logger),
	}
	if metric == distance.MetricMinkowski {
		runOpts = append(runOpts, pershout.WithMinkowskiP(cfg.MinkowskiP))
	}

	result, err := pershout.Run(ctx, points, runOpts...)
	if err != nil {
		return err
	}

	printSummary(result)

	if cfg.Output.Path != "" {
		if err := writeOutput(cfg, result); err != nil {
			return err
		}
		logger.Info("scores written", "file", cfg.Output.Path)
	}

	return nil
}

type flagValues struct {
	input, metric, delimiter, logLevel, logFormat string
	output, outFormat, compression               string
	k, skipHeader, parallelism                   int
	minkowskiP                                   float64
}

func applyFlagOverrides(cfg *Config, fv flagValues) {
	if fv.input != "" {
		cfg.Input = fv.input
	}
	if fv.k > 0 {
		cfg.K = fv.k
	}
	if fv.metric != "" {
		cfg.Metric = fv.metric
	}
	if fv.minkowskiP > 0 {
		cfg.MinkowskiP = fv.minkowskiP
	}
	if fv.delimiter != "" {
		cfg.Delimiter = fv.delimiter
	}
	if fv.skipHeader >= 0 {
		cfg.SkipHeader = fv.skipHeader
	}
	if fv.parallelism > 0 {
		cfg.Parallelism = fv.parallelism
	}
	if fv.logLevel != "" {
		cfg.Log.Level = fv.logLevel
	}
	if fv.logFormat != "" {
		cfg.Log.Format = fv.logFormat
	}
	if fv.output != "" {
		cfg.Output.Path = fv.output
	}
	if fv.outFormat != "" {
		cfg.Output.Format = fv.outFormat
	}
	if fv.compression != "" {
		cfg.Output.Compression = fv.compression
	}
}

func buildLogger(cfg Config) (*pershout.Logger, error) {
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %q", cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "json":
		return pershout.NewJSONLogger(level), nil
	case "text", "":
		return pershout.NewTextLogger(level), nil
	default:
		return nil, fmt.Errorf("unknown log format: %q", cfg.Log.Format)
	}
}

func printSummary(res *pershout.Result) {
	fmt.Printf("points=%d components=%d disconnected=%d lmin=%g lmax=%g out_of_range=%d\n",
		len(res.Scores), res.Components, res.Disconnected.GetCardinality(),
		res.Lmin, res.Lmax, res.OutOfRange)
	for rank, i := range res.Ranking {
		if math.IsNaN(res.Scores[i]) {
			fmt.Printf("%6d  point=%-8d score=disconnected\n", rank, i)
			continue
		}
		fmt.Printf("%6d  point=%-8d score=%.6f persistence=%g\n", rank, i, res.Scores[i], res.Persistence[i])
	}
}

func writeOutput(cfg Config, res *pershout.Result) error {
	var format export.Format
	switch cfg.Output.Format {
	case "csv", "":
		format = export.FormatCSV
	case "json":
		format = export.FormatJSON
	default:
		return fmt.Errorf("unknown output format: %q", cfg.Output.Format)
	}

	var compression export.Compression
	switch cfg.Output.Compression {
	case "none", "":
		compression = export.CompressionNone
	case "zstd":
		compression = export.CompressionZstd
	case "lz4":
		compression = export.CompressionLZ4
	default:
		return fmt.Errorf("unknown compression: %q", cfg.Output.Compression)
	}

	return export.WriteFile(cfg.Output.Path, res, func(o *export.Options) {
		o.Format = format
		o.Compression = compression
	})
}
