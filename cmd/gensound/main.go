// SPDX-License-Identifier: EPL-2.0

// Command gensound evolves a set of waveform genes towards a mono 16-bit
// PCM target file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ik5/gensound"
	"github.com/ik5/gensound/config"
	"github.com/ik5/gensound/evolve"
	"github.com/ik5/gensound/express"
	"github.com/ik5/gensound/report"
)

const influxTimeout = 5 * time.Second

type options struct {
	configPath     string
	population     int
	genes          int
	seed           int64
	workers        int
	maxGenerations int
	logLevel       string
	logFormat      string
	outputDir      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "gensound [target.wav|target.aiff]",
		Short: "Approximate a mono 16-bit PCM recording with evolved waveforms",
		Long: `gensound runs a genetic algorithm whose individuals are sets of
sinusoid, square, saw, triangle and DC genes. Every generation the fittest
and the least fit individual are written next to the target.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := run(ctx, cmd.OutOrStdout(), logger, cfg, args[0]); err != nil {
				logger.Error("run failed", "error", err)
				return err
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.IntVar(&opts.population, "population", 0, "individuals per generation")
	flags.IntVar(&opts.genes, "genes", 0, "genes per individual")
	flags.Int64Var(&opts.seed, "seed", 0, "seed of the random source")
	flags.IntVar(&opts.workers, "workers", 0, "goroutines per step, GOMAXPROCS when 0")
	flags.IntVar(&opts.maxGenerations, "max-generations", 0, "stop after this many generations, 0 runs until interrupted")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "text or json")
	flags.StringVarP(&opts.outputDir, "output-dir", "o", "", "directory of the rendered WAV files")

	return cmd
}

// loadConfig reads the configuration file, if any, and applies the flags
// that were set on the command line.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("population") {
		cfg.Population = opts.population
	}
	if flags.Changed("genes") {
		cfg.Genes = opts.genes
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("max-generations") {
		cfg.Stop.MaxGenerations = opts.maxGenerations
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if flags.Changed("output-dir") {
		cfg.Sink.Dir = opts.outputDir
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func newLogger(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// sinkBase is the path prefix of the rendered files: the target path
// without its extension, moved to dir when one is given.
func sinkBase(targetPath, dir string) string {
	base := strings.TrimSuffix(targetPath, filepath.Ext(targetPath))
	if dir == "" {
		return base
	}

	return filepath.Join(dir, filepath.Base(base))
}

func run(ctx context.Context, stdout io.Writer, logger *slog.Logger, cfg config.Config, targetPath string) error {
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	target, err := gensound.LoadTarget(targetPath, nil)
	if err != nil {
		return err
	}
	logger.Info("target loaded",
		"path", targetPath,
		"samples", len(target.Samples),
		"sample_rate", target.SampleRate,
	)

	ec, err := cfg.Build(target, runID)
	if err != nil {
		return err
	}
	ec.Logger = logger

	reporters := report.Multi{report.NewLog(logger, slog.LevelDebug)}
	if cfg.Report.Console {
		reporters = append(reporters, report.NewConsole(stdout))
	}

	if cfg.Report.Prometheus.Listen != "" {
		reg := prometheus.NewRegistry()
		reporters = append(reporters, report.NewPrometheus(reg, runID))

		shutdown := serveMetrics(cfg.Report.Prometheus.Listen, reg, logger)
		defer shutdown()
	}

	if cfg.Report.Influx.URL != "" {
		client := influxdb2.NewClient(cfg.Report.Influx.URL, cfg.Report.Influx.Token)
		defer client.Close()

		writeAPI := client.WriteAPIBlocking(cfg.Report.Influx.Org, cfg.Report.Influx.Bucket)
		reporters = append(reporters, report.NewInflux(writeAPI, cfg.Report.Influx.Measurement, influxTimeout, logger))
	}
	ec.Reporter = reporters

	if !cfg.Sink.Disabled {
		renderer, err := express.NewRenderer(target.Samples)
		if err != nil {
			return err
		}

		sink, err := report.NewWAVSink(sinkBase(targetPath, cfg.Sink.Dir), target.SampleRate, cfg.Sink.Every, renderer, logger)
		if err != nil {
			return err
		}
		ec.Sink = sink
	}

	eng, err := evolve.New(ec)
	if err != nil {
		return err
	}

	res, err := eng.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("run finished",
		"reason", res.Reason,
		"generations", res.Generations,
		"best", res.Summary.Best,
	)

	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
