// Command avgdist prints the average shortest-path distance between all
// reachable ordered pairs of vertices in a directed edge list.
//
//	avgdist --input edges.txt
//	avgdist --input s3://graphs/web.txt.sz --workers 8 --summary
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dd0wney/cluso-avgdist/pkg/algorithms"
	"github.com/dd0wney/cluso-avgdist/pkg/config"
	"github.com/dd0wney/cluso-avgdist/pkg/edgelist"
	"github.com/dd0wney/cluso-avgdist/pkg/graph"
	"github.com/dd0wney/cluso-avgdist/pkg/logging"
	"github.com/dd0wney/cluso-avgdist/pkg/metrics"
	"github.com/dd0wney/cluso-avgdist/pkg/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "avgdist: %v\n", err)
		return 1
	}

	logger, runID := logging.NewRunLogger(stderr, cfg.LogLevel)
	reg := metrics.NewRegistry()

	summary, err := compute(ctx, cfg, logger, reg)
	summary.RunID = runID

	status := "success"
	if err != nil {
		status = "error"
	}
	reg.RecordRun(status)
	reg.UpdateSystemMetrics()

	if cfg.MetricsFile != "" {
		if werr := reg.WriteTextfile(cfg.MetricsFile); werr != nil {
			logger.Warn("failed to write metrics file", logging.String("path", cfg.MetricsFile), logging.Error(werr))
		}
	}

	if err != nil {
		logger.Error("run failed", logging.Error(err))
		fmt.Fprintf(stderr, "avgdist: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, report.Line(summary.Result.Average))
	if cfg.Summary {
		fmt.Fprintln(stderr, summary.Render())
	}
	return 0
}

// parseConfig layers flags over the optional config file over defaults.
// Only flags given on the command line override file values.
func parseConfig(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("avgdist", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := config.Default()
	configPath := fs.String("config", "", "YAML config file")
	input := fs.String("input", "", "Edge list path or s3://bucket/key")
	compression := fs.String("compression", defaults.Compression, "Input compression: auto, none or snappy")
	useMmap := fs.Bool("mmap", false, "Read local input through mmap")
	region := fs.String("s3-region", "", "AWS region for s3:// input")
	workers := fs.Int("workers", defaults.Workers, "Number of BFS workers")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error (default $LOG_LEVEL, else warn)")
	metricsFile := fs.String("metrics-file", "", "Write Prometheus metrics to this file after the run")
	summary := fs.Bool("summary", false, "Print a run summary to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "compression":
			cfg.Compression = *compression
		case "mmap":
			cfg.UseMmap = *useMmap
		case "s3-region":
			cfg.S3Region = *region
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.LogLevel = *logLevel
		case "metrics-file":
			cfg.MetricsFile = *metricsFile
		case "summary":
			cfg.Summary = *summary
		}
	})

	// A single positional argument is accepted as the input path.
	switch fs.NArg() {
	case 0:
	case 1:
		if cfg.Input != "" && cfg.Input != fs.Arg(0) {
			return nil, fmt.Errorf("%w: input given both as --input and as an argument", config.ErrInvalidConfig)
		}
		cfg.Input = fs.Arg(0)
	default:
		return nil, fmt.Errorf("%w: unexpected arguments %v", config.ErrInvalidConfig, fs.Args()[1:])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// compute runs load, build and traverse, recording each stage.
func compute(ctx context.Context, cfg *config.Config, logger logging.Logger, reg *metrics.Registry) (report.Summary, error) {
	summary := report.Summary{Input: cfg.Input}

	op := logging.StartTimer(logger, "input loaded", logging.Stage("load"), logging.Input(cfg.Input))
	parsed, err := edgelist.Load(ctx, cfg.Source())
	if err != nil {
		op.EndError(err)
		return summary, err
	}
	reg.RecordStage("load", op.End(
		logging.Int("lines", parsed.Lines),
		logging.Int("skipped", parsed.Skipped),
		logging.Int("edges", len(parsed.Edges)),
	))
	reg.RecordInput(parsed)
	summary.Parsed = parsed
	if parsed.Skipped > 0 {
		logger.Warn("skipped malformed lines", logging.Int("skipped", parsed.Skipped))
	}

	op = logging.StartTimer(logger, "graph built", logging.Stage("build"))
	g := graph.Build(parsed.Edges)
	parsed.Edges = nil
	summary.Graph = g.GetStatistics()
	reg.RecordStage("build", op.End(
		logging.Uint64("vertices", summary.Graph.VertexCount),
		logging.Uint64("arcs", summary.Graph.EdgeCount),
	))
	reg.RecordGraph(summary.Graph)

	traverseLog := logger.With(logging.Stage("traverse"), logging.Workers(cfg.Workers))
	op = logging.StartTimer(traverseLog, "distances aggregated")
	result, err := algorithms.Compute(ctx, g, algorithms.Options{
		Workers: cfg.Workers,
		OnSource: func(s algorithms.SourceStats) {
			reg.RecordSource(s)
			traverseLog.Debug("source traversed", logging.Vertex(s.Source), logging.Pairs(s.Pairs))
		},
	})
	if err != nil {
		op.EndError(err)
		return summary, err
	}
	reg.RecordStage("traverse", op.End(
		logging.Pairs(result.Pairs),
		logging.Float64("average", result.Average),
	))
	reg.RecordResult(result)
	summary.Result = result

	return summary, nil
}
