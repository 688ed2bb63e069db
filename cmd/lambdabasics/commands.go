package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/lguimbarda/lambda-basics/flow/core"
	"github.com/lguimbarda/lambda-basics/flow/observe"
	"github.com/lguimbarda/lambda-basics/internal/config"
	"github.com/lguimbarda/lambda-basics/internal/demo"
	"github.com/lguimbarda/lambda-basics/internal/perf"
	"github.com/lguimbarda/lambda-basics/internal/points"
	"github.com/lguimbarda/lambda-basics/internal/telemetry"
)

const instrumentationName = "github.com/lguimbarda/lambda-basics"

// app holds flag values and the state shared by the commands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
	cfg    config.Config

	// shutdownMetrics flushes and stops the meter provider installed by setup.
	shutdownMetrics func(context.Context) error

	configPath string
	pointsDB   string
	resultsDB  string
	skipFailed bool
	metrics    string
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.NewTextHandler(stderr, nil)),
		cfg:    config.Default(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lambdabasics",
		Short: "Walk through map, filter, reduce and collect over a list of points",
		Long: `lambdabasics prints a series of small demonstrations of stream
processing over a fixed list of two-dimensional points. The perf
subcommand times the same computation across several pipeline libraries.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runDemo,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.pointsDB, "points-db", "",
		"sqlite file to load the points from (seeded with the sample when empty)")
	rootCmd.PersistentFlags().StringVar(&a.metrics, "metrics", "",
		"metrics exporter: none or stdout (written to stderr when the command ends)")

	perfCmd := &cobra.Command{
		Use:   "perf",
		Short: "Time the positive-x sum across pipeline implementations",
		Args:  cobra.NoArgs,
		RunE:  a.runPerf,
	}
	perfCmd.Flags().StringVar(&a.resultsDB, "results-db", "", "sqlite file to save the measurements to")
	perfCmd.Flags().BoolVar(&a.skipFailed, "skip-failed", false, "keep going when a test case panics")

	rootCmd.AddCommand(perfCmd)
	return rootCmd
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.pointsDB != "" {
		cfg.PointsDB = a.pointsDB
	}
	if a.resultsDB != "" {
		cfg.ResultsDB = a.resultsDB
	}
	if a.metrics != "" {
		cfg.MetricsExporter = a.metrics
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded", "path", a.configPath, "points_db", cfg.PointsDB,
		"metrics_exporter", cfg.MetricsExporter)

	shutdown, err := telemetry.InitMetrics(cmd.Context(), cfg.MetricsExporter, a.stderr)
	if err != nil {
		return err
	}
	a.shutdownMetrics = shutdown
	return nil
}

// teardown exports the final metric readings. It is safe to call more
// than once.
func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	return a.close(cmd.Context())
}

func (a *app) close(ctx context.Context) error {
	if a.shutdownMetrics == nil {
		return nil
	}
	shutdown := a.shutdownMetrics
	a.shutdownMetrics = nil
	if err := shutdown(ctx); err != nil {
		return fmt.Errorf("shut down metrics: %w", err)
	}
	return nil
}

func (a *app) dataset(cmd *cobra.Command) (demo.Data, error) {
	if a.cfg.PointsDB == "" {
		return demo.DefaultData(), nil
	}

	ctx := cmd.Context()
	store, err := points.OpenStore(ctx, a.cfg.PointsDB)
	if err != nil {
		return demo.Data{}, err
	}
	defer store.Close()

	pts, err := store.LoadOrSeed(ctx)
	if err != nil {
		return demo.Data{}, err
	}
	a.logger.Info("loaded points", "path", a.cfg.PointsDB, "count", len(pts))
	return demo.Data{Points: pts, Empty: points.Empty()}, nil
}

func (a *app) runDemo(cmd *cobra.Command, _ []string) error {
	data, err := a.dataset(cmd)
	if err != nil {
		return err
	}

	ctx, err := observe.WithMetrics[int](cmd.Context(), otel.Meter(instrumentationName), "demo.stream", "x")
	if err != nil {
		return err
	}
	return demo.Run(ctx, a.stdout, data)
}

func (a *app) runPerf(cmd *cobra.Command, _ []string) error {
	data, err := a.dataset(cmd)
	if err != nil {
		return err
	}

	policy := perf.FailFast
	if a.skipFailed {
		policy = perf.SkipFailed
	}
	runner := perf.NewRunner(
		perf.WithOutput(a.stdout),
		perf.WithLogger(a.logger),
		perf.WithMeter(otel.Meter(instrumentationName)),
		perf.WithFailurePolicy(policy),
	)
	perf.RegisterComparisons(runner, data.Points)

	ctx := core.WithConfig(cmd.Context(), perf.Settings{
		WarmUpCycles:    a.cfg.WarmUpCycles,
		ExecutionCycles: a.cfg.ExecutionCycles,
	})
	ms, err := runner.RunAll(ctx)
	if err != nil {
		return fmt.Errorf("timing run: %w", err)
	}

	if a.cfg.ResultsDB == "" {
		return nil
	}
	rec, err := perf.OpenRecorder(ctx, a.cfg.ResultsDB)
	if err != nil {
		return err
	}
	defer rec.Close()

	runID, err := rec.Save(ctx, ms)
	if err != nil {
		return err
	}
	a.logger.Info("saved measurements", "run_id", runID, "path", a.cfg.ResultsDB, "cases", len(ms))
	return nil
}
