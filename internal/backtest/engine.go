package backtest

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rxtech-lab/argo-backtest/internal/benchmark"
	"github.com/rxtech-lab/argo-backtest/internal/datasource"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/metrics"
	"github.com/rxtech-lab/argo-backtest/internal/strategy"
	"github.com/rxtech-lab/argo-backtest/internal/telemetry"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/internal/version"
	"github.com/rxtech-lab/argo-backtest/internal/writer"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// Lifecycle callback types for backtest phases.
// Runs execute in parallel, so callbacks must be safe for concurrent use.
// Callbacks with an error return abort the backtest when they return an error.

// OnRunStartCallback is called when a run begins.
type OnRunStartCallback func(runID string, runIndex int, runName string, totalPoints int) error

// OnRunEndCallback is called when a run finished successfully.
type OnRunEndCallback func(runIndex int, runName string, finalWorth float64)

// OnProcessDataCallback is called for each price a run consumed.
type OnProcessDataCallback func(runIndex int, current int, total int) error

// LifecycleCallbacks holds all lifecycle callback functions for the backtest engine.
// All fields are pointers - nil means no callback will be invoked.
type LifecycleCallbacks struct {
	OnRunStart    *OnRunStartCallback
	OnRunEnd      *OnRunEndCallback
	OnProcessData *OnProcessDataCallback
}

// StrategyBuilder creates the strategy of one run. It is replaceable for tests.
type StrategyBuilder func(run RunConfig, runIndex int, startingBalance, startingShares float64) (strategy.Strategy, error)

// Engine runs every configured strategy over one price series.
type Engine struct {
	config    Config
	log       *logger.Logger
	telemetry *telemetry.Telemetry
	writer    optional.Option[writer.ResultWriter]
	build     StrategyBuilder
}

// NewEngine validates config and checks that it was written for this engine version.
func NewEngine(config Config, log *logger.Logger) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := version.CheckConfigCompatibility(version.GetVersion(), config.Version); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	e := &Engine{
		config:    config,
		log:       log,
		telemetry: telemetry.New(),
		writer:    optional.None[writer.ResultWriter](),
		build:     nil,
	}
	e.build = e.defaultBuilder

	return e, nil
}

// SetResultWriter makes the engine write histories and stats.
func (e *Engine) SetResultWriter(w writer.ResultWriter) {
	e.writer = optional.Some(w)
}

// SetStrategyBuilder replaces the strategy factory.
func (e *Engine) SetStrategyBuilder(build StrategyBuilder) {
	e.build = build
}

// Telemetry returns the collectors updated by the engine.
func (e *Engine) Telemetry() *telemetry.Telemetry {
	return e.telemetry
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// defaultBuilder gives random strategies their own source, seeded from the
// config seed plus the run index when a seed is set.
func (e *Engine) defaultBuilder(run RunConfig, runIndex int, startingBalance, startingShares float64) (strategy.Strategy, error) {
	seed := time.Now().UnixNano() + int64(runIndex)
	if e.config.Seed.IsSome() {
		seed = e.config.Seed.Unwrap() + int64(runIndex)
	}

	//nolint:gosec // simulation randomness
	source := rand.New(rand.NewSource(seed))

	return strategy.New(run.Strategy, startingBalance, startingShares, run.Params, strategy.WithRandomSource(source))
}

type preparedRun struct {
	index    int
	config   RunConfig
	strategy strategy.Strategy
}

// Run loads the price series, runs every strategy and computes the benchmarks.
// All strategies are built before any of them runs, so a bad run config fails
// the backtest before work starts.
func (e *Engine) Run(ctx context.Context, source datasource.Source, callbacks LifecycleCallbacks) (types.BacktestStats, error) {
	stats := types.BacktestStats{
		Version:   version.GetVersion(),
		Timestamp: time.Now(),
		DataPath:  source.Describe(),
		Points:    0,
		Benchmark: types.BenchmarkStats{},
		Runs:      nil,
	}

	points, err := source.Load(ctx)
	if err != nil {
		e.log.Error("Failed to load prices", zap.String("source", source.Describe()), zap.Error(err))

		return stats, err
	}

	prices := datasource.Values(points)
	if len(prices) < 2 {
		return stats, errors.Newf(errors.ErrCodeBacktestNoPrices, "backtest needs at least 2 prices, got %d", len(prices))
	}

	stats.Points = len(prices)

	prepared := make([]preparedRun, len(e.config.Runs))
	for i, run := range e.config.Runs {
		s, err := e.build(run, i, e.config.StartingBalance, e.config.StartingShares)
		if err != nil {
			e.log.Error("Failed to create strategy", zap.String("run", run.Name), zap.Error(err))

			return stats, err
		}

		prepared[i] = preparedRun{index: i, config: run, strategy: s}
	}

	e.log.Info("Backtest started",
		zap.String("source", source.Describe()),
		zap.Int("points", len(prices)),
		zap.Int("runs", len(prepared)),
	)

	results := make([]types.RunStats, len(prepared))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism())

	for _, run := range prepared {
		g.Go(func() error {
			result, err := e.runOne(gctx, run, prices, callbacks)
			if err != nil {
				return err
			}

			results[run.index] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}

	stats.Runs = results

	stats.Benchmark, err = e.benchmarks(prices)
	if err != nil {
		return stats, err
	}

	if e.writer.IsSome() {
		if err := e.writer.Unwrap().WriteStats(stats); err != nil {
			e.log.Error("Failed to write stats", zap.Error(err))

			return stats, err
		}
	}

	e.log.Info("Backtest finished",
		zap.Int("runs", len(results)),
		zap.Float64("true_optimal_final_worth", stats.Benchmark.TrueOptimalFinalWorth),
	)

	return stats, nil
}

func (e *Engine) parallelism() int {
	if e.config.Parallelism > 0 {
		return e.config.Parallelism
	}

	return runtime.NumCPU()
}

func (e *Engine) runOne(ctx context.Context, run preparedRun, prices []float64, callbacks LifecycleCallbacks) (result types.RunStats, err error) {
	runID := uuid.NewString()
	started := time.Now()
	s := run.strategy

	defer func() {
		e.telemetry.ObserveRun(s.Type(), run.config.Name, result.FinalWorth, time.Since(started), err)
	}()

	log := e.log.With(
		zap.String("run_id", runID),
		zap.String("run", run.config.Name),
		zap.String("strategy", string(s.Type())),
	)

	if callbacks.OnRunStart != nil {
		if err := (*callbacks.OnRunStart)(runID, run.index, run.config.Name, len(prices)); err != nil {
			return result, err
		}
	}

	log.Debug("Run started", zap.Int("points", len(prices)))

	var history *writer.HistoryWriter
	if e.writer.IsSome() {
		history, err = e.writer.Unwrap().OpenHistory(run.config.Name)
		if err != nil {
			return result, err
		}
	}

	onProgress := func(snapshot types.Snapshot) error {
		e.telemetry.ObserveStep(s.Type(), snapshot.Action)

		if history != nil {
			if err := history.Write(snapshot); err != nil {
				return err
			}
		}

		if callbacks.OnProcessData != nil {
			return (*callbacks.OnProcessData)(run.index, snapshot.Index, len(prices))
		}

		return nil
	}

	err = Run(ctx, s, prices, optional.Some[ProgressCallback](onProgress))

	if history != nil {
		if closeErr := history.Close(); err == nil {
			err = closeErr
		}
	}

	if err != nil {
		log.Error("Run failed", zap.Error(err))

		return result, err
	}

	worth := s.CompleteWorthHistory()

	m, err := metrics.Compute(s.BalanceHistory(), worth, e.config.MetricsConfig())
	if err != nil {
		return result, errors.Wrapf(errors.ErrCodeMetricsCalculation, err, "failed to compute metrics of %s", run.config.Name)
	}

	result = types.RunStats{
		ID:              runID,
		Name:            run.config.Name,
		Strategy:        s.Type(),
		Params:          run.config.Params,
		StartingBalance: e.config.StartingBalance,
		StartingShares:  e.config.StartingShares,
		FinalBalance:    s.CurrentBalance(),
		FinalShares:     s.CurrentShares(),
		FinalWorth:      worth[len(worth)-1],
		NumberOfTrades:  lo.CountBy(s.ActionHistory(), types.ActionType.IsTrade),
		Metrics:         m,
		HistoryFilePath: "",
	}

	if history != nil {
		result.HistoryFilePath = history.Path()
	}

	log.Info("Run finished",
		zap.Int("points", len(prices)),
		zap.Int("trades", result.NumberOfTrades),
		zap.Float64("final_worth", result.FinalWorth),
	)

	if callbacks.OnRunEnd != nil {
		(*callbacks.OnRunEnd)(run.index, run.config.Name, result.FinalWorth)
	}

	return result, nil
}

func (e *Engine) benchmarks(prices []float64) (types.BenchmarkStats, error) {
	var stats types.BenchmarkStats

	cfg := e.config.MetricsConfig()
	balance, shares := e.config.StartingBalance, e.config.StartingShares

	oracle := benchmark.TrueOptimal(prices, balance, shares)

	oracleMetrics, err := metrics.Compute(nil, oracle, cfg)
	if err != nil {
		return stats, errors.Wrap(errors.ErrCodeMetricsCalculation, "failed to compute true optimal metrics", err)
	}

	hold := benchmark.BuyAndHold(prices, balance, shares)

	holdMetrics, err := metrics.Compute(nil, hold, cfg)
	if err != nil {
		return stats, errors.Wrap(errors.ErrCodeMetricsCalculation, "failed to compute buy and hold metrics", err)
	}

	stats.TrueOptimal = oracleMetrics
	stats.TrueOptimalFinalWorth = oracle[len(oracle)-1]
	stats.BuyAndHold = holdMetrics
	stats.BuyAndHoldFinalWorth = hold[len(hold)-1]

	return stats, nil
}
