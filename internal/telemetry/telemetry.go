// Package telemetry holds the Prometheus collectors of the backtest engine.
//
// Exposed metrics:
//   - backtest_points_total{strategy}             prices consumed
//   - backtest_decisions_total{strategy,action}   decisions taken (buy|sell|hold)
//   - backtest_runs_total{strategy,status}        finished runs (ok|error)
//   - backtest_final_worth{run}                   final worth of a run
//   - backtest_run_duration_seconds{strategy}     wall time of a run
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// Status labels of backtest_runs_total.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Telemetry owns a registry so that several engines never share series.
type Telemetry struct {
	registry *prometheus.Registry

	points     *prometheus.CounterVec
	decisions  *prometheus.CounterVec
	runs       *prometheus.CounterVec
	finalWorth *prometheus.GaugeVec
	duration   *prometheus.HistogramVec
}

// New creates and registers every collector.
func New() *Telemetry {
	t := &Telemetry{
		registry: prometheus.NewRegistry(),
		points: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backtest_points_total",
				Help: "Prices consumed by strategies",
			},
			[]string{"strategy"},
		),
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backtest_decisions_total",
				Help: "Decisions taken by strategies",
			},
			[]string{"strategy", "action"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backtest_runs_total",
				Help: "Finished backtest runs by status",
			},
			[]string{"strategy", "status"},
		),
		finalWorth: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "backtest_final_worth",
				Help: "Final worth of a run at the last price",
			},
			[]string{"run"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backtest_run_duration_seconds",
				Help:    "Wall time of a backtest run",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
			[]string{"strategy"},
		),
	}

	t.registry.MustRegister(t.points, t.decisions, t.runs, t.finalWorth, t.duration)

	return t
}

// Registry returns the registry holding every collector.
func (t *Telemetry) Registry() *prometheus.Registry {
	return t.registry
}

// ObserveStep records one consumed price.
func (t *Telemetry) ObserveStep(strategy types.StrategyType, action types.ActionType) {
	t.points.WithLabelValues(string(strategy)).Inc()
	t.decisions.WithLabelValues(string(strategy), string(action)).Inc()
}

// ObserveRun records a finished run. finalWorth is ignored when err is set.
func (t *Telemetry) ObserveRun(strategy types.StrategyType, run string, finalWorth float64, elapsed time.Duration, err error) {
	t.duration.WithLabelValues(string(strategy)).Observe(elapsed.Seconds())

	if err != nil {
		t.runs.WithLabelValues(string(strategy), StatusError).Inc()

		return
	}

	t.runs.WithLabelValues(string(strategy), StatusOK).Inc()
	t.finalWorth.WithLabelValues(run).Set(finalWorth)
}

// WriteToTextfile writes every metric in the text exposition format, for
// the node exporter textfile collector.
func (t *Telemetry) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, t.registry)
}
