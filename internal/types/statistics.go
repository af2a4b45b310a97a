package types

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Metrics is the scalar report computed from one worth history.
// Undefined values (zero variance, zero drawdown) are NaN.
type Metrics struct {
	// Sharpe ratio of per-step returns, annualized when configured.
	Sharpe float64 `yaml:"sharpe" json:"sharpe"`
	// Maximum relative decline from a running peak, in [0, 1] for positive worth.
	MaxDrawdown float64 `yaml:"max_drawdown" json:"max_drawdown"`
	// Compound annual growth rate.
	CAGR float64 `yaml:"cagr" json:"cagr"`
	// CAGR / |MaxDrawdown|.
	Calmar float64 `yaml:"calmar" json:"calmar"`
	// Mean return between consecutive trades, in percent.
	AverageTrade float64 `yaml:"average_trade" json:"average_trade"`
	// Final worth divided by initial worth.
	OverallMultiplier float64 `yaml:"overall_multiplier" json:"overall_multiplier"`
}

// RunStats is the outcome of one strategy run over one price series.
type RunStats struct {
	// ID is the unique identifier for this run.
	ID string `yaml:"id" json:"id"`
	// Name is the run name from the engine config.
	Name string `yaml:"name" json:"name"`
	// Strategy is the selector tag of the strategy.
	Strategy StrategyType `yaml:"strategy" json:"strategy"`
	// Params are the positional construction parameters.
	Params          []any   `yaml:"params,omitempty" json:"params,omitempty"`
	StartingBalance float64 `yaml:"starting_balance" json:"starting_balance"`
	StartingShares  float64 `yaml:"starting_shares" json:"starting_shares"`
	FinalBalance    float64 `yaml:"final_balance" json:"final_balance"`
	FinalShares     float64 `yaml:"final_shares" json:"final_shares"`
	FinalWorth      float64 `yaml:"final_worth" json:"final_worth"`
	// Count of steps on which the strategy bought or sold.
	NumberOfTrades int     `yaml:"number_of_trades" json:"number_of_trades"`
	Metrics        Metrics `yaml:"metrics" json:"metrics"`
	// HistoryFilePath is the path to the per-step history CSV.
	HistoryFilePath string `yaml:"history_file_path,omitempty" json:"history_file_path,omitempty"`
}

// BenchmarkStats holds the reference curves every run is compared against.
type BenchmarkStats struct {
	// TrueOptimal is the non-causal upper bound.
	TrueOptimal Metrics `yaml:"true_optimal" json:"true_optimal"`
	// TrueOptimalFinalWorth is the final worth of the non-causal upper bound.
	TrueOptimalFinalWorth float64 `yaml:"true_optimal_final_worth" json:"true_optimal_final_worth"`
	// BuyAndHold converts everything into shares on the first price and never trades again.
	BuyAndHold           Metrics `yaml:"buy_and_hold" json:"buy_and_hold"`
	BuyAndHoldFinalWorth float64 `yaml:"buy_and_hold_final_worth" json:"buy_and_hold_final_worth"`
}

// BacktestStats is everything one engine run produced.
type BacktestStats struct {
	// Version of the engine that produced the stats.
	Version string `yaml:"version" json:"version"`
	// Timestamp is when the backtest was executed.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	// DataPath is the price file, empty for generated series.
	DataPath string `yaml:"data_path,omitempty" json:"data_path,omitempty"`
	// Points is the length of the price series.
	Points    int            `yaml:"points" json:"points"`
	Benchmark BenchmarkStats `yaml:"benchmark" json:"benchmark"`
	Runs      []RunStats     `yaml:"runs" json:"runs"`
}

// WriteBacktestStats writes stats as YAML to path.
func WriteBacktestStats(path string, stats BacktestStats) error {
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal backtest stats to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backtest stats to file: %w", err)
	}

	return nil
}

// ReadBacktestStats reads stats previously written by WriteBacktestStats.
func ReadBacktestStats(path string) (BacktestStats, error) {
	var stats BacktestStats

	data, err := os.ReadFile(path)
	if err != nil {
		return stats, fmt.Errorf("failed to read backtest stats: %w", err)
	}

	if err := yaml.Unmarshal(data, &stats); err != nil {
		return stats, fmt.Errorf("failed to unmarshal backtest stats: %w", err)
	}

	return stats, nil
}
