// Package metrics scores worth histories.
//
// Every function expects a chronological worth history of at least two points
// and returns *errors.InsufficientDataError otherwise. Undefined results
// (zero variance, zero drawdown, zero initial worth) are reported as NaN.
package metrics

import (
	"math"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// DefaultPeriodsPerYear is the number of trading days in a year.
const DefaultPeriodsPerYear = 252

// Config controls the conventions of the computed metrics.
type Config struct {
	// RiskFreeRate is the per-period risk-free return subtracted in the Sharpe ratio.
	RiskFreeRate float64
	// AnnualizeSharpe multiplies the Sharpe ratio by sqrt(PeriodsPerYear).
	AnnualizeSharpe bool
	// PeriodsPerYear is used by the Sharpe annualization and the CAGR exponent.
	PeriodsPerYear int
}

// DefaultConfig returns a daily convention without annualization.
func DefaultConfig() Config {
	return Config{
		RiskFreeRate:    0,
		AnnualizeSharpe: false,
		PeriodsPerYear:  DefaultPeriodsPerYear,
	}
}

func (c Config) periodsPerYear() float64 {
	if c.PeriodsPerYear <= 0 {
		return DefaultPeriodsPerYear
	}

	return float64(c.PeriodsPerYear)
}

func requirePoints(name string, history []float64) error {
	if len(history) < 2 {
		return errors.NewInsufficientDataErrorf(2, len(history), "%s needs at least %d worth points, got %d", name, 2, len(history))
	}

	return nil
}

// Returns computes r[i] = h[i]/h[i-1] - 1.
func Returns(history []float64) ([]float64, error) {
	if err := requirePoints("returns", history); err != nil {
		return nil, err
	}

	returns := make([]float64, len(history)-1)
	for i := 1; i < len(history); i++ {
		returns[i-1] = history[i]/history[i-1] - 1
	}

	return returns, nil
}

// Sharpe computes (mean(r) - riskFree) / std(r) using the population standard deviation.
func Sharpe(history []float64, cfg Config) (float64, error) {
	returns, err := Returns(history)
	if err != nil {
		return 0, err
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}

	mean /= float64(len(returns))

	variance := 0.0

	for _, r := range returns {
		diff := r - mean
		variance += diff * diff
	}

	stdDev := math.Sqrt(variance / float64(len(returns)))
	if stdDev == 0 {
		return math.NaN(), nil
	}

	sharpe := (mean - cfg.RiskFreeRate) / stdDev
	if cfg.AnnualizeSharpe {
		sharpe *= math.Sqrt(cfg.periodsPerYear())
	}

	return sharpe, nil
}

// MaxDrawdown computes the largest |h[i] - M| / M where M is the running maximum.
// Points where the running maximum is not positive are skipped.
func MaxDrawdown(history []float64) (float64, error) {
	if err := requirePoints("max drawdown", history); err != nil {
		return 0, err
	}

	peak := history[0]
	maxDrawdown := 0.0

	for _, worth := range history {
		peak = math.Max(peak, worth)
		if peak <= 0 {
			continue
		}

		maxDrawdown = math.Max(maxDrawdown, math.Abs(worth-peak)/peak)
	}

	return maxDrawdown, nil
}

// CAGR computes (h[-1]/h[0])^(periodsPerYear/len(h)) - 1.
func CAGR(history []float64, cfg Config) (float64, error) {
	if err := requirePoints("cagr", history); err != nil {
		return 0, err
	}

	if history[0] == 0 {
		return math.NaN(), nil
	}

	growth := history[len(history)-1] / history[0]

	return math.Pow(growth, cfg.periodsPerYear()/float64(len(history))) - 1, nil
}

// Calmar computes CAGR / |MaxDrawdown|. It is NaN when there was no drawdown.
func Calmar(history []float64, cfg Config) (float64, error) {
	cagr, err := CAGR(history, cfg)
	if err != nil {
		return 0, err
	}

	maxDrawdown, err := MaxDrawdown(history)
	if err != nil {
		return 0, err
	}

	if maxDrawdown == 0 {
		return math.NaN(), nil
	}

	return cagr / math.Abs(maxDrawdown), nil
}

// AverageTrade computes the mean return between consecutive trades, in percent.
//
// balanceHistory includes the initial balance, so it is one longer than the
// complete worth history. A trade happened on step i when the balance changed
// from balanceHistory[i] to balanceHistory[i+1]; its worth is worthHistory[i].
// Each trade is measured against the previous trade, the first one against
// worthHistory[0]. No trades gives 0.
func AverageTrade(balanceHistory, worthHistory []float64) (float64, error) {
	if err := requirePoints("average trade", worthHistory); err != nil {
		return 0, err
	}

	if len(balanceHistory) != len(worthHistory)+1 {
		return 0, errors.Newf(errors.ErrCodeMetricsCalculation,
			"balance history must be one longer than worth history, got %d and %d", len(balanceHistory), len(worthHistory))
	}

	reference := worthHistory[0]
	total := 0.0
	trades := 0

	for i, worth := range worthHistory {
		if balanceHistory[i+1] == balanceHistory[i] {
			continue
		}

		if reference != 0 {
			total += worth/reference - 1
		}

		trades++
		reference = worth
	}

	if trades == 0 {
		return 0, nil
	}

	return total / float64(trades) * 100, nil
}

// OverallMultiplier computes h[-1] / h[0].
func OverallMultiplier(history []float64) (float64, error) {
	if err := requirePoints("overall multiplier", history); err != nil {
		return 0, err
	}

	if history[0] == 0 {
		return math.NaN(), nil
	}

	return history[len(history)-1] / history[0], nil
}

// Compute fills every metric. balanceHistory may be nil, in which case
// AverageTrade is 0.
func Compute(balanceHistory, worthHistory []float64, cfg Config) (types.Metrics, error) {
	var (
		m   types.Metrics
		err error
	)

	if m.Sharpe, err = Sharpe(worthHistory, cfg); err != nil {
		return m, err
	}

	if m.MaxDrawdown, err = MaxDrawdown(worthHistory); err != nil {
		return m, err
	}

	if m.CAGR, err = CAGR(worthHistory, cfg); err != nil {
		return m, err
	}

	if m.Calmar, err = Calmar(worthHistory, cfg); err != nil {
		return m, err
	}

	if m.OverallMultiplier, err = OverallMultiplier(worthHistory); err != nil {
		return m, err
	}

	if balanceHistory != nil {
		if m.AverageTrade, err = AverageTrade(balanceHistory, worthHistory); err != nil {
			return m, err
		}
	}

	return m, nil
}
