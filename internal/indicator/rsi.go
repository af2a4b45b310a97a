package indicator

import (
	"slices"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// NeutralRSI is reported until two prices were observed and when the window held no movement.
const NeutralRSI = 50.0

// RSI is the Relative Strength Index over the last min(window, observed-1)
// percentage price changes.
//
//	RSI = 100 - 100 / (1 + avgGain/avgLoss)
//
// Gains and losses are both non-negative, so the value stays in [0, 100]
// without clamping. A flat window gives NeutralRSI and a window without
// losses gives 100.
type RSI struct {
	window  int
	history []float64
}

// NewRSI creates an RSI over window price changes.
func NewRSI(window int) (*RSI, error) {
	if window <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "window must be a positive integer, got %d", window)
	}

	return &RSI{
		window:  window,
		history: nil,
	}, nil
}

// Name returns the name of the indicator.
func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Window returns the configured window.
func (r *RSI) Window() int {
	return r.window
}

// Update implements Indicator.
func (r *RSI) Update(seen []float64) float64 {
	value := NeutralRSI
	if len(seen) >= 2 {
		value = r.calculate(seen)
	}

	r.history = append(r.history, value)

	return value
}

// History implements Indicator.
func (r *RSI) History() []float64 {
	return slices.Clone(r.history)
}

func (r *RSI) calculate(seen []float64) float64 {
	// window+1 prices give window changes
	prices := seen[windowStart(len(seen), r.window+1):]
	changes := len(prices) - 1

	var gains, losses float64

	for i := 1; i < len(prices); i++ {
		previous := prices[i-1]
		if previous <= 0 {
			// no meaningful percentage change from a non-positive price
			continue
		}

		change := (prices[i] - previous) / previous
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(changes)
	avgLoss := losses / float64(changes)

	switch {
	case avgGain == 0 && avgLoss == 0:
		return NeutralRSI
	case avgLoss == 0:
		return 100
	default:
		return 100 - 100/(1+avgGain/avgLoss)
	}
}
