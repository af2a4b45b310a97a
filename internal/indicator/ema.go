package indicator

import (
	"math"
	"slices"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// DefaultSmoothingFactor is the conventional EMA smoothing, giving alpha = 2 / (length + 1).
const DefaultSmoothingFactor = 2.0

// EMA is an exponential moving average seeded with the first observed price.
type EMA struct {
	length    int
	smoothing float64
	alpha     float64
	history   []float64
}

// NewEMA creates an exponential moving average where alpha = smoothing / (1 + length).
func NewEMA(length int, smoothing float64) (*EMA, error) {
	if length <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "length must be a positive integer, got %d", length)
	}

	alpha := smoothing / (1 + float64(length))
	if smoothing <= 0 || alpha > 1 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "smoothing factor %v gives alpha %v outside (0, 1]", smoothing, alpha)
	}

	return &EMA{
		length:    length,
		smoothing: smoothing,
		alpha:     alpha,
		history:   nil,
	}, nil
}

// Name returns the name of the indicator.
func (e *EMA) Name() types.IndicatorType {
	return types.IndicatorTypeEMA
}

// Length returns the configured length.
func (e *EMA) Length() int {
	return e.length
}

// Alpha returns the weight given to the newest price.
func (e *EMA) Alpha() float64 {
	return e.alpha
}

// Update implements Indicator.
func (e *EMA) Update(seen []float64) float64 {
	if len(seen) == 0 {
		return math.NaN()
	}

	newest := seen[len(seen)-1]

	value := newest
	if len(e.history) > 0 {
		value = newest*e.alpha + e.history[len(e.history)-1]*(1-e.alpha)
	}

	e.history = append(e.history, value)

	return value
}

// History implements Indicator.
func (e *EMA) History() []float64 {
	return slices.Clone(e.history)
}
