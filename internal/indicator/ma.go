package indicator

import (
	"math"
	"slices"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// SMA is a simple moving average over a fixed number of prices.
//
// Until length prices were observed the average covers all of them. After
// that each value is derived from the previous one:
//
//	next = previous + (newest - droppedOldest) / length
type SMA struct {
	length  int
	warmSum float64
	history []float64
}

// NewSMA creates a simple moving average over length prices.
func NewSMA(length int) (*SMA, error) {
	if length <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "length must be a positive integer, got %d", length)
	}

	return &SMA{
		length:  length,
		warmSum: 0,
		history: nil,
	}, nil
}

// Name returns the name of the indicator.
func (s *SMA) Name() types.IndicatorType {
	return types.IndicatorTypeSMA
}

// Length returns the window length.
func (s *SMA) Length() int {
	return s.length
}

// Update implements Indicator.
func (s *SMA) Update(seen []float64) float64 {
	n := len(seen)
	if n == 0 {
		return math.NaN()
	}

	newest := seen[n-1]

	var value float64

	if n <= s.length {
		s.warmSum += newest
		value = s.warmSum / float64(n)
	} else {
		dropped := seen[n-1-s.length]
		value = s.history[len(s.history)-1] + (newest-dropped)/float64(s.length)
	}

	s.history = append(s.history, value)

	return value
}

// History implements Indicator.
func (s *SMA) History() []float64 {
	return slices.Clone(s.history)
}
