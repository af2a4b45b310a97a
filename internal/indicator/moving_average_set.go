package indicator

import (
	"slices"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// MovingAverageSet tracks one moving average per length, ordered short to long.
type MovingAverageSet struct {
	kind       types.IndicatorType
	lengths    []int
	indicators map[int]Indicator[float64]
	current    []float64
}

// NewMovingAverageSet creates SMAs or EMAs for the given lengths.
// Lengths must be positive and strictly increasing. smoothing is only used for EMAs.
func NewMovingAverageSet(kind types.IndicatorType, lengths []int, smoothing float64) (*MovingAverageSet, error) {
	if len(lengths) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLength, "at least one moving average length is required")
	}

	for i := 1; i < len(lengths); i++ {
		if lengths[i] <= lengths[i-1] {
			return nil, errors.Newf(errors.ErrCodeInvalidLength, "moving average lengths must be strictly increasing, got %v", lengths)
		}
	}

	set := &MovingAverageSet{
		kind:       kind,
		lengths:    slices.Clone(lengths),
		indicators: make(map[int]Indicator[float64], len(lengths)),
		current:    nil,
	}

	for _, length := range lengths {
		var (
			ma  Indicator[float64]
			err error
		)

		switch kind {
		case types.IndicatorTypeSMA:
			ma, err = NewSMA(length)
		case types.IndicatorTypeEMA:
			ma, err = NewEMA(length, smoothing)
		default:
			return nil, errors.Newf(errors.ErrCodeInvalidType, "unsupported moving average type: %s", kind)
		}

		if err != nil {
			return nil, err
		}

		set.indicators[length] = ma
	}

	return set, nil
}

// Kind returns the moving average type of the set.
func (s *MovingAverageSet) Kind() types.IndicatorType {
	return s.kind
}

// Lengths returns the lengths, short to long.
func (s *MovingAverageSet) Lengths() []int {
	return slices.Clone(s.lengths)
}

// Update advances every average and returns the newest values, short to long.
func (s *MovingAverageSet) Update(seen []float64) []float64 {
	values := make([]float64, len(s.lengths))
	for i, length := range s.lengths {
		values[i] = s.indicators[length].Update(seen)
	}

	s.current = values

	return slices.Clone(values)
}

// Current returns the values from the last Update, short to long.
func (s *MovingAverageSet) Current() []float64 {
	return slices.Clone(s.current)
}

// History returns the value history of the average with the given length.
func (s *MovingAverageSet) History(length int) ([]float64, bool) {
	ma, ok := s.indicators[length]
	if !ok {
		return nil, false
	}

	return ma.History(), true
}
