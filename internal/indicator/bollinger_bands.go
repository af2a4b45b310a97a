package indicator

import (
	"math"
	"slices"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// Band is one Bollinger Bands reading.
type Band struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// BollingerBands computes mean ± numStdDev population standard deviations
// over the last min(window, observed) prices.
type BollingerBands struct {
	window    int
	numStdDev float64
	history   []Band
}

// NewBollingerBands creates Bollinger Bands over window prices.
func NewBollingerBands(window int, numStdDev float64) (*BollingerBands, error) {
	if window <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "window must be a positive integer, got %d", window)
	}

	if numStdDev <= 0 || math.IsNaN(numStdDev) || math.IsInf(numStdDev, 0) {
		return nil, errors.Newf(errors.ErrCodeInvalidStdDev, "numStdDev must be a positive number, got %v", numStdDev)
	}

	return &BollingerBands{
		window:    window,
		numStdDev: numStdDev,
		history:   nil,
	}, nil
}

// Name returns the name of the indicator.
func (bb *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Window returns the configured window.
func (bb *BollingerBands) Window() int {
	return bb.window
}

// Warm reports whether seen holds a full window.
func (bb *BollingerBands) Warm(seen []float64) bool {
	return len(seen) >= bb.window
}

// Update implements Indicator.
func (bb *BollingerBands) Update(seen []float64) Band {
	if len(seen) == 0 {
		return Band{Upper: math.NaN(), Middle: math.NaN(), Lower: math.NaN()}
	}

	band := bb.calculateBands(seen[windowStart(len(seen), bb.window):])
	bb.history = append(bb.history, band)

	return band
}

// History implements Indicator.
func (bb *BollingerBands) History() []Band {
	return slices.Clone(bb.history)
}

// calculateBands recomputes the bands over a window bounded by bb.window.
func (bb *BollingerBands) calculateBands(window []float64) Band {
	var sum float64
	for _, p := range window {
		sum += p
	}

	middle := sum / float64(len(window))

	var squaredDiffSum float64

	for _, p := range window {
		diff := p - middle
		squaredDiffSum += diff * diff
	}

	stdDev := math.Sqrt(squaredDiffSum / float64(len(window)))

	return Band{
		Upper:  middle + bb.numStdDev*stdDev,
		Middle: middle,
		Lower:  middle - bb.numStdDev*stdDev,
	}
}
