// Package indicator holds streaming technical indicators.
//
// Every indicator owns its running aggregates and its own value history. Update
// is called once per newly observed price with the full append-only price
// history (newest last) and returns the value computed for that price.
// Indicators never withhold a value: while fewer points than the configured
// window exist, the window shrinks to what is available.
package indicator

import "github.com/rxtech-lab/argo-backtest/internal/types"

// Indicator is a stateful computation producing one value of type T per observed price.
type Indicator[T any] interface {
	// Name returns the name of the indicator.
	Name() types.IndicatorType
	// Update consumes the observed prices and returns the newest value.
	Update(seen []float64) T
	// History returns a copy of every value produced so far.
	History() []T
}

// windowStart returns the first index of the trailing window of size length in a series of n points.
func windowStart(n, length int) int {
	if n <= length {
		return 0
	}

	return n - length
}
