// Package datasource provides price series to the backtest engine.
package datasource

import (
	"context"

	"github.com/samber/lo"
)

// Point is one observation of a price series.
type Point struct {
	// Date is the label of the observation as found in the source, e.g. 2024-01-31.
	Date string
	// Value is the price.
	Value float64
}

// Source loads a complete price series in chronological order.
type Source interface {
	// Load returns every point of the series.
	Load(ctx context.Context) ([]Point, error)
	// Describe names the source for reports, e.g. the file path.
	Describe() string
}

// Values extracts the prices of points.
func Values(points []Point) []float64 {
	return lo.Map(points, func(p Point, _ int) float64 {
		return p.Value
	})
}
