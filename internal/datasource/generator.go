package datasource

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// GeneratorConfig configures a synthetic price series.
type GeneratorConfig struct {
	// StartTime is the date of the first point
	StartTime time.Time `yaml:"start_time" json:"start_time"`
	// Interval is the duration between points
	Interval time.Duration `yaml:"interval" json:"interval"`
	// Count is the number of points to generate
	Count int `yaml:"count" json:"count" validate:"required,gt=0"`
	// InitialPrice is the starting price
	InitialPrice float64 `yaml:"initial_price" json:"initial_price" validate:"required,gt=0"`
	// Volatility controls price movement (0.01 = 1% typical daily volatility)
	Volatility float64 `yaml:"volatility" json:"volatility" validate:"gte=0"`
	// Trend is the total drift spread across the series (-0.1 to 0.1 for bearish to bullish)
	Trend float64 `yaml:"trend" json:"trend"`
}

// DefaultGeneratorConfig returns one trading year of daily prices.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		StartTime:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Interval:     24 * time.Hour,
		Count:        252,
		InitialPrice: 100.0,
		Volatility:   0.02, // 2% per step
		Trend:        0.0,  // neutral
	}
}

const priceDecimals = 4

// minimumTick is the smallest price the generator emits.
var minimumTick = decimal.New(1, -priceDecimals).InexactFloat64()

// Generator produces seeded geometric-Brownian-motion price series.
type Generator struct {
	config GeneratorConfig
	seed   int64
}

// NewGenerator creates a generator. Use a fixed seed for reproducible series.
func NewGenerator(config GeneratorConfig, seed int64) *Generator {
	return &Generator{config: config, seed: seed}
}

// Describe implements Source.
func (g *Generator) Describe() string {
	return fmt.Sprintf("gbm(seed=%d,count=%d)", g.seed, g.config.Count)
}

// Load implements Source. Every call returns the same series.
func (g *Generator) Load(ctx context.Context) ([]Point, error) {
	if g.config.Count <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "count must be positive, got %d", g.config.Count)
	}

	if !(g.config.InitialPrice > 0) {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "initial price must be positive, got %v", g.config.InitialPrice)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	//nolint:gosec // synthetic data
	rng := rand.New(rand.NewSource(g.seed))
	points := make([]Point, g.config.Count)
	price := g.config.InitialPrice
	current := g.config.StartTime
	drift := g.config.Trend / float64(g.config.Count) // Distribute trend across points

	for i := range points {
		points[i] = Point{
			Date:  current.Format(time.DateOnly),
			Value: roundPrice(price),
		}

		// Using Box-Muller transform for normal distribution
		u1 := 1 - rng.Float64()
		u2 := rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		next := price * (1 + g.config.Volatility*z + drift)
		if next <= 0 {
			next = price * 0.99 // Prevent negative prices
		}

		price = next
		current = current.Add(g.config.Interval)
	}

	return points, nil
}

// roundPrice rounds to priceDecimals places. Prices that would round to zero
// become one tick so the series stays positive.
func roundPrice(price float64) float64 {
	rounded := decimal.NewFromFloat(price).Round(priceDecimals).InexactFloat64()
	if rounded <= 0 {
		return minimumTick
	}

	return rounded
}
