package indicator

import (
	"math"
	"math/rand"
)

// randomWalk returns a seeded positive price path.
func randomWalk(seed int64, count int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	prices := make([]float64, count)
	price := 100.0

	for i := range prices {
		price *= 1 + 0.02*rng.NormFloat64()
		if price <= 0 {
			price = 1
		}

		prices[i] = price
	}

	return prices
}

// bruteSMA averages the trailing window of at most length prices.
func bruteSMA(prices []float64, length int) float64 {
	window := prices[windowStart(len(prices), length):]

	sum := 0.0
	for _, p := range window {
		sum += p
	}

	return sum / float64(len(window))
}

// bruteEMA folds the whole series from scratch.
func bruteEMA(prices []float64, alpha float64) float64 {
	value := prices[0]
	for _, p := range prices[1:] {
		value = p*alpha + value*(1-alpha)
	}

	return value
}

func relativeDiff(a, b float64) float64 {
	return math.Abs(a-b) / math.Max(1, math.Abs(b))
}
