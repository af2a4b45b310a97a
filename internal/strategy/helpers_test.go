package strategy

import (
	"math/rand"
)

// sequenceSource replays fixed draws, cycling when exhausted.
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++

	return v
}

func randomWalk(seed int64, count int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	prices := make([]float64, count)
	price := 100.0

	for i := range prices {
		price *= 1 + 0.03*rng.NormFloat64()
		if price <= 0 {
			price = 1
		}

		prices[i] = price
	}

	return prices
}

func feed(s Strategy, prices []float64) {
	for _, p := range prices {
		s.GiveDataPoint(p)
	}
}
