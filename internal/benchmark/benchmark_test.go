package benchmark

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-backtest/internal/strategy"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

type BenchmarkTestSuite struct {
	suite.Suite
}

func TestBenchmarkSuite(t *testing.T) {
	suite.Run(t, new(BenchmarkTestSuite))
}

func (suite *BenchmarkTestSuite) TestTrueOptimalRidesEveryMove() {
	history := TrueOptimal([]float64{10, 20, 10, 20}, 100, 0)

	// buy at 10, sell at 20, buy at 10, value at 20
	suite.InDeltaSlice([]float64{100, 200, 200, 400}, history, 1e-12)
}

func (suite *BenchmarkTestSuite) TestTrueOptimalFlatAndEmpty() {
	suite.Equal([]float64{150, 150, 150}, TrueOptimal([]float64{10, 10, 10}, 100, 5))
	suite.Empty(TrueOptimal(nil, 100, 5))
}

func (suite *BenchmarkTestSuite) TestTrueOptimalSkipsBuyAtZeroPrice() {
	history := TrueOptimal([]float64{0, 5}, 100, 0)
	suite.Equal([]float64{100, 100}, history)
}

func (suite *BenchmarkTestSuite) TestBuyAndHold() {
	history := BuyAndHold([]float64{10, 20, 5}, 100, 5)
	suite.InDeltaSlice([]float64{150, 300, 75}, history, 1e-12)
	suite.Nil(BuyAndHold(nil, 100, 5))
}

func (suite *BenchmarkTestSuite) TestTrueOptimalBoundsCausalStrategies() {
	for seed := int64(1); seed <= 5; seed++ {
		prices := randomWalk(seed, 200)
		oracle := TrueOptimal(prices, 1000, 10)
		best := oracle[len(oracle)-1]

		suite.GreaterOrEqual(best, BuyAndHold(prices, 1000, 10)[len(prices)-1])

		for _, tag := range types.AllStrategyTypes {
			s, err := strategy.New(tag.(types.StrategyType), 1000, 10, nil,
				strategy.WithRandomSource(rand.New(rand.NewSource(seed))))
			suite.Require().NoError(err)

			for _, p := range prices {
				s.GiveDataPoint(p)
			}

			complete := s.CompleteWorthHistory()
			suite.Len(complete, len(oracle))
			suite.GreaterOrEqual(best+1e-6, complete[len(complete)-1], "seed %d strategy %s", seed, tag)
		}
	}
}

func randomWalk(seed int64, count int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	prices := make([]float64, count)
	price := 50.0

	for i := range prices {
		price *= 1 + 0.02*rng.NormFloat64()
		prices[i] = price
	}

	return prices
}
