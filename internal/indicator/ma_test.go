package indicator

import (
	"math"
	"testing"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type SMATestSuite struct {
	suite.Suite
}

func TestSMASuite(t *testing.T) {
	suite.Run(t, new(SMATestSuite))
}

func (suite *SMATestSuite) TestNewSMA() {
	sma, err := NewSMA(8)
	suite.Require().NoError(err)
	suite.Equal(8, sma.Length())
	suite.Equal(types.IndicatorTypeSMA, sma.Name())
	suite.Empty(sma.History())
}

func (suite *SMATestSuite) TestNewSMAInvalidLength() {
	for _, length := range []int{0, -3} {
		_, err := NewSMA(length)
		suite.Error(err)
		suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
		suite.Contains(err.Error(), "must be a positive integer")
	}
}

func (suite *SMATestSuite) TestWindowShrinksDuringWarmup() {
	sma, err := NewSMA(3)
	suite.Require().NoError(err)

	seen := []float64{}
	expected := []float64{10, 15, 20, 30, 40}

	for i, price := range []float64{10, 20, 30, 40, 50} {
		seen = append(seen, price)
		suite.InDelta(expected[i], sma.Update(seen), 1e-12, "step %d", i)
	}

	suite.Equal(expected, sma.History())
}

func (suite *SMATestSuite) TestIncrementalMatchesFullRecomputation() {
	prices := randomWalk(7, 400)

	for _, length := range []int{1, 2, 5, 8, 13, 21, 50, 400} {
		sma, err := NewSMA(length)
		suite.Require().NoError(err)

		for i := range prices {
			seen := prices[:i+1]
			got := sma.Update(seen)
			suite.Less(relativeDiff(got, bruteSMA(seen, length)), 1e-9, "length %d step %d", length, i)
		}
	}
}

func (suite *SMATestSuite) TestEmptyInputIsNotRecorded() {
	sma, err := NewSMA(3)
	suite.Require().NoError(err)

	suite.True(math.IsNaN(sma.Update(nil)))
	suite.Empty(sma.History())
}

func (suite *SMATestSuite) TestHistoryIsACopy() {
	sma, err := NewSMA(2)
	suite.Require().NoError(err)
	sma.Update([]float64{4})

	history := sma.History()
	history[0] = 999

	suite.Equal([]float64{4}, sma.History())
}

type EMATestSuite struct {
	suite.Suite
}

func TestEMASuite(t *testing.T) {
	suite.Run(t, new(EMATestSuite))
}

func (suite *EMATestSuite) TestNewEMA() {
	ema, err := NewEMA(9, DefaultSmoothingFactor)
	suite.Require().NoError(err)
	suite.Equal(types.IndicatorTypeEMA, ema.Name())
	suite.Equal(9, ema.Length())
	suite.InDelta(0.2, ema.Alpha(), 1e-12)
}

func (suite *EMATestSuite) TestNewEMAInvalid() {
	_, err := NewEMA(0, DefaultSmoothingFactor)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	_, err = NewEMA(5, 0)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	// alpha = 10 / 3 > 1
	_, err = NewEMA(2, 10)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *EMATestSuite) TestSeedsWithFirstPrice() {
	ema, err := NewEMA(3, DefaultSmoothingFactor)
	suite.Require().NoError(err)

	// alpha = 0.5
	suite.Equal(10.0, ema.Update([]float64{10}))
	suite.InDelta(15.0, ema.Update([]float64{10, 20}), 1e-12)
	suite.InDelta(12.5, ema.Update([]float64{10, 20, 10}), 1e-12)
	suite.Equal([]float64{10, 15, 12.5}, ema.History())
}

func (suite *EMATestSuite) TestIncrementalMatchesFullRecomputation() {
	prices := randomWalk(11, 300)

	for _, length := range []int{1, 3, 12, 26, 300} {
		ema, err := NewEMA(length, DefaultSmoothingFactor)
		suite.Require().NoError(err)

		for i := range prices {
			seen := prices[:i+1]
			got := ema.Update(seen)
			suite.Less(relativeDiff(got, bruteEMA(seen, ema.Alpha())), 1e-9, "length %d step %d", length, i)
		}
	}
}
