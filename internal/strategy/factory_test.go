package strategy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

type FactoryTestSuite struct {
	suite.Suite
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactoryTestSuite))
}

func (suite *FactoryTestSuite) TestDefaults() {
	s, err := New(types.StrategyTypeGreedy, 100, 10, nil)
	suite.Require().NoError(err)

	g, ok := s.(*Greedy)
	suite.Require().True(ok)
	suite.Equal(DefaultGreedyProportion, g.Proportion())
	suite.False(g.TrendFollow())

	s, err = New(types.StrategyTypeEMA, 100, 10, nil)
	suite.Require().NoError(err)
	suite.Equal(types.StrategyTypeEMA, s.Type())
	suite.Equal(DefaultCrossoverLengths, s.(*MovingAverageCrossover).Lengths())

	s, err = New(types.StrategyTypeBestAfterN, 100, 10, nil)
	suite.Require().NoError(err)
	suite.Equal(DefaultBestAfterN, s.(*BestAfterN).N())
}

func (suite *FactoryTestSuite) TestEveryTagIsSupported() {
	for _, tag := range types.AllStrategyTypes {
		s, err := New(tag.(types.StrategyType), 100, 10, nil)
		suite.Require().NoError(err, tag)
		suite.Equal(tag, s.Type())
	}
}

func (suite *FactoryTestSuite) TestYAMLDecodedParams() {
	// yaml.v3 decodes integers as int and lists as []any
	s, err := New(types.StrategyTypeSMA, 100, 10, []any{0.8, []any{3, 7.0, 12}, true})
	suite.Require().NoError(err)

	m := s.(*MovingAverageCrossover)
	suite.Equal([]int{3, 7, 12}, m.Lengths())
	suite.Equal(0.8, m.proportion)
	suite.True(m.trendFollow)

	s, err = New(types.StrategyTypeBollinger, 100, 10, []any{20.0, 2, 0.25})
	suite.Require().NoError(err)
	suite.Equal(20, s.(*Bollinger).bands.Window())
}

func (suite *FactoryTestSuite) TestNilParamUsesDefault() {
	s, err := New(types.StrategyTypeRSI, 100, 10, []any{nil, 20})
	suite.Require().NoError(err)

	r := s.(*RSIThreshold)
	suite.Equal(DefaultRSIWindow, r.rsi.Window())
	suite.Equal(20.0, r.oversold)
	suite.Equal(DefaultRSIOverbought, r.overbought)
}

func (suite *FactoryTestSuite) TestRandomUsesInjectedSource() {
	source := &sequenceSource{values: []float64{0.1}}
	s, err := New(types.StrategyTypeRandom, 100, 10, []any{0.5}, WithRandomSource(source))
	suite.Require().NoError(err)

	s.GiveDataPoint(10)
	suite.Equal(1, source.next)
	suite.Equal(types.ActionTypeSell, s.ActionHistory()[0])
}

func (suite *FactoryTestSuite) TestErrors() {
	tests := []struct {
		name   string
		tag    types.StrategyType
		params []any
		outer  errors.ErrorCode
		inner  errors.ErrorCode
	}{
		{"unknown tag", "momentum", nil, errors.ErrCodeUnsupportedStrategy, 0},
		{"too many params", types.StrategyTypeBestAfterN, []any{3, 4}, errors.ErrCodeStrategyConfigError, errors.ErrCodeInvalidParameter},
		{"non integral window", types.StrategyTypeRSI, []any{14.5}, errors.ErrCodeStrategyConfigError, errors.ErrCodeInvalidParameter},
		{"window beyond int range", types.StrategyTypeRSI, []any{1e300}, errors.ErrCodeStrategyConfigError, errors.ErrCodeInvalidParameter},
		{"n at two to the 63", types.StrategyTypeBestAfterN, []any{9223372036854775808.0}, errors.ErrCodeStrategyConfigError, errors.ErrCodeInvalidParameter},
		{"n beyond int range as uint64", types.StrategyTypeBestAfterN, []any{uint64(math.MaxUint64)}, errors.ErrCodeStrategyConfigError, errors.ErrCodeInvalidParameter},
		{"wrong flag type", types.StrategyTypeGreedy, []any{0.5, "yes"}, errors.ErrCodeStrategyConfigError, errors.ErrCodeInvalidParameter},
		{"bad lengths", types.StrategyTypeSMA, []any{1.0, []any{"a"}}, errors.ErrCodeStrategyConfigError, errors.ErrCodeInvalidParameter},
		{"proportion out of range", types.StrategyTypeGreedy, []any{2.0}, errors.ErrCodeStrategyConfigError, errors.ErrCodeInvalidProportion},
		{"zero window", types.StrategyTypeBollinger, []any{0}, errors.ErrCodeStrategyConfigError, errors.ErrCodeInvalidPeriod},
		{"negative std dev", types.StrategyTypeBollinger, []any{20, -1.0}, errors.ErrCodeStrategyConfigError, errors.ErrCodeInvalidStdDev},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			s, err := New(tt.tag, 100, 10, tt.params)
			suite.Nil(s)
			suite.Require().Error(err)
			suite.Equal(tt.outer, errors.GetCode(err))

			if tt.inner != 0 {
				var coded *errors.Error
				suite.Require().True(errors.As(err, &coded))
				suite.Equal(tt.inner, errors.GetCode(coded.Cause))
			}
		})
	}
}
