package strategy

import (
	"math/rand"
	"time"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// Defaults used when positional parameters are omitted.
const (
	DefaultGreedyProportion    = 0.5
	DefaultRandomProportion    = 0.3
	DefaultBestAfterN          = 10
	DefaultBollingerWindow     = 20
	DefaultBollingerStdDev     = 2.0
	DefaultBollingerProportion = 0.5
	DefaultRSIWindow           = 14
	DefaultRSIOversold         = 30.0
	DefaultRSIOverbought       = 70.0
	DefaultRSIProportion       = 0.5
)

type options struct {
	source RandomSource
}

// Option configures New.
type Option func(*options)

// WithRandomSource sets the random source of a random strategy.
// Other strategies ignore it.
func WithRandomSource(source RandomSource) Option {
	return func(o *options) {
		o.source = source
	}
}

// New builds the strategy selected by tag from positional parameters.
//
//	greedy        proportion, trend_follow
//	random        proportion, sell_weight, buy_weight, hold_weight
//	best_after_n  n
//	sma, ema      proportion, lengths, trend_follow
//	bollinger     window, num_std_dev, proportion
//	rsi           window, oversold, overbought, proportion
func New(tag types.StrategyType, startingBalance, startingShares float64, params []any, opts ...Option) (Strategy, error) {
	o := options{source: nil}
	for _, opt := range opts {
		opt(&o)
	}

	p := newParamReader(string(tag), params)

	var (
		s   Strategy
		err error
	)

	switch tag {
	case types.StrategyTypeGreedy:
		proportion := p.float("proportion", DefaultGreedyProportion)
		trendFollow := p.bool("trend_follow", false)

		if err = p.done(); err == nil {
			s, err = NewGreedy(startingBalance, startingShares, proportion, trendFollow)
		}
	case types.StrategyTypeRandom:
		proportion := p.float("proportion", DefaultRandomProportion)
		weights := RandomWeights{
			Sell: p.float("sell_weight", DefaultRandomWeights.Sell),
			Buy:  p.float("buy_weight", DefaultRandomWeights.Buy),
			Hold: p.float("hold_weight", DefaultRandomWeights.Hold),
		}

		source := o.source
		if source == nil {
			//nolint:gosec // simulation randomness
			source = rand.New(rand.NewSource(time.Now().UnixNano()))
		}

		if err = p.done(); err == nil {
			s, err = NewRandom(startingBalance, startingShares, proportion, weights, source)
		}
	case types.StrategyTypeBestAfterN:
		n := p.int("n", DefaultBestAfterN)

		if err = p.done(); err == nil {
			s, err = NewBestAfterN(startingBalance, startingShares, n)
		}
	case types.StrategyTypeSMA, types.StrategyTypeEMA:
		proportion := p.float("proportion", DefaultCrossoverProportion)
		lengths := p.ints("lengths", DefaultCrossoverLengths)
		trendFollow := p.bool("trend_follow", false)

		if err = p.done(); err == nil {
			s, err = NewMovingAverageCrossover(tag, startingBalance, startingShares, proportion, lengths, trendFollow)
		}
	case types.StrategyTypeBollinger:
		window := p.int("window", DefaultBollingerWindow)
		numStdDev := p.float("num_std_dev", DefaultBollingerStdDev)
		proportion := p.float("proportion", DefaultBollingerProportion)

		if err = p.done(); err == nil {
			s, err = NewBollinger(startingBalance, startingShares, window, numStdDev, proportion)
		}
	case types.StrategyTypeRSI:
		window := p.int("window", DefaultRSIWindow)
		oversold := p.float("oversold", DefaultRSIOversold)
		overbought := p.float("overbought", DefaultRSIOverbought)
		proportion := p.float("proportion", DefaultRSIProportion)

		if err = p.done(); err == nil {
			s, err = NewRSIThreshold(startingBalance, startingShares, window, oversold, overbought, proportion)
		}
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedStrategy, "unsupported strategy: %q", tag)
	}

	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeStrategyConfigError, err, "failed to create %s strategy", tag)
	}

	return s, nil
}
