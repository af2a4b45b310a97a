package strategy

import (
	"math"

	"github.com/rxtech-lab/argo-backtest/internal/indicator"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// RSIThreshold sells when the RSI crosses up into the overbought zone and buys
// when it crosses down into the oversold zone. Staying inside a zone does not
// trigger again.
type RSIThreshold struct {
	*Account

	rsi        *indicator.RSI
	oversold   float64
	overbought float64
	proportion float64
	previous   float64
}

// NewRSIThreshold creates the strategy. Thresholds must satisfy 0 <= oversold < overbought <= 100.
func NewRSIThreshold(startingBalance, startingShares float64, window int, oversold, overbought, proportion float64) (*RSIThreshold, error) {
	if err := validateProportion("proportion", proportion); err != nil {
		return nil, err
	}

	if !(oversold >= 0 && oversold < overbought && overbought <= 100) {
		return nil, errors.Newf(errors.ErrCodeInvalidThreshold, "rsi thresholds must satisfy 0 <= oversold < overbought <= 100, got %v and %v", oversold, overbought)
	}

	rsi, err := indicator.NewRSI(window)
	if err != nil {
		return nil, err
	}

	r := &RSIThreshold{
		Account:    nil,
		rsi:        rsi,
		oversold:   oversold,
		overbought: overbought,
		proportion: proportion,
		previous:   math.NaN(),
	}

	account, err := newAccount(types.StrategyTypeRSI, startingBalance, startingShares, r)
	if err != nil {
		return nil, err
	}

	r.Account = account

	return r, nil
}

// RSIHistory returns the RSI computed on each step.
func (r *RSIThreshold) RSIHistory() []float64 {
	return r.rsi.History()
}

func (r *RSIThreshold) decide(price float64) (float64, float64, types.ActionType) {
	value := r.rsi.Update(r.seenPrices)
	previous := r.previous
	r.previous = value

	balance, shares := r.CurrentBalance(), r.CurrentShares()

	// NaN previous never satisfies either comparison, so the first step holds.
	switch {
	case value >= r.overbought && previous < r.overbought:
		return sellProportion(balance, shares, price, r.proportion)
	case value <= r.oversold && previous > r.oversold:
		return buyProportion(balance, shares, price, r.proportion)
	default:
		return r.hold()
	}
}
