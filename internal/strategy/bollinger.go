package strategy

import (
	"github.com/rxtech-lab/argo-backtest/internal/indicator"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// Bollinger sells part of its shares above the upper band and buys with part
// of its cash below the lower band. Bands are recorded from the first step,
// but it holds until a full window of prices has been seen.
type Bollinger struct {
	*Account

	bands      *indicator.BollingerBands
	proportion float64
}

// NewBollinger creates a Bollinger mean-reversion strategy.
func NewBollinger(startingBalance, startingShares float64, window int, numStdDev, proportion float64) (*Bollinger, error) {
	if err := validateProportion("proportion", proportion); err != nil {
		return nil, err
	}

	bands, err := indicator.NewBollingerBands(window, numStdDev)
	if err != nil {
		return nil, err
	}

	b := &Bollinger{
		Account:    nil,
		bands:      bands,
		proportion: proportion,
	}

	account, err := newAccount(types.StrategyTypeBollinger, startingBalance, startingShares, b)
	if err != nil {
		return nil, err
	}

	b.Account = account

	return b, nil
}

// Bands returns the band computed on each step.
func (b *Bollinger) Bands() []indicator.Band {
	return b.bands.History()
}

func (b *Bollinger) decide(price float64) (float64, float64, types.ActionType) {
	band := b.bands.Update(b.seenPrices)
	if !b.bands.Warm(b.seenPrices) {
		return b.hold()
	}

	balance, shares := b.CurrentBalance(), b.CurrentShares()

	switch {
	case price > band.Upper:
		return sellProportion(balance, shares, price, b.proportion)
	case price < band.Lower:
		return buyProportion(balance, shares, price, b.proportion)
	default:
		return b.hold()
	}
}
