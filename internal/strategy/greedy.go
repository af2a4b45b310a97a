package strategy

import (
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// Greedy trades against the last price move. On a rise it sells a proportion
// of its shares and on a fall it spends the same proportion of its cash.
// TrendFollow inverts both sides.
type Greedy struct {
	*Account

	proportion  float64
	trendFollow bool
}

// NewGreedy creates a greedy strategy.
func NewGreedy(startingBalance, startingShares, proportion float64, trendFollow bool) (*Greedy, error) {
	if err := validateProportion("proportion", proportion); err != nil {
		return nil, err
	}

	g := &Greedy{
		Account:     nil,
		proportion:  proportion,
		trendFollow: trendFollow,
	}

	account, err := newAccount(types.StrategyTypeGreedy, startingBalance, startingShares, g)
	if err != nil {
		return nil, err
	}

	g.Account = account

	return g, nil
}

// Proportion returns the traded proportion.
func (g *Greedy) Proportion() float64 {
	return g.proportion
}

// TrendFollow reports whether the rule is inverted.
func (g *Greedy) TrendFollow() bool {
	return g.trendFollow
}

func (g *Greedy) decide(price float64) (float64, float64, types.ActionType) {
	if len(g.seenPrices) < 2 {
		return g.hold()
	}

	previous := g.seenPrices[len(g.seenPrices)-2]
	balance, shares := g.CurrentBalance(), g.CurrentShares()

	rose := price > previous
	fell := price < previous

	if g.trendFollow {
		rose, fell = fell, rose
	}

	switch {
	case rose:
		return sellProportion(balance, shares, price, g.proportion)
	case fell:
		return buyProportion(balance, shares, price, g.proportion)
	default:
		return g.hold()
	}
}
