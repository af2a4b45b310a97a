package strategy

import (
	"github.com/samber/lo"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// BestAfterN waits at least N steps after its last action, then goes all out
// of shares at a running maximum (sell mode) or all in at a running minimum
// (buy mode). The running extremum covers every price since the last action.
// A price equal to the extremum qualifies.
type BestAfterN struct {
	*Account

	n               int
	consideringFrom int
	selling         bool
}

// NewBestAfterN creates the strategy. It starts in sell mode when it holds shares.
func NewBestAfterN(startingBalance, startingShares float64, n int) (*BestAfterN, error) {
	if n < 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "n must be non-negative, got %d", n)
	}

	b := &BestAfterN{
		Account:         nil,
		n:               n,
		consideringFrom: 0,
		selling:         startingShares > 0,
	}

	account, err := newAccount(types.StrategyTypeBestAfterN, startingBalance, startingShares, b)
	if err != nil {
		return nil, err
	}

	b.Account = account

	return b, nil
}

// N returns the minimum number of steps between actions.
func (b *BestAfterN) N() int {
	return b.n
}

// Selling reports whether the strategy is waiting for a maximum.
func (b *BestAfterN) Selling() bool {
	return b.selling
}

func (b *BestAfterN) decide(price float64) (float64, float64, types.ActionType) {
	if b.index-b.consideringFrom <= b.n {
		return b.hold()
	}

	window := b.seenPrices[b.consideringFrom:]
	balance, shares := b.CurrentBalance(), b.CurrentShares()

	var action types.ActionType

	switch {
	case b.selling && price >= lo.Max(window):
		balance, shares, action = sellProportion(balance, shares, price, 1)
	case !b.selling && price <= lo.Min(window):
		balance, shares, action = buyProportion(balance, shares, price, 1)
	default:
		return b.hold()
	}

	b.consideringFrom = b.index
	b.selling = !b.selling

	return balance, shares, action
}
