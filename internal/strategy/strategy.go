// Package strategy implements the per-step trading state machines.
//
// A strategy owns a cash balance and a share count. Each call to GiveDataPoint
// consumes the next price of a series in chronological order, records the
// worth of the state held before that price arrived, updates the strategy's
// indicators and applies its decision rule. Nothing in this package looks
// ahead: a decision on step i only sees prices 0..i.
package strategy

import (
	"math"
	"slices"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// Strategy is the contract shared by every causal strategy.
//
//nolint:interfacebloat // read accessors mirror the recorded histories
type Strategy interface {
	// Type returns the selector tag of the strategy.
	Type() types.StrategyType
	// GiveDataPoint consumes the next price. Prices must arrive in chronological order.
	GiveDataPoint(price float64)
	// CurrentIndex returns the number of prices consumed so far.
	CurrentIndex() int
	// CurrentBalance returns the cash held now.
	CurrentBalance() float64
	// CurrentShares returns the shares held now.
	CurrentShares() float64
	// CurrentWorth values the current holdings at a hypothetical price.
	CurrentWorth(price float64) float64
	// Snapshot returns the state right after the last consumed price.
	Snapshot() types.Snapshot
	// SeenPrices returns every consumed price.
	SeenPrices() []float64
	// BalanceHistory returns the balance after each step, starting with the initial balance.
	BalanceHistory() []float64
	// SharesHistory returns the shares after each step, starting with the initial shares.
	SharesHistory() []float64
	// WorthHistory returns the worth recorded before each step after the first,
	// valued at the previous price.
	WorthHistory() []float64
	// CompleteWorthHistory returns WorthHistory plus the worth at the last consumed price.
	CompleteWorthHistory() []float64
	// ActionHistory returns the decision taken on each step.
	ActionHistory() []types.ActionType
}

// decisionRule turns the newest price into the next holdings.
// It runs after the price was appended to the seen prices.
type decisionRule interface {
	decide(price float64) (balance, shares float64, action types.ActionType)
}

// Account holds the histories shared by all strategies and drives the
// common GiveDataPoint sequence. Concrete strategies embed it.
type Account struct {
	strategyType types.StrategyType
	rule         decisionRule

	index          int
	seenPrices     []float64
	balanceHistory []float64
	sharesHistory  []float64
	worthHistory   []float64
	actionHistory  []types.ActionType
}

func newAccount(strategyType types.StrategyType, startingBalance, startingShares float64, rule decisionRule) (*Account, error) {
	if !isFiniteNonNegative(startingBalance) {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "starting balance must be a finite non-negative number, got %v", startingBalance)
	}

	if !isFiniteNonNegative(startingShares) {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "starting shares must be a finite non-negative number, got %v", startingShares)
	}

	return &Account{
		strategyType:   strategyType,
		rule:           rule,
		index:          0,
		seenPrices:     nil,
		balanceHistory: []float64{startingBalance},
		sharesHistory:  []float64{startingShares},
		worthHistory:   nil,
		actionHistory:  nil,
	}, nil
}

// Type implements Strategy.
func (a *Account) Type() types.StrategyType {
	return a.strategyType
}

// GiveDataPoint implements Strategy.
func (a *Account) GiveDataPoint(price float64) {
	if len(a.seenPrices) > 0 {
		previous := a.seenPrices[len(a.seenPrices)-1]
		a.worthHistory = append(a.worthHistory, a.CurrentWorth(previous))
	}

	a.seenPrices = append(a.seenPrices, price)
	a.index++

	balance, shares, action := a.rule.decide(price)

	a.balanceHistory = append(a.balanceHistory, balance)
	a.sharesHistory = append(a.sharesHistory, shares)
	a.actionHistory = append(a.actionHistory, action)
}

// CurrentIndex implements Strategy.
func (a *Account) CurrentIndex() int {
	return a.index
}

// CurrentBalance implements Strategy.
func (a *Account) CurrentBalance() float64 {
	return a.balanceHistory[len(a.balanceHistory)-1]
}

// CurrentShares implements Strategy.
func (a *Account) CurrentShares() float64 {
	return a.sharesHistory[len(a.sharesHistory)-1]
}

// CurrentWorth implements Strategy.
func (a *Account) CurrentWorth(price float64) float64 {
	return a.CurrentBalance() + price*a.CurrentShares()
}

// Snapshot implements Strategy.
func (a *Account) Snapshot() types.Snapshot {
	snapshot := types.Snapshot{
		Index:   a.index,
		Price:   math.NaN(),
		Balance: a.CurrentBalance(),
		Shares:  a.CurrentShares(),
		Worth:   math.NaN(),
		Action:  types.ActionTypeHold,
	}

	if a.index > 0 {
		snapshot.Price = a.lastPrice()
		snapshot.Worth = a.CurrentWorth(snapshot.Price)
		snapshot.Action = a.actionHistory[len(a.actionHistory)-1]
	}

	return snapshot
}

// SeenPrices implements Strategy.
func (a *Account) SeenPrices() []float64 {
	return slices.Clone(a.seenPrices)
}

// BalanceHistory implements Strategy.
func (a *Account) BalanceHistory() []float64 {
	return slices.Clone(a.balanceHistory)
}

// SharesHistory implements Strategy.
func (a *Account) SharesHistory() []float64 {
	return slices.Clone(a.sharesHistory)
}

// WorthHistory implements Strategy.
func (a *Account) WorthHistory() []float64 {
	return slices.Clone(a.worthHistory)
}

// CompleteWorthHistory implements Strategy.
func (a *Account) CompleteWorthHistory() []float64 {
	history := slices.Clone(a.worthHistory)
	if a.index > 0 {
		history = append(history, a.CurrentWorth(a.lastPrice()))
	}

	return history
}

// ActionHistory implements Strategy.
func (a *Account) ActionHistory() []types.ActionType {
	return slices.Clone(a.actionHistory)
}

func (a *Account) lastPrice() float64 {
	return a.seenPrices[len(a.seenPrices)-1]
}

// hold keeps the current holdings.
func (a *Account) hold() (float64, float64, types.ActionType) {
	return a.CurrentBalance(), a.CurrentShares(), types.ActionTypeHold
}

func isFiniteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
