package strategy

import (
	"github.com/rxtech-lab/argo-backtest/internal/indicator"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// Default parameters of the moving-average crossover.
var (
	DefaultCrossoverLengths    = []int{8, 13, 21}
	DefaultCrossoverProportion = 1.0
)

// MovingAverageCrossover compares a set of moving averages ordered short to long.
// While buy-seeking it spends proportion of its cash when the values strictly
// increase from short to long. While sell-seeking it sells every share when
// they strictly decrease. The mode flips after every action. TrendFollow swaps
// the two orderings.
type MovingAverageCrossover struct {
	*Account

	averages    *indicator.MovingAverageSet
	proportion  float64
	trendFollow bool
	selling     bool
}

// NewMovingAverageCrossover creates a crossover over SMAs or EMAs, selected by strategyType.
func NewMovingAverageCrossover(
	strategyType types.StrategyType,
	startingBalance, startingShares, proportion float64,
	lengths []int,
	trendFollow bool,
) (*MovingAverageCrossover, error) {
	if err := validateProportion("proportion", proportion); err != nil {
		return nil, err
	}

	var kind types.IndicatorType

	switch strategyType {
	case types.StrategyTypeSMA:
		kind = types.IndicatorTypeSMA
	case types.StrategyTypeEMA:
		kind = types.IndicatorTypeEMA
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidType, "moving average crossover does not support %s", strategyType)
	}

	if len(lengths) < 2 {
		return nil, errors.Newf(errors.ErrCodeInvalidLength, "crossover needs at least two lengths, got %v", lengths)
	}

	averages, err := indicator.NewMovingAverageSet(kind, lengths, indicator.DefaultSmoothingFactor)
	if err != nil {
		return nil, err
	}

	m := &MovingAverageCrossover{
		Account:     nil,
		averages:    averages,
		proportion:  proportion,
		trendFollow: trendFollow,
		selling:     startingShares > 0,
	}

	account, err := newAccount(strategyType, startingBalance, startingShares, m)
	if err != nil {
		return nil, err
	}

	m.Account = account

	return m, nil
}

// Lengths returns the moving-average lengths, short to long.
func (m *MovingAverageCrossover) Lengths() []int {
	return m.averages.Lengths()
}

// Averages returns the history of the moving average with the given length.
func (m *MovingAverageCrossover) Averages(length int) ([]float64, bool) {
	return m.averages.History(length)
}

// Selling reports whether the strategy is sell-seeking.
func (m *MovingAverageCrossover) Selling() bool {
	return m.selling
}

func (m *MovingAverageCrossover) decide(price float64) (float64, float64, types.ActionType) {
	values := m.averages.Update(m.seenPrices)

	buyOrder, sellOrder := strictlyIncreasing(values), strictlyDecreasing(values)
	if m.trendFollow {
		buyOrder, sellOrder = sellOrder, buyOrder
	}

	balance, shares := m.CurrentBalance(), m.CurrentShares()

	var action types.ActionType

	switch {
	case m.selling && sellOrder:
		balance, shares, action = sellProportion(balance, shares, price, 1)
	case !m.selling && buyOrder:
		balance, shares, action = buyProportion(balance, shares, price, m.proportion)
	default:
		return m.hold()
	}

	m.selling = !m.selling

	return balance, shares, action
}

func strictlyIncreasing(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if !(values[i-1] < values[i]) {
			return false
		}
	}

	return len(values) > 1
}

func strictlyDecreasing(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if !(values[i-1] > values[i]) {
			return false
		}
	}

	return len(values) > 1
}
