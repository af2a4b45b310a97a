package strategy

import (
	"math"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// RandomSource produces uniform values in [0, 1).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// RandomWeights partitions [0, 1) into sell, buy and hold ranges.
type RandomWeights struct {
	Sell float64
	Buy  float64
	Hold float64
}

// DefaultRandomWeights gives every action the same chance.
var DefaultRandomWeights = RandomWeights{Sell: 1, Buy: 1, Hold: 1}

// Random draws one value per step and sells, buys or holds according to the weights.
// The random source is owned by the strategy and must not be shared.
type Random struct {
	*Account

	proportion float64
	sellBelow  float64
	buyBelow   float64
	source     RandomSource
}

// NewRandom creates a random strategy drawing from source.
func NewRandom(startingBalance, startingShares, proportion float64, weights RandomWeights, source RandomSource) (*Random, error) {
	if err := validateProportion("proportion", proportion); err != nil {
		return nil, err
	}

	if source == nil {
		return nil, errors.New(errors.ErrCodeMissingParameter, "random strategy requires a random source")
	}

	total := weights.Sell + weights.Buy + weights.Hold
	if weights.Sell < 0 || weights.Buy < 0 || weights.Hold < 0 || !(total > 0) || math.IsInf(total, 1) {
		return nil, errors.Newf(errors.ErrCodeInvalidWeights, "random weights must be non-negative with a positive sum, got %+v", weights)
	}

	r := &Random{
		Account:    nil,
		proportion: proportion,
		sellBelow:  weights.Sell / total,
		buyBelow:   (weights.Sell + weights.Buy) / total,
		source:     source,
	}

	account, err := newAccount(types.StrategyTypeRandom, startingBalance, startingShares, r)
	if err != nil {
		return nil, err
	}

	r.Account = account

	return r, nil
}

func (r *Random) decide(price float64) (float64, float64, types.ActionType) {
	draw := r.source.Float64()
	balance, shares := r.CurrentBalance(), r.CurrentShares()

	switch {
	case draw < r.sellBelow:
		return sellProportion(balance, shares, price, r.proportion)
	case draw < r.buyBelow:
		return buyProportion(balance, shares, price, r.proportion)
	default:
		return r.hold()
	}
}
