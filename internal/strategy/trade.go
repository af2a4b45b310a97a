package strategy

import (
	"math"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// sellProportion sells proportion of the shares at price.
func sellProportion(balance, shares, price, proportion float64) (float64, float64, types.ActionType) {
	sold := shares * proportion
	if sold == 0 {
		return balance, shares, types.ActionTypeHold
	}

	return balance + sold*price, shares - sold, types.ActionTypeSell
}

// buyProportion spends proportion of the balance on shares at price.
// A non-positive price leaves the holdings untouched.
func buyProportion(balance, shares, price, proportion float64) (float64, float64, types.ActionType) {
	if price <= 0 {
		return balance, shares, types.ActionTypeHold
	}

	spent := balance * proportion
	if spent == 0 {
		return balance, shares, types.ActionTypeHold
	}

	return balance - spent, shares + spent/price, types.ActionTypeBuy
}

func validateProportion(name string, proportion float64) error {
	if math.IsNaN(proportion) || proportion < 0 || proportion > 1 {
		return errors.Newf(errors.ErrCodeInvalidProportion, "%s must be within [0, 1], got %v", name, proportion)
	}

	return nil
}
