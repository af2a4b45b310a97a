// Package benchmark builds reference worth curves that are not strategies.
//
// TrueOptimal reads the whole price series up front and must never be fed
// through the backtest driver. Both curves are aligned with
// strategy.Strategy.CompleteWorthHistory: entry i is the worth at prices[i]
// after the decision taken on that price.
package benchmark

// TrueOptimal returns the worth curve of an oracle that holds only shares
// before every rise and only cash before every fall. Its final worth bounds
// any causal long-only strategy started from the same holdings.
func TrueOptimal(prices []float64, startingBalance, startingShares float64) []float64 {
	balance, shares := startingBalance, startingShares
	history := make([]float64, 0, len(prices))

	for i, price := range prices {
		if i+1 < len(prices) {
			next := prices[i+1]

			switch {
			case price < next && price > 0:
				shares += balance / price
				balance = 0
			case price > next:
				balance += shares * price
				shares = 0
			}
		}

		history = append(history, balance+shares*price)
	}

	return history
}

// BuyAndHold returns the worth curve of converting all cash into shares at
// the first price and never trading again.
func BuyAndHold(prices []float64, startingBalance, startingShares float64) []float64 {
	if len(prices) == 0 {
		return nil
	}

	balance, shares := startingBalance, startingShares
	if prices[0] > 0 {
		shares += balance / prices[0]
		balance = 0
	}

	history := make([]float64, len(prices))
	for i, price := range prices {
		history[i] = balance + shares*price
	}

	return history
}
