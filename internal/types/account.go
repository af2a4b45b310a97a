package types

// Snapshot is the portfolio state right after a strategy consumed one price.
type Snapshot struct {
	// Index is the 1-based step count.
	Index int `csv:"step"`
	// Price is the price consumed on this step.
	Price float64 `csv:"price"`
	// Balance is the cash held after the step's trade.
	Balance float64 `csv:"balance"`
	// Shares is the number of shares held after the step's trade.
	Shares float64 `csv:"shares"`
	// Worth is Balance + Shares*Price.
	Worth float64 `csv:"worth"`
	// Action is the decision taken on this step.
	Action ActionType `csv:"action"`
}
