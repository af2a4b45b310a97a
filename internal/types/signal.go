package types

// ActionType is the decision a strategy took on one step.
type ActionType string

const (
	// ActionTypeBuy converts cash into shares.
	ActionTypeBuy ActionType = "buy"
	// ActionTypeSell converts shares into cash.
	ActionTypeSell ActionType = "sell"
	// ActionTypeHold leaves balance and shares untouched.
	ActionTypeHold ActionType = "hold"
)

// IsTrade reports whether the action moved money between cash and shares.
func (a ActionType) IsTrade() bool {
	return a == ActionTypeBuy || a == ActionTypeSell
}
