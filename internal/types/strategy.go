package types

// StrategyType is the selector tag used by the strategy factory and the engine config.
type StrategyType string

const (
	StrategyTypeGreedy     StrategyType = "greedy"
	StrategyTypeRandom     StrategyType = "random"
	StrategyTypeBestAfterN StrategyType = "best_after_n"
	StrategyTypeSMA        StrategyType = "sma"
	StrategyTypeEMA        StrategyType = "ema"
	StrategyTypeBollinger  StrategyType = "bollinger"
	StrategyTypeRSI        StrategyType = "rsi"
)

// AllStrategyTypes lists every selector tag the factory accepts.
var AllStrategyTypes = []any{
	StrategyTypeGreedy,
	StrategyTypeRandom,
	StrategyTypeBestAfterN,
	StrategyTypeSMA,
	StrategyTypeEMA,
	StrategyTypeBollinger,
	StrategyTypeRSI,
}
