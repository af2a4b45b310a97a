package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInsufficientData     ErrorCode = 106
	ErrCodeInvalidType          ErrorCode = 107
	ErrCodeInvalidPeriod        ErrorCode = 108
	ErrCodeMissingParameter     ErrorCode = 109
	ErrCodeInvalidVersion       ErrorCode = 110
	ErrCodeInvalidThreshold     ErrorCode = 112
	ErrCodeInvalidStdDev        ErrorCode = 113
	ErrCodeInvalidLength        ErrorCode = 116
	ErrCodeInvalidProportion    ErrorCode = 120
	ErrCodeInvalidWeights       ErrorCode = 121

	// Data errors (200-299)
	ErrCodeDataNotFound          ErrorCode = 200
	ErrCodeDataSourceUnavailable ErrorCode = 201
	ErrCodeMarketDataParseFailed ErrorCode = 202

	// Strategy errors (400-499)
	ErrCodeStrategyConfigError ErrorCode = 401
	ErrCodeUnsupportedStrategy ErrorCode = 403
	ErrCodeVersionMismatch     ErrorCode = 404

	// Backtest errors (600-699)
	ErrCodeBacktestConfigError ErrorCode = 602
	ErrCodeBacktestNoRuns      ErrorCode = 604
	ErrCodeBacktestNoPrices    ErrorCode = 606
	ErrCodeResultWriteFailed   ErrorCode = 609

	// Metrics errors (900-999)
	ErrCodeMetricsCalculation ErrorCode = 900
)
