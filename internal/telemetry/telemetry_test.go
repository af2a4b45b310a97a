package telemetry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-backtest/internal/types"
)

type TelemetryTestSuite struct {
	suite.Suite
	telemetry *Telemetry
}

func TestTelemetrySuite(t *testing.T) {
	suite.Run(t, new(TelemetryTestSuite))
}

func (suite *TelemetryTestSuite) SetupTest() {
	suite.telemetry = New()
}

func (suite *TelemetryTestSuite) TestObserveStep() {
	suite.telemetry.ObserveStep(types.StrategyTypeGreedy, types.ActionTypeBuy)
	suite.telemetry.ObserveStep(types.StrategyTypeGreedy, types.ActionTypeHold)
	suite.telemetry.ObserveStep(types.StrategyTypeRSI, types.ActionTypeHold)

	suite.Equal(2.0, testutil.ToFloat64(suite.telemetry.points.WithLabelValues("greedy")))
	suite.Equal(1.0, testutil.ToFloat64(suite.telemetry.decisions.WithLabelValues("greedy", "buy")))
	suite.Equal(1.0, testutil.ToFloat64(suite.telemetry.decisions.WithLabelValues("rsi", "hold")))
}

func (suite *TelemetryTestSuite) TestObserveRun() {
	suite.telemetry.ObserveRun(types.StrategyTypeGreedy, "greedy", 11818.4, time.Millisecond, nil)
	suite.telemetry.ObserveRun(types.StrategyTypeRSI, "rsi", 0, time.Millisecond, errors.New("boom"))

	suite.Equal(1.0, testutil.ToFloat64(suite.telemetry.runs.WithLabelValues("greedy", StatusOK)))
	suite.Equal(1.0, testutil.ToFloat64(suite.telemetry.runs.WithLabelValues("rsi", StatusError)))
	suite.Equal(11818.4, testutil.ToFloat64(suite.telemetry.finalWorth.WithLabelValues("greedy")))
	suite.Equal(1, testutil.CollectAndCount(suite.telemetry.finalWorth))
	suite.Equal(2, testutil.CollectAndCount(suite.telemetry.duration))
}

func (suite *TelemetryTestSuite) TestRegistriesAreIndependent() {
	other := New()
	suite.telemetry.ObserveStep(types.StrategyTypeSMA, types.ActionTypeSell)

	suite.Equal(0, testutil.CollectAndCount(other.points))
}

func (suite *TelemetryTestSuite) TestWriteToTextfile() {
	suite.telemetry.ObserveStep(types.StrategyTypeEMA, types.ActionTypeSell)

	path := filepath.Join(suite.T().TempDir(), "backtest.prom")
	suite.Require().NoError(suite.telemetry.WriteToTextfile(path))

	content, err := os.ReadFile(path)
	suite.Require().NoError(err)
	suite.True(strings.Contains(string(content), `backtest_points_total{strategy="ema"} 1`))
}
