package types

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type StatisticsTestSuite struct {
	suite.Suite
	tempDir string
}

func TestStatisticsSuite(t *testing.T) {
	suite.Run(t, new(StatisticsTestSuite))
}

func (suite *StatisticsTestSuite) SetupTest() {
	tempDir, err := os.MkdirTemp("", "statistics_test")
	suite.NoError(err)
	suite.tempDir = tempDir
}

func (suite *StatisticsTestSuite) TearDownTest() {
	os.RemoveAll(suite.tempDir)
}

func (suite *StatisticsTestSuite) TestWriteAndReadBacktestStats() {
	stats := BacktestStats{
		Version:   "v1.0.0",
		Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		DataPath:  "data/aapl.csv",
		Points:    12,
		Benchmark: BenchmarkStats{
			TrueOptimal:           Metrics{OverallMultiplier: 2.5, MaxDrawdown: 0},
			TrueOptimalFinalWorth: 25250,
		},
		Runs: []RunStats{
			{
				ID:              "run-1",
				Name:            "greedy",
				Strategy:        StrategyTypeGreedy,
				StartingBalance: 100,
				StartingShares:  100,
				FinalWorth:      10150,
				NumberOfTrades:  9,
				Metrics: Metrics{
					Sharpe:      0.42,
					MaxDrawdown: 0.1,
					CAGR:        0.05,
					Calmar:      0.5,
				},
			},
		},
	}

	filePath := filepath.Join(suite.tempDir, "stats.yaml")
	suite.Require().NoError(WriteBacktestStats(filePath, stats))

	read, err := ReadBacktestStats(filePath)
	suite.Require().NoError(err)
	suite.Equal("v1.0.0", read.Version)
	suite.Equal(12, read.Points)
	suite.Require().Len(read.Runs, 1)
	suite.Equal(StrategyTypeGreedy, read.Runs[0].Strategy)
	suite.Equal(9, read.Runs[0].NumberOfTrades)
	suite.InDelta(0.42, read.Runs[0].Metrics.Sharpe, 1e-12)
	suite.Equal(25250.0, read.Benchmark.TrueOptimalFinalWorth)
}

func (suite *StatisticsTestSuite) TestNaNMetricsSurviveYAML() {
	stats := BacktestStats{
		Runs: []RunStats{{Name: "flat", Metrics: Metrics{Calmar: math.NaN(), Sharpe: math.NaN()}}},
	}

	filePath := filepath.Join(suite.tempDir, "nan.yaml")
	suite.Require().NoError(WriteBacktestStats(filePath, stats))

	content, err := os.ReadFile(filePath)
	suite.Require().NoError(err)
	suite.Contains(string(content), ".nan")

	read, err := ReadBacktestStats(filePath)
	suite.Require().NoError(err)
	suite.True(math.IsNaN(read.Runs[0].Metrics.Calmar))
}

func (suite *StatisticsTestSuite) TestWriteToMissingDirectory() {
	err := WriteBacktestStats(filepath.Join(suite.tempDir, "missing", "stats.yaml"), BacktestStats{})
	suite.Error(err)
	suite.Contains(err.Error(), "failed to write backtest stats")
}

func (suite *StatisticsTestSuite) TestReadMissingFile() {
	_, err := ReadBacktestStats(filepath.Join(suite.tempDir, "nope.yaml"))
	suite.Error(err)
}
