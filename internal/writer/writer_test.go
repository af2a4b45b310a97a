package writer

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-backtest/internal/types"
)

type WriterTestSuite struct {
	suite.Suite
}

func TestWriterSuite(t *testing.T) {
	suite.Run(t, new(WriterTestSuite))
}

func (suite *WriterTestSuite) TestHistoryFile() {
	w, err := NewCSVWriter(suite.T().TempDir(), 2)
	suite.Require().NoError(err)

	history, err := w.OpenHistory("greedy 0.5")
	suite.Require().NoError(err)
	suite.Equal(filepath.Join(w.OutputDir(), "greedy_0.5_history.csv"), history.Path())

	suite.Require().NoError(history.Write(types.Snapshot{
		Index: 1, Price: 100, Balance: 100, Shares: 100, Worth: 10100, Action: types.ActionTypeHold,
	}))
	suite.Require().NoError(history.Write(types.Snapshot{
		Index: 2, Price: 102.5, Balance: 5225, Shares: 63.10679611650485, Worth: 11693.446601941747, Action: types.ActionTypeSell,
	}))
	suite.Require().NoError(history.Close())

	file, err := os.Open(history.Path())
	suite.Require().NoError(err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	suite.Require().NoError(err)
	suite.Equal([][]string{
		{"step", "price", "balance", "shares", "worth", "action"},
		{"1", "100", "100", "100", "10100", "hold"},
		{"2", "102.5", "5225", "63.11", "11693.45", "sell"},
	}, records)
}

func (suite *WriterTestSuite) TestDuplicateRunNames() {
	w, err := NewCSVWriter(suite.T().TempDir(), -1)
	suite.Require().NoError(err)

	first, err := w.OpenHistory("rsi")
	suite.Require().NoError(err)
	second, err := w.OpenHistory("rsi")
	suite.Require().NoError(err)

	suite.NotEqual(first.Path(), second.Path())
	suite.NoError(first.Close())
	suite.NoError(second.Close())
}

func (suite *WriterTestSuite) TestWriteStatsRounds() {
	w, err := NewCSVWriter(suite.T().TempDir(), 3)
	suite.Require().NoError(err)

	stats := types.BacktestStats{
		Version:   "v1.0.0",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Points:    12,
		Runs: []types.RunStats{{
			ID:         "run-1",
			Name:       "greedy",
			Strategy:   types.StrategyTypeGreedy,
			FinalWorth: 11818.447424566219,
			Metrics: types.Metrics{
				Sharpe:            0.123456,
				MaxDrawdown:       0.17765,
				Calmar:            math.NaN(),
				OverallMultiplier: 1.1701432,
			},
		}},
	}

	suite.Require().NoError(w.WriteStats(stats))

	read, err := types.ReadBacktestStats(filepath.Join(w.OutputDir(), StatsFileName))
	suite.Require().NoError(err)
	suite.Require().Len(read.Runs, 1)

	run := read.Runs[0]
	suite.Equal(11818.447, run.FinalWorth)
	suite.Equal(0.123, run.Metrics.Sharpe)
	suite.Equal(0.178, run.Metrics.MaxDrawdown)
	suite.Equal(1.17, run.Metrics.OverallMultiplier)
	suite.True(math.IsNaN(run.Metrics.Calmar))

	// the caller's stats are untouched
	suite.Equal(0.123456, stats.Runs[0].Metrics.Sharpe)
}

func (suite *WriterTestSuite) TestRound() {
	suite.Equal(1.24, Round(1.235, 2))
	suite.Equal(-1.24, Round(-1.235, 2))
	suite.Equal(1.23456, Round(1.23456, -1))
	suite.True(math.IsNaN(Round(math.NaN(), 2)))
	suite.True(math.IsInf(Round(math.Inf(1), 2), 1))
}

func (suite *WriterTestSuite) TestFormatFloat() {
	suite.Equal("0.1", FormatFloat(0.1, -1))
	suite.Equal("NaN", FormatFloat(math.NaN(), 2))
	suite.Equal("+Inf", FormatFloat(math.Inf(1), 2))
	suite.Equal("3.14", FormatFloat(math.Pi, 2))
}
