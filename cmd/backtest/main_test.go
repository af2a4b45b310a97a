package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-backtest/internal/types"
)

type SummaryTestSuite struct {
	suite.Suite
}

func TestSummarySuite(t *testing.T) {
	suite.Run(t, new(SummaryTestSuite))
}

func (suite *SummaryTestSuite) stats() types.BacktestStats {
	return types.BacktestStats{
		Runs: []types.RunStats{
			{
				Name:           "greedy",
				Strategy:       types.StrategyTypeGreedy,
				FinalWorth:     11818.447424566219,
				NumberOfTrades: 10,
				Metrics:        types.Metrics{Sharpe: 0.5477, MaxDrawdown: 0.1775, CAGR: 1.5, Calmar: math.NaN(), AverageTrade: 2.1711},
			},
		},
		Benchmark: types.BenchmarkStats{
			TrueOptimalFinalWorth: 20000,
			BuyAndHoldFinalWorth:  10302,
		},
	}
}

func (suite *SummaryTestSuite) TestSummaryTableRows() {
	rendered := summaryTable(suite.stats()).Render()

	suite.Contains(rendered, "RUN")
	suite.Contains(rendered, "AVG TRADE %")
	suite.Contains(rendered, "greedy")
	suite.Contains(rendered, "11818.45")
	suite.Contains(rendered, "2.1711")
	suite.Contains(rendered, "NaN")
	suite.Contains(rendered, "true optimal")
	suite.Contains(rendered, "20000.00")
	suite.Contains(rendered, "buy and hold")
	suite.Contains(rendered, "10302.00")

	// the greedy row comes before both benchmarks
	suite.Less(strings.Index(rendered, "greedy"), strings.Index(rendered, "true optimal"))
	suite.Less(strings.Index(rendered, "true optimal"), strings.Index(rendered, "buy and hold"))
}

func (suite *SummaryTestSuite) TestPrintSummary() {
	var out bytes.Buffer

	printSummary(&out, suite.stats())

	suite.Equal(summaryTable(suite.stats()).Render()+"\n", out.String())
}
