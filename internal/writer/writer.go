package writer

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// StatsFileName is the name of the summary file in a result directory.
const StatsFileName = "stats.yaml"

// ResultWriter defines the interface for writing backtest results
type ResultWriter interface {
	// OpenHistory creates the per-step history file of one run.
	// The returned writer must only be used by one goroutine.
	OpenHistory(runName string) (*HistoryWriter, error)

	// WriteStats writes the summary of every run
	WriteStats(stats types.BacktestStats) error

	// OutputDir returns the directory results are written to
	OutputDir() string
}

// CSVWriter implements ResultWriter by writing history CSV files and a YAML summary
type CSVWriter struct {
	runDir    string
	precision int32

	mu    sync.Mutex
	names map[string]bool
}

// NewCSVWriter creates a new CSVWriter below baseDir. Numbers are rounded to
// precision decimal places; a negative precision keeps full precision.
func NewCSVWriter(baseDir string, precision int) (*CSVWriter, error) {
	// Create a directory for this run using current timestamp
	timestamp := time.Now().Format("2006-01-02_15-04-05.000")
	runDir := filepath.Join(baseDir, timestamp)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to create result directory", err)
	}

	return &CSVWriter{
		runDir:    runDir,
		precision: int32(precision),
		mu:        sync.Mutex{},
		names:     make(map[string]bool),
	}, nil
}

// OutputDir implements ResultWriter.
func (w *CSVWriter) OutputDir() string {
	return w.runDir
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// OpenHistory implements ResultWriter.
func (w *CSVWriter) OpenHistory(runName string) (*HistoryWriter, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	base := unsafeFileChars.ReplaceAllString(runName, "_")
	name := base

	for i := 2; w.names[name]; i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}

	w.names[name] = true
	path := filepath.Join(w.runDir, name+"_history.csv")

	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeResultWriteFailed, err, "failed to create history file for %s", runName)
	}

	history := &HistoryWriter{
		path:      path,
		file:      file,
		csv:       csv.NewWriter(file),
		precision: w.precision,
	}

	if err := history.csv.Write([]string{"step", "price", "balance", "shares", "worth", "action"}); err != nil {
		file.Close()

		return nil, errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to write history header", err)
	}

	return history, nil
}

// WriteStats implements ResultWriter.
func (w *CSVWriter) WriteStats(stats types.BacktestStats) error {
	stats.Benchmark.TrueOptimal = RoundMetrics(stats.Benchmark.TrueOptimal, w.precision)
	stats.Benchmark.TrueOptimalFinalWorth = Round(stats.Benchmark.TrueOptimalFinalWorth, w.precision)
	stats.Benchmark.BuyAndHold = RoundMetrics(stats.Benchmark.BuyAndHold, w.precision)
	stats.Benchmark.BuyAndHoldFinalWorth = Round(stats.Benchmark.BuyAndHoldFinalWorth, w.precision)

	runs := make([]types.RunStats, len(stats.Runs))
	for i, run := range stats.Runs {
		run.FinalBalance = Round(run.FinalBalance, w.precision)
		run.FinalShares = Round(run.FinalShares, w.precision)
		run.FinalWorth = Round(run.FinalWorth, w.precision)
		run.Metrics = RoundMetrics(run.Metrics, w.precision)
		runs[i] = run
	}

	stats.Runs = runs

	if err := types.WriteBacktestStats(filepath.Join(w.runDir, StatsFileName), stats); err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to write stats", err)
	}

	return nil
}

// HistoryWriter writes the snapshots of one run
type HistoryWriter struct {
	path      string
	file      *os.File
	csv       *csv.Writer
	precision int32
}

// Path returns the file the history is written to.
func (h *HistoryWriter) Path() string {
	return h.path
}

// Write appends one snapshot.
func (h *HistoryWriter) Write(snapshot types.Snapshot) error {
	record := []string{
		strconv.Itoa(snapshot.Index),
		FormatFloat(snapshot.Price, h.precision),
		FormatFloat(snapshot.Balance, h.precision),
		FormatFloat(snapshot.Shares, h.precision),
		FormatFloat(snapshot.Worth, h.precision),
		string(snapshot.Action),
	}

	if err := h.csv.Write(record); err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to write snapshot", err)
	}

	return nil
}

// Close flushes and closes the file.
func (h *HistoryWriter) Close() error {
	h.csv.Flush()

	if err := h.csv.Error(); err != nil {
		h.file.Close()

		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to flush history", err)
	}

	if err := h.file.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to close history", err)
	}

	return nil
}

// Round rounds v half away from zero to places decimals. NaN, infinities and
// negative places are returned unchanged.
func Round(v float64, places int32) float64 {
	if places < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// RoundMetrics rounds every field of m.
func RoundMetrics(m types.Metrics, places int32) types.Metrics {
	return types.Metrics{
		Sharpe:            Round(m.Sharpe, places),
		MaxDrawdown:       Round(m.MaxDrawdown, places),
		CAGR:              Round(m.CAGR, places),
		Calmar:            Round(m.Calmar, places),
		AverageTrade:      Round(m.AverageTrade, places),
		OverallMultiplier: Round(m.OverallMultiplier, places),
	}
}

// FormatFloat renders v for CSV output.
func FormatFloat(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	if places < 0 {
		return decimal.NewFromFloat(v).String()
	}

	return decimal.NewFromFloat(v).Round(places).String()
}
