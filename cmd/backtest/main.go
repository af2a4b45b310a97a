package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/moznion/go-optional"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-backtest/internal/backtest"
	"github.com/rxtech-lab/argo-backtest/internal/datasource"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/internal/version"
	"github.com/rxtech-lab/argo-backtest/internal/writer"
)

const (
	schemaName       = "backtest-config.json"
	sampleConfigName = "backtest-config.yaml"
)

// priceSource picks the CSV file when given, otherwise a generated series.
func priceSource(config backtest.Config, dataPath string) datasource.Source {
	if dataPath != "" {
		return datasource.NewCSVSource(dataPath)
	}

	generator := datasource.DefaultGeneratorConfig()
	if config.Generator != nil {
		generator = *config.Generator
	}

	var seed int64
	if config.Seed.IsSome() {
		seed = config.Seed.Unwrap()
	}

	return datasource.NewGenerator(generator, seed)
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	appLog, err := logger.NewLoggerWithLevel(cmd.String("log-level"))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	//nolint:errcheck // stdout sync fails on some terminals
	defer appLog.Sync()

	config, err := backtest.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	if cmd.IsSet("seed") {
		config.Seed = optional.Some(cmd.Int64("seed"))
	}

	engine, err := backtest.NewEngine(config, appLog)
	if err != nil {
		return err
	}

	if results := cmd.String("results"); results != "" {
		w, err := writer.NewCSVWriter(results, config.DecimalPrecision)
		if err != nil {
			return err
		}

		engine.SetResultWriter(w)
		appLog.Info("Writing results", zap.String("dir", w.OutputDir()))
	}

	source := priceSource(config, cmd.String("data"))

	var (
		bar     *progressbar.ProgressBar
		barOnce sync.Once
	)

	// every run sees the same series, so the first start sizes the bar
	onStart := backtest.OnRunStartCallback(func(_ string, _ int, _ string, totalPoints int) error {
		if cmd.Bool("quiet") {
			return nil
		}

		barOnce.Do(func() {
			bar = progressbar.NewOptions(totalPoints*len(config.Runs),
				progressbar.OptionSetDescription(fmt.Sprintf("Backtesting %s", source.Describe())),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWriter(os.Stderr),
			)
		})

		return nil
	})
	onData := backtest.OnProcessDataCallback(func(int, int, int) error {
		if bar == nil {
			return nil
		}

		return bar.Add(1)
	})

	stats, err := engine.Run(ctx, source, backtest.LifecycleCallbacks{
		OnRunStart:    &onStart,
		OnRunEnd:      nil,
		OnProcessData: &onData,
	})

	if bar != nil {
		//nolint:errcheck // best effort
		bar.Finish()
	}

	if metricsFile := cmd.String("metrics-file"); metricsFile != "" {
		if writeErr := engine.Telemetry().WriteToTextfile(metricsFile); writeErr != nil {
			appLog.Error("Failed to write metrics file", zap.String("path", metricsFile), zap.Error(writeErr))
		}
	}

	if err != nil {
		return err
	}

	printSummary(os.Stdout, stats)

	return nil
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	benchmarkStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

func formatMetric(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// summaryTable renders one row per run followed by the two benchmark rows.
func summaryTable(stats types.BacktestStats) *table.Table {
	rows := make([][]string, 0, len(stats.Runs)+2)

	for _, run := range stats.Runs {
		m := run.Metrics
		rows = append(rows, []string{
			run.Name, string(run.Strategy), fmt.Sprintf("%.2f", run.FinalWorth), strconv.Itoa(run.NumberOfTrades),
			formatMetric(m.Sharpe), formatMetric(m.MaxDrawdown), formatMetric(m.CAGR), formatMetric(m.Calmar), formatMetric(m.AverageTrade),
		})
	}

	b := stats.Benchmark
	rows = append(rows,
		[]string{
			"true optimal", "-", fmt.Sprintf("%.2f", b.TrueOptimalFinalWorth), "-",
			formatMetric(b.TrueOptimal.Sharpe), formatMetric(b.TrueOptimal.MaxDrawdown),
			formatMetric(b.TrueOptimal.CAGR), formatMetric(b.TrueOptimal.Calmar), "-",
		},
		[]string{
			"buy and hold", "-", fmt.Sprintf("%.2f", b.BuyAndHoldFinalWorth), "-",
			formatMetric(b.BuyAndHold.Sharpe), formatMetric(b.BuyAndHold.MaxDrawdown),
			formatMetric(b.BuyAndHold.CAGR), formatMetric(b.BuyAndHold.Calmar), "-",
		},
	)

	runCount := len(stats.Runs)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("RUN", "STRATEGY", "FINAL WORTH", "TRADES", "SHARPE", "MAX DD", "CAGR", "CALMAR", "AVG TRADE %").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= runCount:
				return benchmarkStyle
			default:
				return cellStyle
			}
		})
}

func printSummary(out io.Writer, stats types.BacktestStats) {
	fmt.Fprintln(out, summaryTable(stats).Render())
}

// schemaAction writes the JSON schema of the config and, when missing, a sample config next to it.
func schemaAction(_ context.Context, cmd *cli.Command) error {
	config := backtest.EmptyConfig()

	schemaJSON, err := config.GenerateSchemaJSON()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	dir := cmd.String("output")
	if dir == "" {
		fmt.Println(schemaJSON)

		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	schemaPath := filepath.Join(dir, schemaName)
	if err := os.WriteFile(schemaPath, []byte(schemaJSON), 0644); err != nil {
		return fmt.Errorf("failed to write schema to file: %w", err)
	}

	log.Printf("Schema successfully generated at %s", schemaPath)

	samplePath := filepath.Join(dir, sampleConfigName)
	if _, err := os.Stat(samplePath); !os.IsNotExist(err) {
		return nil
	}

	config.Version = version.GetVersion()
	config.Runs = []backtest.RunConfig{
		{Name: "greedy", Strategy: types.StrategyTypeGreedy, Params: []any{0.5}},
		{Name: "sma", Strategy: types.StrategyTypeSMA, Params: nil},
	}

	yamlBytes, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal sample config to yaml: %w", err)
	}

	yamlBytes = append([]byte("# yaml-language-server: $schema="+schemaName+"\n"), yamlBytes...)
	if err := os.WriteFile(samplePath, yamlBytes, 0644); err != nil {
		return fmt.Errorf("failed to write sample config to file: %w", err)
	}

	log.Printf("Sample config successfully generated at %s", samplePath)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "backtest",
		Usage:   "Backtest trading strategies on a single price series",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run every configured strategy and report metrics",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the backtest config YAML",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "data",
						Aliases: []string{"d"},
						Usage:   "Path to a CSV price file. A generated series is used when empty",
					},
					&cli.StringFlag{
						Name:    "results",
						Aliases: []string{"r"},
						Usage:   "Directory for history CSVs and stats.yaml",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Overrides the config seed",
					},
					&cli.StringFlag{
						Name:  "log-level",
						Usage: "Log level (debug, info, warn, error)",
						Value: "info",
					},
					&cli.StringFlag{
						Name:  "metrics-file",
						Usage: "Write run metrics in Prometheus text format to this file",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Disable the progress bar",
					},
				},
				Action: runAction,
			},
			{
				Name:  "schema",
				Usage: "Print the config JSON schema or write it with a sample config",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Directory to write the schema and sample config to",
					},
				},
				Action: schemaAction,
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
