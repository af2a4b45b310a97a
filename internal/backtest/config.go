package backtest

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-backtest/internal/datasource"
	"github.com/rxtech-lab/argo-backtest/internal/metrics"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// DefaultDecimalPrecision is the number of decimals kept in written results.
const DefaultDecimalPrecision = 6

// RunConfig selects one strategy run.
type RunConfig struct {
	Name     string             `yaml:"name" json:"name" jsonschema:"title=Name,description=Unique name of the run" validate:"required"`
	Strategy types.StrategyType `yaml:"strategy" json:"strategy" jsonschema:"title=Strategy,description=Strategy selector tag" validate:"required,oneof=greedy random best_after_n sma ema bollinger rsi"`
	Params   []any              `yaml:"params,omitempty" json:"params,omitempty" jsonschema:"title=Params,description=Positional strategy parameters; omitted ones take their defaults"`
}

// Config is the engine configuration.
type Config struct {
	Version          string                      `yaml:"version" json:"version" jsonschema:"title=Version,description=Engine version the config was written for" validate:"required"`
	StartingBalance  float64                     `yaml:"starting_balance" json:"starting_balance" jsonschema:"title=Starting Balance,description=Cash every run starts with,minimum=0" validate:"gte=0"`
	StartingShares   float64                     `yaml:"starting_shares" json:"starting_shares" jsonschema:"title=Starting Shares,description=Shares every run starts with,minimum=0" validate:"gte=0"`
	PeriodsPerYear   int                         `yaml:"periods_per_year" json:"periods_per_year" jsonschema:"title=Periods Per Year,description=Used by Sharpe annualization and CAGR; 0 means 252,minimum=0" validate:"gte=0"`
	RiskFreeRate     float64                     `yaml:"risk_free_rate" json:"risk_free_rate" jsonschema:"title=Risk Free Rate,description=Per-period risk-free return"`
	AnnualizeSharpe  bool                        `yaml:"annualize_sharpe" json:"annualize_sharpe" jsonschema:"title=Annualize Sharpe"`
	DecimalPrecision int                         `yaml:"decimal_precision" json:"decimal_precision" jsonschema:"title=Decimal Precision,description=Decimals kept in written results; -1 keeps everything,minimum=-1" validate:"gte=-1"`
	Parallelism      int                         `yaml:"parallelism" json:"parallelism" jsonschema:"title=Parallelism,description=Runs executed at once; 0 means one per CPU,minimum=0" validate:"gte=0"`
	Seed             optional.Option[int64]      `yaml:"-" json:"seed" jsonschema:"title=Seed,description=Base seed of random strategies; run i uses seed+i"`
	Generator        *datasource.GeneratorConfig `yaml:"generator,omitempty" json:"generator,omitempty" jsonschema:"title=Generator,description=Synthetic price series used when no data file is given" validate:"omitempty"`
	Runs             []RunConfig                 `yaml:"runs" json:"runs" jsonschema:"title=Runs,description=Strategies to run over the same price series" validate:"required,min=1,dive"`
}

// UnmarshalYAML implements custom unmarshaling for Config
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plain Config

	var raw struct {
		plain `yaml:",inline"`
		Seed  *int64 `yaml:"seed"`
	}

	raw.plain = plain(EmptyConfig())

	if err := value.Decode(&raw); err != nil {
		return err
	}

	*c = Config(raw.plain)
	if raw.Seed != nil {
		c.Seed = optional.Some(*raw.Seed)
	}

	return nil
}

// EmptyConfig returns a Config with default values
func EmptyConfig() Config {
	return Config{
		Version:          "",
		StartingBalance:  0,
		StartingShares:   0,
		PeriodsPerYear:   metrics.DefaultPeriodsPerYear,
		RiskFreeRate:     0,
		AnnualizeSharpe:  false,
		DecimalPrecision: DefaultDecimalPrecision,
		Parallelism:      0,
		Seed:             optional.None[int64](),
		Generator:        nil,
		Runs:             nil,
	}
}

// ParseConfig decodes a YAML config and validates it.
func ParseConfig(data []byte) (Config, error) {
	config := EmptyConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse backtest config", err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// LoadConfig reads and validates the YAML config at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EmptyConfig(), errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to read config %s", path)
	}

	return ParseConfig(data)
}

// Validate validates the Config struct.
func (c *Config) Validate() error {
	if len(c.Runs) == 0 {
		return errors.New(errors.ErrCodeBacktestNoRuns, "backtest config has no runs")
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "invalid backtest config", err)
	}

	duplicates := lo.FindDuplicatesBy(c.Runs, func(r RunConfig) string {
		return r.Name
	})
	if len(duplicates) > 0 {
		return errors.Newf(errors.ErrCodeBacktestConfigError, "run names must be unique, %q is repeated", duplicates[0].Name)
	}

	return nil
}

// MetricsConfig returns the metric conventions of the config.
func (c *Config) MetricsConfig() metrics.Config {
	return metrics.Config{
		RiskFreeRate:    c.RiskFreeRate,
		AnnualizeSharpe: c.AnnualizeSharpe,
		PeriodsPerYear:  c.PeriodsPerYear,
	}
}

// GenerateSchema generates a JSON schema for the Config
func (c *Config) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t.String() == "optional.Option[int64]" {
				return &jsonschema.Schema{
					Type: "integer",
				}
			}

			if strings.HasSuffix(t.String(), "types.StrategyType") {
				return &jsonschema.Schema{
					Type: "string",
					Enum: types.AllStrategyTypes,
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)

	// Set schema metadata
	schema.Title = "backtest-config"
	schema.Description = "Configuration schema for the backtest engine"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the Config
func (c *Config) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}
