package contract

import (
	"fmt"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/lodlab/chartbench/schema"
)

// Default values for configuration.
const (
	DefaultNumSeries    = 4
	DefaultNumPoints    = 100000
	DefaultSeed         = 42
	DefaultDisplayWidth = 1200
	DefaultSteps        = 32
	DefaultLatency      = "100ms"
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 1
	MaxSeriesCount      = 64
	MaxPointCount       = 50000000
)

// DefaultWorkers is the default number of concurrent benchmark queries.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig populates profiling settings from the raw prefix.
func ProcessProfilingConfig(profile *ProfileConfig, prefix string) error {
	profile.Prefix = strings.TrimSpace(prefix)
	profile.Enabled = profile.Prefix != ""
	return nil
}

// Config holds the runtime configuration for the engine and benchmark.
// This struct remains the "final, validated" config.
type Config struct {
	Profile   schema.Profile
	Scenario  schema.Scenario
	NumSeries int
	NumPoints int
	Seed      int64

	RangeStart float64
	RangeEnd   float64
	LOD        float64
	SampleRate float64 // Sample rate hint in ms, zero means use the set's own rate

	Latency      time.Duration // Simulated per-query service latency
	DisplayWidth int           // Pixels the excluded renderer would span
	Steps        int
	Workers      int

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	BaseProfile   schema.Profile // Compare mode only
	TargetProfile schema.Profile // Compare mode only

	RunBackend   schema.DatabaseBackend
	RunDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Profile      string `mapstructure:"profile"`
	Series       int    `mapstructure:"series"`
	Points       int    `mapstructure:"points"`
	Seed         int64  `mapstructure:"seed"`
	Latency      string `mapstructure:"latency"`
	Limit        int    `mapstructure:"limit"`
	Precision    int    `mapstructure:"precision"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Width        int    `mapstructure:"width"`
	Workers      int    `mapstructure:"workers"`
	RunBackend   string `mapstructure:"run-backend"`
	RunDBConnect string `mapstructure:"run-db-connect"`
	Emoji        string `mapstructure:"emoji"`
	Color        string `mapstructure:"color"`

	// --- Fields from queryCmd.Flags() ---
	RangeStart float64 `mapstructure:"range-start"`
	RangeEnd   float64 `mapstructure:"range-end"`
	LOD        float64 `mapstructure:"lod"`
	SampleRate float64 `mapstructure:"sample-rate"`

	// --- Fields from benchCmd.Flags() ---
	Scenario     string `mapstructure:"scenario"`
	Steps        int    `mapstructure:"steps"`
	DisplayWidth int    `mapstructure:"display-width"`

	// --- Fields from compareCmd.Flags() ---
	BaseProfile   string `mapstructure:"base-profile"`
	TargetProfile string `mapstructure:"target-profile"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// CloneWithProfile creates a copy of the Config and sets a new profile.
func (c *Config) CloneWithProfile(profile schema.Profile) *Config {
	clone := c.Clone()
	clone.Profile = profile
	return clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateEngineInputs(cfg, input); err != nil {
		return err
	}
	if err := validateQueryInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBenchInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates presentation-related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Precision < 1 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 1 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	return nil
}

// validateEngineInputs processes the generation and latency fields.
func validateEngineInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Profile = schema.Profile(strings.ToLower(input.Profile))
	if _, ok := schema.ValidProfiles[cfg.Profile]; !ok {
		return fmt.Errorf("invalid profile '%s'. must be one of walk, sine, pulse, gradient, sparse", input.Profile)
	}

	if input.Series <= 0 || input.Series > MaxSeriesCount {
		return fmt.Errorf("series must be between 1 and %d (received %d)", MaxSeriesCount, input.Series)
	}
	cfg.NumSeries = input.Series

	if input.Points <= 0 || input.Points > MaxPointCount {
		return fmt.Errorf("points must be between 1 and %d (received %d)", MaxPointCount, input.Points)
	}
	cfg.NumPoints = input.Points

	cfg.Seed = input.Seed

	latency, err := time.ParseDuration(input.Latency)
	if err != nil {
		return fmt.Errorf("invalid --latency value %q: %w", input.Latency, err)
	}
	if latency < 0 {
		return fmt.Errorf("latency cannot be negative (received %s)", latency)
	}
	cfg.Latency = latency

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers
	return nil
}

// validateQueryInputs processes the one-shot query fields.
func validateQueryInputs(cfg *Config, input *ConfigRawInput) error {
	if math.IsNaN(input.RangeStart) || math.IsInf(input.RangeStart, 0) ||
		math.IsNaN(input.RangeEnd) || math.IsInf(input.RangeEnd, 0) {
		return fmt.Errorf("range bounds must be finite numbers")
	}
	cfg.RangeStart = input.RangeStart
	cfg.RangeEnd = input.RangeEnd

	if math.IsNaN(input.LOD) || math.IsInf(input.LOD, 0) || input.LOD <= 0 {
		return fmt.Errorf("lod must be a positive finite number (received %v)", input.LOD)
	}
	cfg.LOD = input.LOD

	if input.SampleRate < 0 {
		return fmt.Errorf("sample-rate cannot be negative (received %v)", input.SampleRate)
	}
	cfg.SampleRate = input.SampleRate
	return nil
}

// validateBenchInputs processes the benchmark and comparison fields.
func validateBenchInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Scenario = schema.Scenario(strings.ToLower(input.Scenario))
	if _, ok := schema.ValidScenarios[cfg.Scenario]; !ok {
		return fmt.Errorf("invalid scenario '%s'. must be pan, zoom, mixed, sparsepan", input.Scenario)
	}
	if cfg.Scenario == schema.SparsePanScenario {
		if _, ok := schema.SparseProfiles[cfg.Profile]; !ok {
			return fmt.Errorf("scenario %s requires a timestamped profile such as %s", schema.SparsePanScenario, schema.SparseProfile)
		}
	}

	if input.Steps <= 0 {
		return fmt.Errorf("steps must be greater than 0 (received %d)", input.Steps)
	}
	cfg.Steps = input.Steps

	if input.DisplayWidth <= 0 {
		return fmt.Errorf("display-width must be greater than 0 (received %d)", input.DisplayWidth)
	}
	cfg.DisplayWidth = input.DisplayWidth

	if input.BaseProfile != "" {
		cfg.BaseProfile = schema.Profile(strings.ToLower(input.BaseProfile))
		if _, ok := schema.ValidProfiles[cfg.BaseProfile]; !ok {
			return fmt.Errorf("invalid base profile '%s'", input.BaseProfile)
		}
	}
	if input.TargetProfile != "" {
		cfg.TargetProfile = schema.Profile(strings.ToLower(input.TargetProfile))
		if _, ok := schema.ValidProfiles[cfg.TargetProfile]; !ok {
			return fmt.Errorf("invalid target profile '%s'", input.TargetProfile)
		}
	}
	return nil
}

// validateBackendConfigs validates the run store backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.RunBackend = schema.DatabaseBackend(strings.ToLower(input.RunBackend))
	if _, ok := schema.ValidRunBackends[cfg.RunBackend]; !ok {
		return fmt.Errorf("invalid run backend '%s'. must be sqlite, mysql, postgresql, none", input.RunBackend)
	}
	cfg.RunDBConnect = input.RunDBConnect
	return ValidateDatabaseConnectionString(cfg.RunBackend, cfg.RunDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
