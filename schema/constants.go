package schema

// Custom string types for type safety.
type (
	// Profile represents a deterministic series generation profile.
	Profile string

	// ResultKind discriminates the payload shape of a QueryResult.
	ResultKind string

	// Scenario represents a benchmark navigation scenario.
	Scenario string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All generation profiles supported.
const (
	WalkProfile     Profile = "walk" // default
	SineProfile     Profile = "sine"
	PulseProfile    Profile = "pulse"
	GradientProfile Profile = "gradient"
	SparseProfile   Profile = "sparse"
)

// All query result kinds.
const (
	RawKind              ResultKind = "raw"
	AggregatedKind       ResultKind = "aggregated"
	SparseRawKind        ResultKind = "sparse_raw"
	SparseAggregatedKind ResultKind = "sparse_aggregated"
)

// All benchmark scenarios supported.
const (
	PanScenario       Scenario = "pan" // default
	ZoomScenario      Scenario = "zoom"
	MixedScenario     Scenario = "mixed"
	SparsePanScenario Scenario = "sparsepan"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllProfiles returns a list of all supported generation profiles.
var AllProfiles = []Profile{WalkProfile, SineProfile, PulseProfile, GradientProfile, SparseProfile}

// AllScenarios returns a list of all supported benchmark scenarios.
var AllScenarios = []Scenario{PanScenario, ZoomScenario, MixedScenario, SparsePanScenario}

// ValidProfiles lists all valid generation profiles.
var ValidProfiles = map[Profile]struct{}{
	WalkProfile:     {},
	SineProfile:     {},
	PulseProfile:    {},
	GradientProfile: {},
	SparseProfile:   {},
}

// ValidScenarios lists all valid benchmark scenarios.
var ValidScenarios = map[Scenario]struct{}{
	PanScenario:       {},
	ZoomScenario:      {},
	MixedScenario:     {},
	SparsePanScenario: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidRunBackends lists all valid run store backends.
var ValidRunBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// SparseProfiles lists the profiles that generate timestamped series.
var SparseProfiles = map[Profile]struct{}{
	SparseProfile: {},
}
