package schema

// Custom string types for type safety.
type (
	// DatabaseBackend represents the relational database backend.
	DatabaseBackend string

	// ChartName represents one of the named reports.
	ChartName string
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// All chart reports supported.
const (
	MonthlyChart     ChartName = "monthly"
	AdoptionChart    ChartName = "adoption"
	TopChart         ChartName = "top"
	ProportionsChart ChartName = "proportions"
)

// AllCharts lists every report in the order the stats command runs them
// when no chart names are given.
var AllCharts = []ChartName{MonthlyChart, AdoptionChart, TopChart, ProportionsChart}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// ValidCharts lists all valid chart names.
var ValidCharts = map[ChartName]struct{}{
	MonthlyChart:     {},
	AdoptionChart:    {},
	TopChart:         {},
	ProportionsChart: {},
}
