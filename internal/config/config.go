package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	FetchTimeout Duration
	PickProvider string
	CORSOrigins  []string
	AdminToken   string
	Sheets       SheetsConfig
	StatsAPI     StatsAPIConfig
	Tracker      TrackerConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		FetchTimeout: durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		PickProvider: envOrDefault(envPickProvider, defaultPickProvider),
		CORSOrigins:  listEnvOrDefault(envCORSOrigins, []string{"*"}),
		AdminToken:   envOrDefault(envAdminToken, ""),
		Sheets:       loadSheets(),
		StatsAPI:     loadStatsAPI(),
		Tracker:      loadTracker(),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshots(),
	}
}
