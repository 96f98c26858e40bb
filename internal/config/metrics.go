package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "mlb-draft-tracker"),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

// SnapshotConfig controls the on-disk last-known-good snapshot.
type SnapshotConfig struct {
	Enabled bool
	Dir     string
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled: boolEnvOrDefault(envSnapshotOn, defaultSnapshotOn),
		Dir:     envOrDefault(envSnapshotDir, defaultSnapshotDir),
	}
}
