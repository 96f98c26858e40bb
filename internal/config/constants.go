package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envFetchTimeout = "FETCH_TIMEOUT"
	envPickProvider = "PICK_PROVIDER"
	envCORSOrigins  = "CORS_ORIGINS"
	envAdminToken   = "ADMIN_TOKEN"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envSnapshotOn   = "SNAPSHOT_ENABLED"
	envSnapshotDir  = "SNAPSHOT_DIR"

	defaultPort = "3000"
	// Draft-night cadence from the original tracker; the sheet API tolerates it.
	defaultPollInterval = 30 * Duration(time.Second)
	// Each fetch (roster read, pick scrape) carries its own timeout so one
	// slow source cannot stall the whole cycle.
	defaultFetchTimeout = 30 * Duration(time.Second)
	defaultPickProvider = "statsapi"
	defaultMetricsPort  = "9090"
	defaultSnapshotOn   = true
	defaultSnapshotDir  = "data/snapshots"
)
