package statsapi

import "time"

const (
	// ProviderName identifies this provider in config, logs, and metrics.
	ProviderName = "statsapi"

	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 15 * time.Second
)
