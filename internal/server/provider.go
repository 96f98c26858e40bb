package server

import (
	"log/slog"

	"mlb-draft-tracker/internal/config"
	"mlb-draft-tracker/internal/providers"
	"mlb-draft-tracker/internal/providers/fixture"
	"mlb-draft-tracker/internal/providers/statsapi"
	"mlb-draft-tracker/internal/providers/tracker"
)

// selectPickProvider picks the draft pick source named in config. Unknown
// names fall back to the fixture so a typo degrades to canned data instead
// of a crash.
func selectPickProvider(cfg config.Config, logger *slog.Logger) (providers.PickProvider, string) {
	switch cfg.PickProvider {
	case statsapi.ProviderName, "":
		return statsapi.NewClient(statsapi.Config{
			BaseURL: cfg.StatsAPI.BaseURL,
			Year:    cfg.StatsAPI.Year,
		}), statsapi.ProviderName
	case tracker.ProviderName:
		return tracker.NewClient(tracker.Config{
			BaseURL: cfg.Tracker.BaseURL,
		}), tracker.ProviderName
	case "fixture":
		return fixture.New(), "fixture"
	default:
		if logger != nil {
			logger.Warn("unknown pick provider, falling back to fixture", slog.String("provider", cfg.PickProvider))
		}
		return fixture.New(), "fixture"
	}
}
