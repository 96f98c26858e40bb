package config

const (
	envSpreadsheetID   = "SPREADSHEET_ID"
	envGoogleCreds     = "GOOGLE_CREDENTIALS_FILE"
	envSheetRange      = "SHEET_RANGE"
	envStatsAPIBaseURL = "STATSAPI_BASE_URL"
	envDraftYear       = "DRAFT_YEAR"
	envTrackerURL      = "TRACKER_URL"

	defaultSheetRange      = "Sheet1!A:D"
	defaultStatsAPIBaseURL = "https://statsapi.mlb.com/api/v1"
	defaultDraftYear       = "2025"
	defaultTrackerURL      = "https://www.mlb.com/draft/tracker"
)

// SheetsConfig controls the roster spreadsheet source and sink.
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string
	Range           string
}

func loadSheets() SheetsConfig {
	return SheetsConfig{
		SpreadsheetID:   envOrDefault(envSpreadsheetID, ""),
		CredentialsFile: envOrDefault(envGoogleCreds, ""),
		Range:           envOrDefault(envSheetRange, defaultSheetRange),
	}
}

// StatsAPIConfig controls how we talk to the MLB stats API.
type StatsAPIConfig struct {
	BaseURL string
	Year    string
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsAPIBaseURL, defaultStatsAPIBaseURL),
		Year:    envOrDefault(envDraftYear, defaultDraftYear),
	}
}

// TrackerConfig controls the HTML draft-tracker fallback source.
type TrackerConfig struct {
	BaseURL string
}

func loadTracker() TrackerConfig {
	return TrackerConfig{
		BaseURL: envOrDefault(envTrackerURL, defaultTrackerURL),
	}
}
