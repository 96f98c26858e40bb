// Package sheets reads the prospect roster from a Google Sheet and writes
// the merged collection back. The sheet is the authoritative store; write-
// back is always the full collection, never a diff.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"mlb-draft-tracker/internal/domain"
)

// SourceName identifies the sheet source in config, logs, and metrics.
const SourceName = "sheets"

// Config controls which spreadsheet and range the client uses.
type Config struct {
	SpreadsheetID   string
	CredentialsFile string
	Range           string
}

// Client reads and writes roster rows in a spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewClient constructs a sheets client. The credentials file is a service
// account key with spreadsheet scope.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet id is required")
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: creating service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     cfg.Range,
	}, nil
}

// FetchRoster reads the roster rows and maps them to prospect records. The
// header row, when present, is skipped.
func (c *Client) FetchRoster(ctx context.Context) ([]domain.Prospect, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: reading values: %w", err)
	}
	return rowsToProspects(resp.Values), nil
}

// WriteRoster overwrites the sheet with the full merged roster. The range is
// cleared first so rows removed by an explicit replace do not linger.
func (c *Client) WriteRoster(ctx context.Context, roster []domain.Prospect) error {
	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, c.readRange, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets: clearing range: %w", err)
	}

	vr := &sheets.ValueRange{Values: prospectsToRows(roster)}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, c.readRange, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: writing values: %w", err)
	}
	return nil
}
