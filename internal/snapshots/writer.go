// Package snapshots persists the last successfully published reconciliation
// snapshot to disk, so a restart can warm the publication cache instead of
// cold-starting empty while the first cycle runs.
package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mlb-draft-tracker/internal/domain"
)

const latestFile = "latest.json"

// Writer persists the latest snapshot under a base path.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSnapshot writes the snapshot atomically (temp file + rename). An
// unchanged payload is not rewritten.
func (w *Writer) WriteSnapshot(snap domain.Snapshot) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}

	target := filepath.Join(w.basePath, latestFile)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
