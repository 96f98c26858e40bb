package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"

	"mlb-draft-tracker/internal/domain"
)

// FSStore loads persisted snapshots from disk.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadLatest reads the persisted snapshot. The second return is false when
// no snapshot has been written yet.
func (s *FSStore) LoadLatest() (domain.Snapshot, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.basePath, latestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Snapshot{}, false, nil
		}
		return domain.Snapshot{}, false, err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, false, err
	}
	return snap, true, nil
}
