package stats

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Snapshot is the result of reading one stats directory: the three row sets,
// all stamped with the same snapshot instant, plus the number of stat files
// that could not be read or decoded.
type Snapshot struct {
	Players   []PlayerStats
	MobKills  []MobKillDetail
	ItemStats []ItemStatDetail

	// Skipped counts per-player files that failed to load. Failures are
	// isolated: one bad file never aborts the rest of the directory.
	Skipped int
}

// ReadDir reads every per-player stat file in dir (named <uuid>.json) and
// normalizes each into the snapshot's row sets. Display names are resolved
// through index with a UUID fallback. A missing directory yields an empty
// snapshot.
func ReadDir(dir string, index Index, snapshotTime time.Time) (Snapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, nil
		}
		return Snapshot{}, err
	}

	var snap Snapshot
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		uuid := strings.TrimSuffix(entry.Name(), ".json")
		tree, err := LoadTree(filepath.Join(dir, entry.Name()))
		if err != nil {
			snap.Skipped++
			continue
		}

		ps, mobKills, itemStats := Normalize(tree, uuid, index.Name(uuid), snapshotTime)
		snap.Players = append(snap.Players, ps)
		snap.MobKills = append(snap.MobKills, mobKills...)
		snap.ItemStats = append(snap.ItemStats, itemStats...)
	}

	return snap, nil
}
