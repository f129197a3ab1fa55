package tailreader

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mclog/mclog-go/internal/safefile"
)

// OffsetStore persists the last-read byte offset between collection cycles.
// A missing store file means no bytes have been consumed yet.
type OffsetStore struct {
	path string
}

// NewOffsetStore returns a store backed by the file at path.
func NewOffsetStore(path string) *OffsetStore {
	return &OffsetStore{path: path}
}

// Load reads the persisted offset. Returns 0 if the store file does not
// exist yet.
func (s *OffsetStore) Load() (int64, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	offset, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt offset file %s: %w", s.path, err)
	}
	return offset, nil
}

// Save persists the offset atomically, so a crash mid-write never leaves a
// corrupt store file.
func (s *OffsetStore) Save(offset int64) error {
	return safefile.WriteAtomic(s.path, []byte(strconv.FormatInt(offset, 10)), 0o644)
}
