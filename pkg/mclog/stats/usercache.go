package stats

import (
	"encoding/json"
	"errors"
	"os"
)

// Index maps a stable player UUID to the last known display name.
type Index map[string]string

// Name resolves a UUID to a display name, falling back to the UUID itself
// when the index has no entry. Never fails.
func (ix Index) Name(uuid string) string {
	if name, ok := ix[uuid]; ok {
		return name
	}
	return uuid
}

// usercacheEntry is one record in the server's usercache.json. Extra fields
// like expiresOn are ignored.
type usercacheEntry struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// LoadUsercache builds an identity index from the server's usercache.json.
// A missing file yields an empty index, not an error.
func LoadUsercache(path string) (Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Index{}, nil
		}
		return nil, err
	}

	var entries []usercacheEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	index := make(Index, len(entries))
	for _, entry := range entries {
		index[entry.UUID] = entry.Name
	}
	return index, nil
}
