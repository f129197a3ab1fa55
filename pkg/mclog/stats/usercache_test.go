package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUsercache = `[
  {"name": "Njackisyourdad", "uuid": "63f167bb-ff0d-4bcb-a09b-ca34f443510b", "expiresOn": "2025-05-21 13:56:09 +0200"},
  {"name": "Steve", "uuid": "11111111-2222-3333-4444-555555555555", "expiresOn": "2025-05-21 13:56:09 +0200"}
]`

func TestLoadUsercache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usercache.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleUsercache), 0o644))

	index, err := LoadUsercache(path)
	require.NoError(t, err)

	assert.Equal(t, "Njackisyourdad", index.Name("63f167bb-ff0d-4bcb-a09b-ca34f443510b"))
	assert.Equal(t, "Steve", index.Name("11111111-2222-3333-4444-555555555555"))
}

func TestLoadUsercache_MissingFile(t *testing.T) {
	index, err := LoadUsercache(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err)
	assert.Empty(t, index)
}

func TestLoadUsercache_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usercache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadUsercache(path)
	assert.Error(t, err)
}

func TestIndex_NameFallsBackToUUID(t *testing.T) {
	index := Index{"known-uuid": "Known"}

	assert.Equal(t, "Known", index.Name("known-uuid"))
	assert.Equal(t, "unknown-uuid", index.Name("unknown-uuid"))
}
