package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mclog/mclog-go/pkg/mclog/event"
)

// Empty inputs must not touch the database at all; the sink is constructed
// with a nil handle to prove it.
func TestPostgresSink_EmptyInputsWriteNothing(t *testing.T) {
	sink := NewPostgresSink(nil, "mclog")
	ctx := context.Background()

	n, err := sink.WriteEvents(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = sink.WriteEvents(ctx, []event.Event{})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = sink.WritePlayerStats(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = sink.WriteMobKillDetails(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = sink.WriteItemStatDetails(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embeddedMigrations.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	// Every up migration needs a matching down migration.
	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	assert.Equal(t, ups, downs)
	assert.Positive(t, ups)
}
