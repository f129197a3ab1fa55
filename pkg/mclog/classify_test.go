package mclog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mclog/mclog-go/pkg/mclog/event"
)

var testDate = time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

func TestClassifyLine(t *testing.T) {
	ev, err := ClassifyLine("[10:30:15] [Server thread/INFO]: Steve joined the game", testDate)
	require.NoError(t, err)
	require.NotNil(t, ev)

	assert.Equal(t, event.Join, ev.Type)
	assert.Equal(t, "Steve", ev.Player)
	assert.Equal(t, time.Date(2026, 8, 23, 10, 30, 15, 0, time.UTC), ev.Timestamp)
}

func TestClassifyLine_Unrecognized(t *testing.T) {
	ev, err := ClassifyLine("[10:30:15] [Server thread/INFO]: Preparing spawn area: 0%", testDate)
	require.NoError(t, err)
	assert.Nil(t, ev)
}

func TestClassifyLines(t *testing.T) {
	lines := []string{
		"[10:30:15] [Server thread/INFO]: Steve joined the game",
		"[10:30:20] [Server thread/WARN]: Can't keep up!",
		"[10:30:25] [Server thread/INFO]: <Steve> hello",
		"not a log line",
		"[10:30:30] [Server thread/INFO]: Steve left the game",
	}

	events := ClassifyLines(lines, testDate)
	require.Len(t, events, 3)

	// Input order is preserved.
	assert.Equal(t, event.Join, events[0].Type)
	assert.Equal(t, event.Chat, events[1].Type)
	assert.Equal(t, "hello", events[1].Details)
	assert.Equal(t, event.Leave, events[2].Type)
}

func TestClassifyLines_Empty(t *testing.T) {
	assert.Empty(t, ClassifyLines(nil, testDate))
	assert.Empty(t, ClassifyLines([]string{}, testDate))
}

func TestDefaultClassifier(t *testing.T) {
	ctx := context.Background()
	cl := DefaultClassifier{}

	result, err := cl.ClassifyLine(ctx, "[10:30:15] [Server thread/INFO]: Steve fell from a high place", testDate)
	require.NoError(t, err)
	require.True(t, result.Matched)
	require.Len(t, result.Events, 1)
	assert.Equal(t, event.Death, result.Events[0].Type)

	result, err = cl.ClassifyLine(ctx, "[10:30:15] [Server thread/INFO]: something else", testDate)
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Empty(t, result.Events)
}
